package main

import "testing"

func TestCommandTree(t *testing.T) {
	root := newRootCmd()

	expected := map[string][]string{
		"migrate": {"up", "down"},
		"ledger":  {"recalculate", "stats"},
		"user":    {"create"},
	}

	for name, subs := range expected {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %q command, got %v (%v)", name, cmd, err)
		}

		for _, sub := range subs {
			subCmd, _, err := root.Find([]string{name, sub})
			if err != nil || subCmd.Name() != sub {
				t.Fatalf("expected %q subcommand under %q, got %v (%v)", sub, name, subCmd, err)
			}
		}
	}
}

func TestUserCreateRequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"user", "create"})
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err == nil {
		t.Fatal("expected user create to fail without required flags")
	}
}
