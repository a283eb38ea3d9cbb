package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	postgresRepo "github.com/dukaanhq/dukaan/internal/adapter/repository/postgres"
	redisRepo "github.com/dukaanhq/dukaan/internal/adapter/repository/redis"
	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/infrastructure/auth"
	"github.com/dukaanhq/dukaan/internal/infrastructure/config"
	"github.com/dukaanhq/dukaan/internal/infrastructure/kafka"
	"github.com/dukaanhq/dukaan/internal/infrastructure/postgres"
	"github.com/dukaanhq/dukaan/internal/infrastructure/redis"
	"github.com/dukaanhq/dukaan/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dukaan-cli",
		Short: "Dukaan admin CLI",
		Long:  `Administrative commands for the dukaan backend: migrations, ledger maintenance and user management.`,
	}

	rootCmd.AddCommand(migrateCmd(), ledgerCmd(), userCmd())
	return rootCmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
					return err
				}
				fmt.Println("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if err := postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
					return err
				}
				fmt.Println("migrations rolled back")
				return nil
			},
		},
	)

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger maintenance",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "recalculate <ledger-id>",
			Short: "Replay a ledger's transactions and rebuild every balance snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				uc, cleanup, err := buildLedgerUseCase(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				balance, err := uc.Recalculate(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("ledger %s recalculated, total balance: %s\n", args[0], balance)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Print aggregate balances across all ledgers",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				uc, cleanup, err := buildLedgerUseCase(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				stats, err := uc.Stats(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("ledgers:       %d\n", stats.TotalLedgers)
				fmt.Printf("total debit:   %s\n", stats.TotalDebit)
				fmt.Printf("total credit:  %s\n", stats.TotalCredit)
				fmt.Printf("total balance: %s\n", stats.TotalBalance)
				return nil
			},
		},
	)

	return cmd
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management",
	}

	var email, name, password, role string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			uc := usecase.NewUserUseCase(
				postgresRepo.NewUserRepository(pool),
				redisRepo.NewSessionStore(redisClient),
				auth.NewBcryptHasher(),
				auth.NewJWTManager(cfg.JWTSecret),
				postgresRepo.NewULIDGenerator(),
			)

			user, err := uc.CreateUser(ctx, usecase.CreateUserInput{
				Email:    email,
				Name:     name,
				Password: password,
				Role:     domain.Role(role),
			})
			if err != nil {
				return err
			}

			fmt.Printf("created user %s (%s) with role %s\n", user.Email, user.ID, user.Role)
			return nil
		},
	}

	createCmd.Flags().StringVar(&email, "email", "", "Email address")
	createCmd.Flags().StringVar(&name, "name", "", "Display name")
	createCmd.Flags().StringVar(&password, "password", "", "Password")
	createCmd.Flags().StringVar(&role, "role", string(domain.RoleStaff), "Role (admin|manager|staff)")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("password")

	cmd.AddCommand(createCmd)
	return cmd
}

// buildLedgerUseCase wires a ledger use case over the real database and
// cache. Events are discarded; CLI maintenance should not feed the stream.
func buildLedgerUseCase(ctx context.Context) (*usecase.LedgerUseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	uc := usecase.NewLedgerUseCase(
		postgresRepo.NewTxManager(pool),
		postgresRepo.NewLedgerRepository(pool),
		postgresRepo.NewTransactionRepository(pool),
		postgresRepo.NewAuditRepository(pool),
		postgresRepo.NewULIDGenerator(),
		redisRepo.NewCache(redisClient),
		kafka.NoopPublisher{},
		postgresRepo.NewRetrier(),
	)

	cleanup := func() {
		pool.Close()
		redisClient.Close()
	}

	return uc, cleanup, nil
}
