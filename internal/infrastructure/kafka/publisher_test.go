package kafka

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestPublisherRejectsUnmarshalablePayload(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "test.events", zerolog.Nop())
	defer p.Close()

	// channels cannot be marshaled; must fail before touching the network
	if err := p.Publish(context.Background(), "test.event", make(chan int)); err == nil {
		t.Fatalf("expected marshal error")
	}
}

func TestNoopPublisher(t *testing.T) {
	if err := (NoopPublisher{}).Publish(context.Background(), "test.event", struct{}{}); err != nil {
		t.Fatalf("noop publish should never fail: %v", err)
	}
}
