package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/abgdnv/productapi/pkg/messaging"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

func NewClient(url string, timeout time.Duration) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

func NewJetStreamContext(nc *nats.Conn) (jetstream.JetStream, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	return js, nil
}

// EnsureProductsStream creates the products stream or updates it to the expected subjects.
func EnsureProductsStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     messaging.ProductsStream,
		Subjects: []string{messaging.ProductsSubjects},
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", messaging.ProductsStream, err)
	}
	return nil
}
