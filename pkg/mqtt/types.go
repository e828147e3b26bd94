package mqtt

import (
	"context"
)

// MessageHandler receives one message from a subscribed topic filter.
type MessageHandler func(ctx context.Context, topic string, payload []byte)

// Client is the broker connection used to publish Lesedi events and to
// follow them from the command line.
type Client interface {
	// Start connects in the background. Use AwaitConnection to block.
	Start(ctx context.Context) error

	// Disconnect publishes the offline marker, if any, and closes the connection.
	Disconnect(ctx context.Context)

	Publish(ctx context.Context, topic string, qos int, retain bool, payload []byte) error

	// Subscribe routes messages matching topic to handler. Subscriptions are
	// restored after a reconnect.
	Subscribe(ctx context.Context, topic string, qos int, handler MessageHandler) error

	AwaitConnection(ctx context.Context) error

	IsConnected() bool
}
