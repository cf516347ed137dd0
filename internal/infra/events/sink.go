package events

import "context"

// Sink receives every event the relay delivers. Implementations must be safe
// for use by a single relay goroutine while other goroutines serve clients.
type Sink interface {
	Name() string
	Publish(ctx context.Context, topic string, payload []byte) error
}
