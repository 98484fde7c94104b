// Package transport defines the messaging boundary the bot core sits
// behind. A transport delivers inbound messages to a Handler and
// relays the single reply back to the originating session; the core
// never knows which chat platform is on the other side.
package transport

import "context"

// Message is one inbound text event from a chat session. IsCommand is
// true when the text arrived through the platform's command mechanism
// (e.g. a slash prefix) rather than as plain text.
type Message struct {
	SessionID string
	Text      string
	IsCommand bool
}

// Handler processes one inbound message and returns exactly one reply.
// Implementations may be called concurrently for different sessions;
// messages from a single session must be delivered in arrival order.
type Handler interface {
	HandleMessage(ctx context.Context, msg Message) string
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, msg Message) string

func (f HandlerFunc) HandleMessage(ctx context.Context, msg Message) string {
	return f(ctx, msg)
}

// Transport runs a message loop, feeding inbound events to h until the
// context is cancelled or the underlying connection closes.
type Transport interface {
	Run(ctx context.Context, h Handler) error
}
