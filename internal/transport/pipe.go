package transport

import "context"

// Pipe is an in-process transport. Messages pushed with Send are
// handled synchronously and the reply returned to the caller. It backs
// the end-to-end tests and any embedding that wants direct calls
// instead of a chat platform.
type Pipe struct {
	handler Handler
}

// NewPipe creates a pipe bound to h.
func NewPipe(h Handler) *Pipe {
	return &Pipe{handler: h}
}

// Send delivers one message and returns the bot's reply.
func (p *Pipe) Send(ctx context.Context, sessionID, text string, isCommand bool) string {
	return p.handler.HandleMessage(ctx, Message{
		SessionID: sessionID,
		Text:      text,
		IsCommand: isCommand,
	})
}

// Run blocks until ctx is cancelled. The pipe has no inbound source of
// its own; Send is the entry point.
func (p *Pipe) Run(ctx context.Context, h Handler) error {
	p.handler = h
	<-ctx.Done()
	return ctx.Err()
}
