// Package bot routes inbound chat messages through the per-session
// state machine, performs lookups against the search API and renders
// the reply. Every inbound message yields exactly one reply; the
// session always lands back in the idle state after a terminal
// handler, errors included.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"

	"sleuthbot/internal/lookup"
	"sleuthbot/internal/observe"
	"sleuthbot/internal/render"
	"sleuthbot/internal/session"
	"sleuthbot/internal/transport"
)

// Bot wires the session table, API client and formatter together and
// implements transport.Handler.
type Bot struct {
	sessions *session.Manager
	client   *lookup.Client
	observer *observe.Observer
	bus      *EventBus
}

// New creates a bot. bus may be nil when nobody listens for events.
func New(sessions *session.Manager, client *lookup.Client, obs *observe.Observer, bus *EventBus) *Bot {
	if bus == nil {
		bus = NewEventBus()
	}
	return &Bot{
		sessions: sessions,
		client:   client,
		observer: obs,
		bus:      bus,
	}
}

// Events returns the bot's event bus.
func (b *Bot) Events() *EventBus {
	return b.bus
}

// HandleMessage processes one inbound message and returns the reply.
// The session lock is held for the whole call, so a single session's
// messages are applied strictly in arrival order while other sessions
// proceed concurrently.
func (b *Bot) HandleMessage(ctx context.Context, msg transport.Message) string {
	ctx, span := b.observer.StartSpan(ctx, "HandleMessage")
	defer span.End()

	log := b.observer.Component("bot").With().
		Str("session", msg.SessionID).
		Str("request", uuid.NewString()).
		Logger()

	sess, release := b.sessions.Acquire(msg.SessionID)
	defer release()

	if msg.IsCommand {
		return b.handleCommand(ctx, log, sess, msg.Text)
	}
	return b.handleText(ctx, log, sess, msg.Text)
}

func (b *Bot) handleCommand(ctx context.Context, log *bolt.Logger, sess *session.Session, cmd string) string {
	cmd = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cmd, "/")))
	log.Debug().Str("command", cmd).Str("state", sess.State().String()).Msg("command received")

	switch cmd {
	case "start":
		return replyWelcome
	case "help":
		return replyHelp
	case "search":
		sess.SetState(session.StateAwaitingQuery)
		return replySearchPrompt
	case "setapikey":
		sess.SetState(session.StateAwaitingKey)
		return replyKeyPrompt
	case "cancel":
		sess.SetState(session.StateIdle)
		b.bus.publish(EventCancelled, sess.ID, nil)
		return replyCancelled
	default:
		return replyUnknownCommand
	}
}

func (b *Bot) handleText(ctx context.Context, log *bolt.Logger, sess *session.Session, text string) string {
	text = strings.TrimSpace(text)

	switch sess.State() {
	case session.StateAwaitingQuery:
		sess.SetState(session.StateIdle)
		return b.performSearch(ctx, log, sess, text)

	case session.StateAwaitingKey:
		sess.SetAPIKey(text)
		sess.SetState(session.StateIdle)
		log.Info().Msg("session api key updated")
		b.bus.publish(EventKeyUpdated, sess.ID, nil)
		return replyKeySaved

	default:
		// Unscoped text is an implicit search query.
		return b.performSearch(ctx, log, sess, text)
	}
}

func (b *Bot) performSearch(ctx context.Context, log *bolt.Logger, sess *session.Session, query string) string {
	ctx, span := b.observer.StartSpan(ctx, "performSearch")
	defer span.End()

	b.bus.publish(EventSearchStarted, sess.ID, map[string]string{"query": query})

	result, err := b.client.Lookup(ctx, query, sess.APIKey())
	if err != nil {
		b.bus.publish(EventSearchFailed, sess.ID, map[string]string{"query": query})
		return b.errorReply(log, err)
	}

	log.Info().Int("findings", len(result.Findings)).Msg("search completed")
	b.bus.publish(EventSearchCompleted, sess.ID, map[string]string{
		"query":    query,
		"findings": fmt.Sprintf("%d", len(result.Findings)),
	})
	return render.Findings(result, query)
}

// errorReply maps every lookup error kind to a single user-facing
// line. Transport detail stays in the server log and is never shown to
// the user.
func (b *Bot) errorReply(log *bolt.Logger, err error) string {
	var ue *lookup.UpstreamError
	var te *lookup.TransportError

	switch {
	case errors.Is(err, lookup.ErrNotConfigured):
		return replyNotConfigured
	case errors.Is(err, lookup.ErrInvalidKey):
		return replyInvalidKey
	case errors.Is(err, lookup.ErrQuotaExceeded):
		return replyQuotaExceeded
	case errors.As(err, &ue):
		log.Warn().Int("status", ue.Status).Msg("upstream api error")
		return fmt.Sprintf("API error: %d", ue.Status)
	case errors.As(err, &te):
		log.Error().Err(te.Err).Msg("api transport failure")
		return replyTransportError
	default:
		log.Error().Err(err).Msg("unclassified lookup failure")
		return replyTransportError
	}
}
