// Package notify is the outbound-message boundary. Delivery is best-effort:
// a dispatch failure is reported to the caller of Send but must never be
// allowed to fail the state change that triggered it.
package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/builderops/warrantydesk/internal/domain"
)

// ErrDispatchFailed wraps any transport-level delivery failure.
var ErrDispatchFailed = errors.New("notification dispatch failed")

// Outbound is one message handed to the transport.
type Outbound struct {
	To          string
	Subject     string
	Body        string
	Attachments []domain.Attachment
	// Document carries rendered service-order bytes, nil for plain messages.
	Document []byte
}

// Dispatcher delivers outbound messages. Implementations must not panic and
// should honor ctx cancellation; callers treat any error as ErrDispatchFailed
// territory, never as a transition failure.
type Dispatcher interface {
	Send(ctx context.Context, msg Outbound) error
}

// LogDispatcher records outbound messages to a structured log instead of a
// real transport. It is the default wiring when no mail transport is
// configured, and never fails.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(w io.Writer) *LogDispatcher {
	return &LogDispatcher{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (d *LogDispatcher) Send(ctx context.Context, msg Outbound) error {
	d.logger.InfoContext(ctx, "outbound_notification",
		"to", msg.To,
		"subject", msg.Subject,
		"body_len", len(msg.Body),
		"attachments", len(msg.Attachments),
		"document_bytes", len(msg.Document),
	)
	return nil
}

// Recorder is a test dispatcher that captures sent messages and can be
// primed to fail.
type Recorder struct {
	mu       sync.Mutex
	sent     []Outbound
	FailWith error
}

func (r *Recorder) Send(ctx context.Context, msg Outbound) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.sent = append(r.sent, msg)
	return nil
}

// Sent returns a copy of the captured messages.
func (r *Recorder) Sent() []Outbound {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Outbound, len(r.sent))
	copy(out, r.sent)
	return out
}
