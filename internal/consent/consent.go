// Package consent stores the visitor's cookie choice and signals it to
// third-party integrations.
package consent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/awpl-blog/blogsite/internal/kv"
)

// Store keys shared with the browser banner.
const (
	ChoiceKey = "cookieConsent"
	DateKey   = "cookieConsentDate"
)

// Choice is the visitor's cookie decision.
type Choice string

const (
	All       Choice = "all"
	Necessary Choice = "necessary"
)

var ErrInvalidChoice = errors.New("invalid consent choice")

// ParseChoice validates a choice string.
func ParseChoice(s string) (Choice, error) {
	switch c := Choice(s); c {
	case All, Necessary:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
}

// Signaler receives the applied choice.
type Signaler interface {
	EnableAll(ctx context.Context) error
	EnableNecessary(ctx context.Context) error
}

// LogSignaler only logs the choice.
type LogSignaler struct{}

func (LogSignaler) EnableAll(context.Context) error {
	log.Printf("consent: all cookies enabled")
	return nil
}

func (LogSignaler) EnableNecessary(context.Context) error {
	log.Printf("consent: only necessary cookies enabled")
	return nil
}

// Manager reads, records and applies the consent choice.
type Manager struct {
	store    kv.Store
	signaler Signaler
	history  *History
	now      func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithSignaler replaces the default LogSignaler.
func WithSignaler(s Signaler) Option { return func(m *Manager) { m.signaler = s } }

// WithHistory appends every recorded decision to h.
func WithHistory(h *History) Option { return func(m *Manager) { m.history = h } }

// WithClock overrides time.Now for the decision timestamp.
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

// NewManager creates a Manager over store.
func NewManager(store kv.Store, opts ...Option) *Manager {
	m := &Manager{store: store, signaler: LogSignaler{}, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// History returns the decision log, or nil when none is configured.
func (m *Manager) History() *History { return m.history }

// Current returns the stored choice, or "" when the visitor has not chosen
// yet and the banner should be shown. Unrecognised stored values are
// treated as necessary-only.
func (m *Manager) Current(ctx context.Context) (Choice, error) {
	raw, ok, err := m.store.Get(ctx, ChoiceKey)
	if err != nil {
		return "", fmt.Errorf("reading consent: %w", err)
	}
	if !ok || raw == "" {
		return "", nil
	}
	if raw == string(All) {
		return All, nil
	}
	return Necessary, nil
}

// Record stores the choice with its timestamp and applies it.
func (m *Manager) Record(ctx context.Context, choice Choice) error {
	if _, err := ParseChoice(string(choice)); err != nil {
		return err
	}

	decidedAt := m.now().UTC()
	if err := m.store.Set(ctx, ChoiceKey, string(choice)); err != nil {
		return fmt.Errorf("saving consent: %w", err)
	}
	if err := m.store.Set(ctx, DateKey, decidedAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving consent date: %w", err)
	}

	if m.history != nil {
		if err := m.history.Append(ctx, choice, decidedAt); err != nil {
			return err
		}
	}

	return m.Apply(ctx, choice)
}

// Apply signals a choice without storing it. An empty choice does nothing.
func (m *Manager) Apply(ctx context.Context, choice Choice) error {
	switch choice {
	case "":
		return nil
	case All:
		return m.signaler.EnableAll(ctx)
	default:
		return m.signaler.EnableNecessary(ctx)
	}
}
