package consent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/awpl-blog/blogsite/internal/db"
)

// Decision is one row of the consent log.
type Decision struct {
	ID        string    `json:"id"`
	Choice    Choice    `json:"choice"`
	DecidedAt time.Time `json:"decided_at"`
}

// History is the append-only consent_log table.
type History struct {
	db *db.DB
}

// NewHistory creates a History backed by the given database.
func NewHistory(database *db.DB) *History {
	return &History{db: database}
}

// Append records a decision under a fresh UUID.
func (h *History) Append(ctx context.Context, choice Choice, decidedAt time.Time) error {
	_, err := h.db.ExecContext(ctx,
		"INSERT INTO consent_log (id, choice, decided_at) VALUES (?, ?, ?)",
		uuid.NewString(), string(choice), decidedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting consent decision: %w", err)
	}
	return nil
}

// Counts returns how many decisions were recorded per choice.
func (h *History) Counts(ctx context.Context) (map[Choice]int, error) {
	rows, err := h.db.QueryContext(ctx, "SELECT choice, COUNT(*) FROM consent_log GROUP BY choice")
	if err != nil {
		return nil, fmt.Errorf("counting consent decisions: %w", err)
	}
	defer rows.Close()

	counts := make(map[Choice]int)
	for rows.Next() {
		var (
			choice string
			n      int
		)
		if err := rows.Scan(&choice, &n); err != nil {
			return nil, err
		}
		counts[Choice(choice)] = n
	}
	return counts, rows.Err()
}

// Recent returns the latest decisions, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Decision, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx,
		"SELECT id, choice, decided_at FROM consent_log ORDER BY decided_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("querying consent decisions: %w", err)
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var (
			d       Decision
			choice  string
			decided string
		)
		if err := rows.Scan(&d.ID, &choice, &decided); err != nil {
			return nil, err
		}
		d.Choice = Choice(choice)
		if t, err := time.Parse(time.RFC3339, decided); err == nil {
			d.DecidedAt = t
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
