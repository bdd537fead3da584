// Package views counts page loads per page in a key-value store.
package views

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/awpl-blog/blogsite/internal/kv"
)

// KeyPrefix is prepended to the page identifier to form the store key.
const KeyPrefix = "post_views_"

// PageID derives the page identifier from a request path: its last segment.
// "/posts/ayurvedic-medicine-benefits.html" -> "ayurvedic-medicine-benefits.html".
// The site root yields "".
func PageID(requestPath string) string {
	if requestPath == "" || strings.HasSuffix(requestPath, "/") {
		return ""
	}
	return path.Base(requestPath)
}

// Key returns the store key for a page.
func Key(pageID string) string {
	return KeyPrefix + pageID
}

// Counter increments per-page view counts. The read-modify-write is not
// atomic: two concurrent loads of the same page can both write the same
// value.
type Counter struct {
	store kv.Store
}

// NewCounter creates a Counter over store.
func NewCounter(store kv.Store) *Counter {
	return &Counter{store: store}
}

// Record counts one load of pageID and returns the new count. A missing or
// non-numeric stored value counts as no prior views.
func (c *Counter) Record(ctx context.Context, pageID string) (int, error) {
	count, err := c.Current(ctx, pageID)
	if err != nil {
		return 0, err
	}
	count++

	if err := c.store.Set(ctx, Key(pageID), strconv.Itoa(count)); err != nil {
		return 0, fmt.Errorf("saving view count for %q: %w", pageID, err)
	}
	return count, nil
}

// Current returns the stored count for pageID without changing it. Missing,
// non-numeric and negative values read as zero.
func (c *Counter) Current(ctx context.Context, pageID string) (int, error) {
	raw, ok, err := c.store.Get(ctx, Key(pageID))
	if err != nil {
		return 0, fmt.Errorf("reading view count for %q: %w", pageID, err)
	}
	if !ok {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}
