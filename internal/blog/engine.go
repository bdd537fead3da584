// Package blog wires the post catalog to the page regions and the view
// counter. The host calls Initialize once when its page is ready.
package blog

import (
	"context"

	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/render"
	"github.com/awpl-blog/blogsite/internal/views"
)

// DefaultListingSize is how many cards the latest and popular regions show.
const DefaultListingSize = 3

// Options sizes the listings. Zero values fall back to DefaultListingSize.
type Options struct {
	LatestCount  int
	PopularCount int
}

// Engine renders listings and search results into a render.Target.
type Engine struct {
	catalog *catalog.Catalog
	target  render.Target
	counter *views.Counter
	opts    Options
}

// New creates an Engine. counter may be nil when page views are not
// tracked.
func New(cat *catalog.Catalog, target render.Target, counter *views.Counter, opts Options) *Engine {
	if opts.LatestCount <= 0 {
		opts.LatestCount = DefaultListingSize
	}
	if opts.PopularCount <= 0 {
		opts.PopularCount = DefaultListingSize
	}
	return &Engine{catalog: cat, target: target, counter: counter, opts: opts}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Initialize renders the latest and popular listings.
func (e *Engine) Initialize() {
	e.RenderLatest(e.opts.LatestCount)
	e.RenderPopular(e.opts.PopularCount)
}

// RenderLatest renders the n newest posts into the latest region and
// returns the markup.
func (e *Engine) RenderLatest(n int) string {
	markup := render.Cards(e.catalog.Latest(n))
	e.target.Replace(render.RegionLatest, markup)
	return string(markup)
}

// RenderPopular renders the n most viewed posts into the popular region and
// returns the markup.
func (e *Engine) RenderPopular(n int) string {
	markup := render.Cards(e.catalog.Popular(n))
	e.target.Replace(render.RegionPopular, markup)
	return string(markup)
}

// Search runs a query and updates the search region. A blank query leaves
// the region exactly as it was.
func (e *Engine) Search(query string) catalog.SearchOutcome {
	out := e.catalog.Search(query)
	switch out.Status {
	case catalog.NoResults:
		e.target.Replace(render.RegionSearch, render.NoResults())
	case catalog.Found:
		e.target.Replace(render.RegionSearch, render.Cards(out.Posts))
	}
	return out
}

// RecordPageView counts one load of pageID and returns the new count. It is
// a no-op returning 0 when the engine has no counter.
func (e *Engine) RecordPageView(ctx context.Context, pageID string) (int, error) {
	if e.counter == nil {
		return 0, nil
	}
	return e.counter.Record(ctx, pageID)
}
