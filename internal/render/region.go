package render

import (
	"html/template"
	"sync"
)

// Region names a container on the page that listings render into.
type Region string

const (
	RegionLatest  Region = "latest-posts"
	RegionPopular Region = "popular-posts"
	RegionSearch  Region = "search-results"
)

// Target replaces the content of a named region. Replace returns false when
// the region does not exist; that is not an error.
type Target interface {
	Replace(region Region, markup template.HTML) bool
}

// Regions is a Target over a fixed set of declared regions. Regions not
// declared at construction are ignored.
type Regions struct {
	mu      sync.RWMutex
	content map[Region]template.HTML
	written map[Region]bool
}

// NewRegions declares the given regions, all empty.
func NewRegions(regions ...Region) *Regions {
	r := &Regions{
		content: make(map[Region]template.HTML, len(regions)),
		written: make(map[Region]bool, len(regions)),
	}
	for _, name := range regions {
		r.content[name] = ""
	}
	return r
}

// AllRegions declares latest, popular and search.
func AllRegions() *Regions {
	return NewRegions(RegionLatest, RegionPopular, RegionSearch)
}

func (r *Regions) Replace(region Region, markup template.HTML) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.content[region]; !ok {
		return false
	}
	r.content[region] = markup
	r.written[region] = true
	return true
}

// Get returns a region's markup and whether the region has been written.
func (r *Regions) Get(region Region) (template.HTML, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content[region], r.written[region]
}

// Has reports whether the region is declared.
func (r *Regions) Has(region Region) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.content[region]
	return ok
}
