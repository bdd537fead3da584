// Package catalog holds the read-only list of blog posts and answers the
// latest, popular and search listings over it.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicateID = errors.New("duplicate post id")
	ErrInvalidPost = errors.New("invalid post")
)

// Catalog is an immutable post list. Build it once with New and share it.
type Catalog struct {
	posts []Post
}

// New validates posts and returns a Catalog over a private copy of them.
// A Date that does not parse is kept: the post gets a zero PublishedAt,
// DateValid=false, and sorts after every dated post.
func New(posts []Post) (*Catalog, error) {
	seen := make(map[int]bool, len(posts))
	own := make([]Post, len(posts))

	for i, p := range posts {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidPost, p.ID)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("%w: post %d has no title", ErrInvalidPost, p.ID)
		}
		if p.Views < 0 {
			return nil, fmt.Errorf("%w: post %d has negative views", ErrInvalidPost, p.ID)
		}

		p.PublishedAt, p.DateValid = ParseDate(p.Date)
		own[i] = p
	}

	return &Catalog{posts: own}, nil
}

// MustNew is New for seed lists compiled into the program.
func MustNew(posts []Post) *Catalog {
	c, err := New(posts)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of posts.
func (c *Catalog) Len() int { return len(c.posts) }

// Posts returns the posts in catalog order.
func (c *Catalog) Posts() []Post {
	return slices.Clone(c.posts)
}

// Lookup finds a post by slug.
func (c *Catalog) Lookup(slug string) (Post, bool) {
	for _, p := range c.posts {
		if p.Slug() == slug {
			return p, true
		}
	}
	return Post{}, false
}

// Latest returns up to n posts, newest first. Posts published at the same
// instant keep their catalog order.
func (c *Catalog) Latest(n int) []Post {
	return c.top(n, func(a, b Post) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
}

// Popular returns up to n posts by seed view count, highest first, ties in
// catalog order. The seed count never reflects recorded page views.
func (c *Catalog) Popular(n int) []Post {
	return c.top(n, func(a, b Post) int {
		return cmp.Compare(b.Views, a.Views)
	})
}

func (c *Catalog) top(n int, cmp func(a, b Post) int) []Post {
	if n <= 0 {
		return []Post{}
	}
	sorted := slices.Clone(c.posts)
	slices.SortStableFunc(sorted, cmp)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Status says what a search did.
type Status int

const (
	// NotSearched means the query was blank and nothing ran.
	NotSearched Status = iota
	// NoResults means a search ran and matched nothing.
	NoResults
	// Found means at least one post matched.
	Found
)

func (s Status) String() string {
	switch s {
	case NotSearched:
		return "not_searched"
	case NoResults:
		return "no_results"
	case Found:
		return "found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// SearchOutcome is the result of Search.
type SearchOutcome struct {
	Query  string
	Status Status
	Posts  []Post
}

// Search returns every post whose title or excerpt contains query, compared
// case-insensitively after trimming. Matches stay in catalog order.
func (c *Catalog) Search(query string) SearchOutcome {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return SearchOutcome{Status: NotSearched}
	}

	var matches []Post
	for _, p := range c.posts {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Excerpt), q) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return SearchOutcome{Query: q, Status: NoResults}
	}
	return SearchOutcome{Query: q, Status: Found, Posts: matches}
}
