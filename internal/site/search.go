package site

import (
	"encoding/json"
	"os"

	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/render"
)

// SearchEntry is one post in the client-side search index. Date and Views
// are preformatted the way cards show them.
type SearchEntry struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Date      string `json:"date"`
	Views     string `json:"views"`
}

// BuildSearchIndex lists the searchable fields of every post in catalog order.
func BuildSearchIndex(c *catalog.Catalog) []SearchEntry {
	posts := c.Posts()
	entries := make([]SearchEntry, len(posts))
	for i, p := range posts {
		entries[i] = SearchEntry{
			ID:        p.ID,
			Title:     p.Title,
			Excerpt:   p.Excerpt,
			URL:       p.URL,
			Thumbnail: p.Thumbnail,
			Date:      render.PostDate(p),
			Views:     render.ViewLabel(p.Views),
		}
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
