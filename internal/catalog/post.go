package catalog

import (
	"path"
	"strings"
	"time"
)

// Post is one blog post record in the seed list.
type Post struct {
	ID        int    `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	Excerpt   string `yaml:"excerpt" json:"excerpt"`
	Thumbnail string `yaml:"thumbnail" json:"thumbnail"`
	Date      string `yaml:"date" json:"date"`
	Views     int    `yaml:"views" json:"views"`
	URL       string `yaml:"url" json:"url"`
	Body      string `yaml:"body,omitempty" json:"body,omitempty"`

	// PublishedAt is Date parsed by New. Zero when DateValid is false.
	PublishedAt time.Time `yaml:"-" json:"-"`
	DateValid   bool      `yaml:"-" json:"-"`
}

// Slug is the post URL's last path segment without its extension:
// "./posts/holistic-wellness-guide.html" -> "holistic-wellness-guide".
func (p Post) Slug() string {
	base := path.Base(p.URL)
	return strings.TrimSuffix(base, path.Ext(base))
}

// dateLayouts are tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 timestamp the way the seed list writes them.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DefaultPosts returns the seed list the site ships with.
func DefaultPosts() []Post {
	return []Post{
		{
			ID:        1,
			Title:     "The Benefits of Ayurvedic Medicine in Modern Healthcare",
			Excerpt:   "Explore how ancient Ayurvedic practices are finding relevance in contemporary healthcare systems and benefiting millions worldwide.",
			Thumbnail: "./images/ayurvedic-medicine.jpg",
			Date:      "2023-05-19T16:06:00",
			Views:     215,
			URL:       "./posts/ayurvedic-medicine-benefits.html",
		},
		{
			ID:        2,
			Title:     "Understanding Holistic Wellness: Mind, Body, and Spirit",
			Excerpt:   "A comprehensive guide to holistic wellness and how it addresses all aspects of human health for optimal well-being.",
			Thumbnail: "./images/holistic-wellness.jpg",
			Date:      "2023-05-15T10:30:00",
			Views:     178,
			URL:       "./posts/holistic-wellness-guide.html",
		},
		{
			ID:        3,
			Title:     "New Product Launch: AWPL Herbal Supplements",
			Excerpt:   "Introducing our latest range of herbal supplements designed to support immunity, digestion, and overall health.",
			Thumbnail: "./images/herbal-supplements.jpg",
			Date:      "2023-05-10T14:20:00",
			Views:     320,
			URL:       "./posts/new-herbal-supplements.html",
		},
	}
}
