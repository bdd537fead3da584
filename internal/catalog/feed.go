package catalog

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"
)

// seedDateLayout is how dates are written back to a seed list.
const seedDateLayout = "2006-01-02T15:04:05"

// ParseFeed reads an RSS or Atom feed and turns its items into posts with
// ids counting up from firstID. Items without a title are skipped. Imported
// posts start with zero views.
func ParseFeed(r io.Reader, firstID int) ([]Post, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	if feed == nil || len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed contains no items")
	}

	posts := make([]Post, 0, len(feed.Items))
	slugs := make(map[string]bool, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		id := firstID + len(posts)

		slug := feedSlug(item.Link, id)
		if slugs[slug] {
			slug += "-" + strconv.Itoa(id)
		}
		slugs[slug] = true

		p := Post{
			ID:      id,
			Title:   title,
			Excerpt: plainText(item.Description),
			URL:     "./posts/" + slug + ".html",
		}
		if item.PublishedParsed != nil {
			p.Date = item.PublishedParsed.UTC().Format(seedDateLayout)
		} else if item.UpdatedParsed != nil {
			p.Date = item.UpdatedParsed.UTC().Format(seedDateLayout)
		}
		if item.Image != nil {
			p.Thumbnail = item.Image.URL
		} else {
			for _, enc := range item.Enclosures {
				if strings.HasPrefix(enc.Type, "image/") {
					p.Thumbnail = enc.URL
					break
				}
			}
		}
		posts = append(posts, p)
	}

	if len(posts) == 0 {
		return nil, fmt.Errorf("no titled items found in feed")
	}
	return posts, nil
}

// WriteSeed writes posts as a YAML seed list readable by Load.
func WriteSeed(w io.Writer, posts []Post) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seedFile{Posts: posts}); err != nil {
		return fmt.Errorf("encoding seed list: %w", err)
	}
	return enc.Close()
}

// plainText strips markup from a feed description.
func plainText(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func feedSlug(link string, id int) string {
	if u, err := url.Parse(link); err == nil {
		base := path.Base(strings.TrimSuffix(u.Path, "/"))
		base = strings.TrimSuffix(base, path.Ext(base))
		if base != "" && base != "." && base != "/" {
			return base
		}
	}
	return "post-" + strconv.Itoa(id)
}
