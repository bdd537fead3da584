// Package render turns posts into HTML fragments and places them in named
// page regions.
package render

import (
	"bytes"
	"html/template"

	"github.com/dustin/go-humanize"

	"github.com/awpl-blog/blogsite/internal/catalog"
)

const cardTemplate = `<div class="post-card">
    <a href="{{.URL}}" class="post-thumbnail">
        <img src="{{.Thumbnail}}" alt="{{.Title}}">
    </a>
    <div class="post-content">
        <h3 class="post-title">
            <a href="{{.URL}}">{{.Title}}</a>
        </h3>
        <p class="post-excerpt">{{.Excerpt}}</p>
        <div class="post-meta">
            <span class="post-date">{{.Date}}</span>
            <span class="view-count">{{.ViewLabel}}</span>
        </div>
    </div>
</div>
`

const noResultsHTML = `<p class="no-results">No results found. Try a different search term.</p>`

var cardTmpl = template.Must(template.New("card").Parse(cardTemplate))

type cardData struct {
	URL       string
	Thumbnail string
	Title     string
	Excerpt   string
	Date      string
	ViewLabel string
}

// Card renders one post card. Every field is escaped for its HTML context.
func Card(p catalog.Post) template.HTML {
	var buf bytes.Buffer
	data := cardData{
		URL:       p.URL,
		Thumbnail: p.Thumbnail,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Date:      PostDate(p),
		ViewLabel: ViewLabel(p.Views),
	}
	// The template is static and the data is plain strings.
	if err := cardTmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}

// Cards renders posts in order and concatenates the cards.
func Cards(posts []catalog.Post) template.HTML {
	var buf bytes.Buffer
	for _, p := range posts {
		buf.WriteString(string(Card(p)))
	}
	return template.HTML(buf.String())
}

// NoResults is shown when a search ran and matched nothing.
func NoResults() template.HTML {
	return template.HTML(noResultsHTML)
}

// ViewLabel formats a view count: "1,234 views".
func ViewLabel(views int) string {
	return humanize.Comma(int64(views)) + " views"
}
