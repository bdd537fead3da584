package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/consent"
	"github.com/awpl-blog/blogsite/internal/render"
	"github.com/awpl-blog/blogsite/internal/share"
	"github.com/awpl-blog/blogsite/internal/views"
)

// Renderer writes full HTML pages around the listing regions and post
// bodies. It is safe for concurrent use.
type Renderer struct {
	SiteName string
	BaseURL  string

	md   goldmark.Markdown
	home *template.Template
	post *template.Template
}

// NewRenderer parses the page templates and sets up markdown conversion.
func NewRenderer(siteName, baseURL string) (*Renderer, error) {
	home, err := template.New("home").Parse(homeTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing home template: %w", err)
	}
	post, err := template.New("post").Parse(postTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing post template: %w", err)
	}

	// Raw HTML inside post bodies is dropped (no html.WithUnsafe).
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &Renderer{
		SiteName: siteName,
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		md:       md,
		home:     home,
		post:     post,
	}, nil
}

// HomePage holds what the landing page shows. Static pages load site.js,
// which searches search-index.json and keeps the consent choice in the
// browser instead of posting it.
type HomePage struct {
	Regions       *render.Regions
	Query         string
	SearchAction  string
	ConsentAction string
	ShowConsent   bool
	BasePath      string
	Static        bool
}

type homeData struct {
	SiteName      string
	BasePath      string
	SearchAction  string
	ConsentAction string
	Query         string
	SearchShown   bool
	Search        template.HTML
	Latest        template.HTML
	Popular       template.HTML
	ShowConsent   bool
	ChoiceKey     string
	DateKey       string
	Static        bool
}

// WriteHome renders the landing page. The search block stays hidden until
// the search region has been written.
func (r *Renderer) WriteHome(w io.Writer, page HomePage) error {
	latest, _ := page.Regions.Get(render.RegionLatest)
	popular, _ := page.Regions.Get(render.RegionPopular)
	search, searched := page.Regions.Get(render.RegionSearch)

	action := page.SearchAction
	if action == "" {
		action = page.BasePath + "index.html"
	}
	consentAction := page.ConsentAction
	if consentAction == "" {
		consentAction = page.BasePath + "api/consent"
	}

	return r.home.Execute(w, homeData{
		SiteName:      r.SiteName,
		BasePath:      page.BasePath,
		SearchAction:  action,
		ConsentAction: consentAction,
		Query:         page.Query,
		SearchShown:   searched,
		Search:        search,
		Latest:        latest,
		Popular:       popular,
		ShowConsent:   page.ShowConsent,
		ChoiceKey:     consent.ChoiceKey,
		DateKey:       consent.DateKey,
		Static:        page.Static,
	})
}

type shareLink struct {
	Platform string
	Label    string
	URL      string
}

// PostPage holds what a post page shows. Views is the count printed in the
// page; static pages let site.js replace it with the browser's own count.
type PostPage struct {
	Post     catalog.Post
	Views    int
	BasePath string
	Static   bool
}

type postData struct {
	SiteName    string
	BasePath    string
	Title       string
	Excerpt     string
	Image       string
	Date        string
	ReadingTime string
	Views       int
	ViewsKey    string
	Body        template.HTML
	Share       []shareLink
	Static      bool
}

// WritePost renders a post page.
func (r *Renderer) WritePost(w io.Writer, page PostPage) error {
	p := page.Post

	var body bytes.Buffer
	if p.Body != "" {
		if err := r.md.Convert([]byte(p.Body), &body); err != nil {
			return fmt.Errorf("converting markdown for %s: %w", p.Slug(), err)
		}
	}

	text := p.Excerpt
	if p.Body != "" {
		text = p.Body
	}

	return r.post.Execute(w, postData{
		SiteName:    r.SiteName,
		BasePath:    page.BasePath,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Image:       assetURL(page.BasePath, p.Thumbnail),
		Date:        render.FormatReadableDate(p.Date),
		ReadingTime: render.ReadingTime(text),
		Views:       page.Views,
		ViewsKey:    views.Key(views.PageID(p.URL)),
		Body:        template.HTML(body.String()),
		Share:       r.shareLinks(p),
		Static:      page.Static,
	})
}

// assetURL resolves a catalog reference such as "./images/a.jpg" against
// basePath. References with a scheme or host are returned unchanged.
func assetURL(basePath, ref string) string {
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && (u.IsAbs() || u.Host != "") {
		return ref
	}
	return basePath + strings.TrimPrefix(ref, "./")
}

// PostURL is the absolute URL of a post under BaseURL.
func (r *Renderer) PostURL(p catalog.Post) string {
	return r.BaseURL + "/posts/" + p.Slug() + ".html"
}

func (r *Renderer) shareLinks(p catalog.Post) []shareLink {
	links := make([]shareLink, 0, len(share.Platforms))
	for _, platform := range share.Platforms {
		u, err := share.URL(platform, p.Title, r.PostURL(p))
		if err != nil {
			continue
		}
		links = append(links, shareLink{
			Platform: string(platform),
			Label:    platformLabel(platform),
			URL:      u,
		})
	}
	return links
}

func platformLabel(p share.Platform) string {
	switch p {
	case share.LinkedIn:
		return "LinkedIn"
	case share.WhatsApp:
		return "WhatsApp"
	default:
		s := string(p)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Stylesheet is the CSS shared by every page.
func Stylesheet() string { return cssContent }
