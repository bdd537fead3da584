package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/awpl-blog/blogsite/internal/blog"
	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/progress"
	"github.com/awpl-blog/blogsite/internal/render"
)

// Builder writes the blog as static files.
type Builder struct {
	Catalog   *catalog.Catalog
	Renderer  *Renderer
	OutputDir string
	Listings  blog.Options
	Reporter  progress.Reporter
}

// Build writes index.html, one page per post, search-index.json, site.js
// and style.css. Returns the number of HTML pages written. Post pages start
// from the seed view count; site.js takes over counting in the browser.
func (b *Builder) Build() (int, error) {
	reporter := b.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	postsDir := filepath.Join(b.OutputDir, "posts")
	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(b.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(b.OutputDir, "site.js"), []byte(scriptContent), 0o644); err != nil {
		return 0, err
	}

	if err := WriteSearchIndex(BuildSearchIndex(b.Catalog), filepath.Join(b.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	posts := b.Catalog.Posts()
	total := len(posts) + 1
	reporter.Start(total)
	defer reporter.Finish()

	regions := render.AllRegions()
	blog.New(b.Catalog, regions, nil, b.Listings).Initialize()

	if err := writeFile(filepath.Join(b.OutputDir, "index.html"), func(f *os.File) error {
		return b.Renderer.WriteHome(f, HomePage{Regions: regions, ShowConsent: true, Static: true})
	}); err != nil {
		return 0, fmt.Errorf("rendering index.html: %w", err)
	}
	reporter.Page(1, b.Renderer.SiteName)

	for i, p := range posts {
		rel := filepath.Join("posts", p.Slug()+".html")
		if err := writeFile(filepath.Join(b.OutputDir, rel), func(f *os.File) error {
			return b.Renderer.WritePost(f, PostPage{Post: p, Views: p.Views, BasePath: "../", Static: true})
		}); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", rel, err)
		}
		reporter.Page(i+2, p.Title)
	}

	return total, nil
}

func writeFile(path string, fn func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
