package blog

import (
	"context"
	"html/template"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/awpl-blog/blogsite/internal/catalog"
	"github.com/awpl-blog/blogsite/internal/kv"
	"github.com/awpl-blog/blogsite/internal/render"
	"github.com/awpl-blog/blogsite/internal/views"
)

func newEngine(t *testing.T, regions *render.Regions) *Engine {
	t.Helper()
	cat, err := catalog.New(catalog.DefaultPosts())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return New(cat, regions, views.NewCounter(kv.NewMemory()), Options{})
}

func cardTitles(t *testing.T, markup template.HTML) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(markup)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out []string
	doc.Find(".post-title a").Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func TestInitializeRendersListings(t *testing.T) {
	regions := render.AllRegions()
	newEngine(t, regions).Initialize()

	latest, ok := regions.Get(render.RegionLatest)
	if !ok {
		t.Fatal("latest region not written")
	}
	wantLatest := []string{
		"The Benefits of Ayurvedic Medicine in Modern Healthcare",
		"Understanding Holistic Wellness: Mind, Body, and Spirit",
		"New Product Launch: AWPL Herbal Supplements",
	}
	if got := cardTitles(t, latest); strings.Join(got, "|") != strings.Join(wantLatest, "|") {
		t.Errorf("latest = %q, want %q", got, wantLatest)
	}

	popular, ok := regions.Get(render.RegionPopular)
	if !ok {
		t.Fatal("popular region not written")
	}
	wantPopular := []string{
		"New Product Launch: AWPL Herbal Supplements",
		"The Benefits of Ayurvedic Medicine in Modern Healthcare",
		"Understanding Holistic Wellness: Mind, Body, and Spirit",
	}
	if got := cardTitles(t, popular); strings.Join(got, "|") != strings.Join(wantPopular, "|") {
		t.Errorf("popular = %q, want %q", got, wantPopular)
	}

	if _, written := regions.Get(render.RegionSearch); written {
		t.Error("Initialize touched the search region")
	}
}

func TestInitializeMissingRegions(t *testing.T) {
	regions := render.NewRegions(render.RegionSearch)
	e := newEngine(t, regions)

	e.Initialize()
	if markup := e.RenderLatest(1); !strings.Contains(markup, "Ayurvedic") {
		t.Errorf("RenderLatest(1) markup = %q", markup)
	}
	if regions.Has(render.RegionLatest) {
		t.Error("missing region was created")
	}
}

func TestListingSizeOption(t *testing.T) {
	regions := render.AllRegions()
	cat := catalog.MustNew(catalog.DefaultPosts())
	New(cat, regions, nil, Options{LatestCount: 1, PopularCount: 2}).Initialize()

	latest, _ := regions.Get(render.RegionLatest)
	popular, _ := regions.Get(render.RegionPopular)
	if n := len(cardTitles(t, latest)); n != 1 {
		t.Errorf("latest cards = %d, want 1", n)
	}
	if n := len(cardTitles(t, popular)); n != 2 {
		t.Errorf("popular cards = %d, want 2", n)
	}
}

func TestSearchRegionStates(t *testing.T) {
	regions := render.AllRegions()
	e := newEngine(t, regions)

	out := e.Search("  ")
	if out.Status != catalog.NotSearched {
		t.Fatalf("blank Status = %v", out.Status)
	}
	if _, written := regions.Get(render.RegionSearch); written {
		t.Fatal("blank search wrote the region")
	}

	out = e.Search("AYURVEDIC")
	if out.Status != catalog.Found {
		t.Fatalf("Status = %v, want Found", out.Status)
	}
	found, _ := regions.Get(render.RegionSearch)
	if got := cardTitles(t, found); len(got) != 1 || got[0] != "The Benefits of Ayurvedic Medicine in Modern Healthcare" {
		t.Errorf("search cards = %q", got)
	}

	// A blank query after a real one keeps the previous results.
	e.Search("")
	if again, _ := regions.Get(render.RegionSearch); again != found {
		t.Error("blank search changed previous results")
	}

	out = e.Search("nonexistent-term-xyz")
	if out.Status != catalog.NoResults {
		t.Fatalf("Status = %v, want NoResults", out.Status)
	}
	if got, _ := regions.Get(render.RegionSearch); got != render.NoResults() {
		t.Errorf("no-results region = %q", got)
	}
}

func TestRecordPageView(t *testing.T) {
	e := newEngine(t, render.AllRegions())
	ctx := context.Background()

	first, err := e.RecordPageView(ctx, "x")
	if err != nil {
		t.Fatalf("RecordPageView: %v", err)
	}
	second, _ := e.RecordPageView(ctx, "x")
	if first != 1 || second != 2 {
		t.Errorf("views = %d, %d; want 1, 2", first, second)
	}
}

func TestRecordPageViewWithoutCounter(t *testing.T) {
	e := New(catalog.MustNew(catalog.DefaultPosts()), render.AllRegions(), nil, Options{})
	n, err := e.RecordPageView(context.Background(), "x")
	if err != nil || n != 0 {
		t.Errorf("RecordPageView = (%d, %v), want (0, nil)", n, err)
	}
}
