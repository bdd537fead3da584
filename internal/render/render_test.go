package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/awpl-blog/blogsite/internal/catalog"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parsing markup: %v", err)
	}
	return doc
}

func TestCardCarriesURLAndTitle(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultPosts())

	for _, p := range c.Posts() {
		doc := parse(t, string(Card(p)))

		link := doc.Find(".post-title a")
		if href, _ := link.Attr("href"); href != p.URL {
			t.Errorf("%d: title href = %q, want %q", p.ID, href, p.URL)
		}
		if got := strings.TrimSpace(link.Text()); got != p.Title {
			t.Errorf("%d: title text = %q, want %q", p.ID, got, p.Title)
		}
		if alt, _ := doc.Find("img").Attr("alt"); alt != p.Title {
			t.Errorf("%d: img alt = %q, want %q", p.ID, alt, p.Title)
		}
		if src, _ := doc.Find("img").Attr("src"); src != p.Thumbnail {
			t.Errorf("%d: img src = %q, want %q", p.ID, src, p.Thumbnail)
		}
		if href, _ := doc.Find("a.post-thumbnail").Attr("href"); href != p.URL {
			t.Errorf("%d: thumbnail href = %q, want %q", p.ID, href, p.URL)
		}
	}
}

func TestCardMeta(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultPosts())
	doc := parse(t, string(Card(c.Posts()[0])))

	if got := doc.Find(".post-date").Text(); got != "May 19, 2023" {
		t.Errorf("date = %q, want %q", got, "May 19, 2023")
	}
	if got := doc.Find(".view-count").Text(); got != "215 views" {
		t.Errorf("views = %q, want %q", got, "215 views")
	}
	if got := doc.Find(".post-excerpt").Text(); !strings.HasPrefix(got, "Explore how ancient") {
		t.Errorf("excerpt = %q", got)
	}
}

func TestCardEscapesMarkup(t *testing.T) {
	c := catalog.MustNew([]catalog.Post{{
		ID:      1,
		Title:   `<script>alert("x")</script>`,
		Excerpt: `<b>bold</b> & more`,
		URL:     "javascript:alert(1)",
		Date:    "2023-01-01",
	}})
	markup := string(Card(c.Posts()[0]))

	if strings.Contains(markup, "<script>") || strings.Contains(markup, "<b>") {
		t.Errorf("markup not escaped:\n%s", markup)
	}
	if strings.Contains(markup, "javascript:") {
		t.Errorf("unsafe URL kept:\n%s", markup)
	}

	doc := parse(t, markup)
	if got := strings.TrimSpace(doc.Find(".post-title a").Text()); got != `<script>alert("x")</script>` {
		t.Errorf("title text = %q", got)
	}
	if doc.Find(".post-excerpt b").Length() != 0 {
		t.Error("excerpt produced an element")
	}
}

func TestCardsOrder(t *testing.T) {
	c := catalog.MustNew(catalog.DefaultPosts())
	doc := parse(t, string(Cards(c.Popular(3))))

	var got []string
	doc.Find(".post-title a").Each(func(_ int, s *goquery.Selection) {
		got = append(got, strings.TrimSpace(s.Text()))
	})
	want := []string{
		"New Product Launch: AWPL Herbal Supplements",
		"The Benefits of Ayurvedic Medicine in Modern Healthcare",
		"Understanding Holistic Wellness: Mind, Body, and Spirit",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("card titles = %q, want %q", got, want)
	}
}

func TestCardsEmpty(t *testing.T) {
	if got := Cards(nil); got != "" {
		t.Errorf("Cards(nil) = %q, want empty", got)
	}
}

func TestViewLabel(t *testing.T) {
	tests := map[int]string{0: "0 views", 215: "215 views", 1234: "1,234 views"}
	for n, want := range tests {
		if got := ViewLabel(n); got != want {
			t.Errorf("ViewLabel(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestPostDateInvalid(t *testing.T) {
	c := catalog.MustNew([]catalog.Post{{ID: 1, Title: "x", Date: "not a date"}})
	if got := PostDate(c.Posts()[0]); got != "Invalid Date" {
		t.Errorf("PostDate = %q", got)
	}
}

func TestFormatReadableDate(t *testing.T) {
	if got := FormatReadableDate("2023-05-19T16:06:00"); got != "May 19, 2023 at 04:06 PM IST" {
		t.Errorf("FormatReadableDate = %q", got)
	}
	if got := FormatReadableDate("garbage"); got != "Invalid date" {
		t.Errorf("FormatReadableDate(garbage) = %q", got)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, "1 minute read"},
		{150, "1 minute read"},
		{200, "1 minute read"},
		{201, "2 minutes read"},
		{1000, "5 minutes read"},
	}
	for _, tt := range tests {
		text := strings.Repeat("word ", tt.words)
		if got := ReadingTime(text); got != tt.want {
			t.Errorf("ReadingTime(%d words) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestRegions(t *testing.T) {
	r := NewRegions(RegionLatest)

	if r.Replace(RegionPopular, "<p>x</p>") {
		t.Error("Replace on undeclared region should report false")
	}
	if r.Has(RegionPopular) {
		t.Error("undeclared region appeared")
	}

	if _, written := r.Get(RegionLatest); written {
		t.Error("fresh region reported written")
	}
	if !r.Replace(RegionLatest, "<p>a</p>") {
		t.Fatal("Replace on declared region failed")
	}
	if got, written := r.Get(RegionLatest); !written || got != "<p>a</p>" {
		t.Errorf("Get = (%q, %v)", got, written)
	}
}
