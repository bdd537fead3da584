package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"
)

func titles(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Title
	}
	return out
}

func TestLatestSeedOrder(t *testing.T) {
	c := MustNew(DefaultPosts())

	got := titles(c.Latest(3))
	want := []string{
		"The Benefits of Ayurvedic Medicine in Modern Healthcare",
		"Understanding Holistic Wellness: Mind, Body, and Spirit",
		"New Product Launch: AWPL Herbal Supplements",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Latest(3) = %q, want %q", got, want)
	}
}

func TestPopularSeedOrder(t *testing.T) {
	c := MustNew(DefaultPosts())

	popular := c.Popular(3)
	got := titles(popular)
	want := []string{
		"New Product Launch: AWPL Herbal Supplements",
		"The Benefits of Ayurvedic Medicine in Modern Healthcare",
		"Understanding Holistic Wellness: Mind, Body, and Spirit",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Popular(3) = %q, want %q", got, want)
	}

	views := []int{popular[0].Views, popular[1].Views, popular[2].Views}
	if !slices.Equal(views, []int{320, 215, 178}) {
		t.Errorf("Popular(3) views = %v, want [320 215 178]", views)
	}
}

func TestLatestIgnoresInsertionOrder(t *testing.T) {
	posts := DefaultPosts()
	reversed := slices.Clone(posts)
	slices.Reverse(reversed)

	a := titles(MustNew(posts).Latest(3))
	b := titles(MustNew(reversed).Latest(3))
	if !slices.Equal(a, b) {
		t.Errorf("Latest depends on insertion order: %q vs %q", a, b)
	}
}

func TestPopularTiesKeepCatalogOrder(t *testing.T) {
	c := MustNew([]Post{
		{ID: 1, Title: "first", Date: "2023-01-01", Views: 10},
		{ID: 2, Title: "second", Date: "2023-01-02", Views: 50},
		{ID: 3, Title: "third", Date: "2023-01-03", Views: 10},
		{ID: 4, Title: "fourth", Date: "2023-01-04", Views: 10},
	})

	got := titles(c.Popular(4))
	want := []string{"second", "first", "third", "fourth"}
	if !slices.Equal(got, want) {
		t.Errorf("Popular(4) = %q, want %q", got, want)
	}
}

func TestPopularExtremeViews(t *testing.T) {
	c := MustNew([]Post{
		{ID: 1, Title: "none", Date: "2023-01-01", Views: 0},
		{ID: 2, Title: "max", Date: "2023-01-02", Views: math.MaxInt},
		{ID: 3, Title: "one", Date: "2023-01-03", Views: 1},
	})

	got := titles(c.Popular(3))
	want := []string{"max", "one", "none"}
	if !slices.Equal(got, want) {
		t.Errorf("Popular(3) = %q, want %q", got, want)
	}
}

func TestLatestTiesKeepCatalogOrder(t *testing.T) {
	c := MustNew([]Post{
		{ID: 7, Title: "b", Date: "2023-05-19T16:06:00"},
		{ID: 3, Title: "a", Date: "2023-05-19T16:06:00"},
		{ID: 9, Title: "older", Date: "2023-05-01T00:00:00"},
	})

	got := titles(c.Latest(3))
	want := []string{"b", "a", "older"}
	if !slices.Equal(got, want) {
		t.Errorf("Latest(3) = %q, want %q", got, want)
	}
}

func TestLatestInvalidDateSortsLast(t *testing.T) {
	c := MustNew([]Post{
		{ID: 1, Title: "undated", Date: "someday"},
		{ID: 2, Title: "dated", Date: "2020-01-01"},
	})

	latest := c.Latest(2)
	if got := titles(latest); !slices.Equal(got, []string{"dated", "undated"}) {
		t.Errorf("Latest(2) = %q", got)
	}
	if latest[1].DateValid {
		t.Error("undated post should have DateValid=false")
	}
}

func TestTopLimits(t *testing.T) {
	c := MustNew(DefaultPosts())

	tests := []struct {
		n    int
		want int
	}{
		{n: -1, want: 0},
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 3, want: 3},
		{n: 10, want: 3},
	}
	for _, tt := range tests {
		if got := len(c.Latest(tt.n)); got != tt.want {
			t.Errorf("len(Latest(%d)) = %d, want %d", tt.n, got, tt.want)
		}
		if got := len(c.Popular(tt.n)); got != tt.want {
			t.Errorf("len(Popular(%d)) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSortingDoesNotMutateCatalog(t *testing.T) {
	c := MustNew(DefaultPosts())
	before := titles(c.Posts())
	c.Latest(3)
	c.Popular(3)
	if after := titles(c.Posts()); !slices.Equal(before, after) {
		t.Errorf("catalog order changed: %q -> %q", before, after)
	}
}

func TestSearch(t *testing.T) {
	c := MustNew(DefaultPosts())

	tests := []struct {
		name       string
		query      string
		wantStatus Status
		wantTitles []string
	}{
		{name: "empty", query: "", wantStatus: NotSearched},
		{name: "whitespace", query: "   \t ", wantStatus: NotSearched},
		{
			name:       "title match",
			query:      "ayurvedic",
			wantStatus: Found,
			wantTitles: []string{"The Benefits of Ayurvedic Medicine in Modern Healthcare"},
		},
		{
			name:       "upper case",
			query:      "AYURVEDIC",
			wantStatus: Found,
			wantTitles: []string{"The Benefits of Ayurvedic Medicine in Modern Healthcare"},
		},
		{
			name:       "excerpt match",
			query:      "  immunity ",
			wantStatus: Found,
			wantTitles: []string{"New Product Launch: AWPL Herbal Supplements"},
		},
		{
			name:       "several in catalog order",
			query:      "health",
			wantStatus: Found,
			wantTitles: []string{
				"The Benefits of Ayurvedic Medicine in Modern Healthcare",
				"Understanding Holistic Wellness: Mind, Body, and Spirit",
				"New Product Launch: AWPL Herbal Supplements",
			},
		},
		{name: "no match", query: "nonexistent-term-xyz", wantStatus: NoResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.Search(tt.query)
			if out.Status != tt.wantStatus {
				t.Fatalf("Status = %v, want %v", out.Status, tt.wantStatus)
			}
			if got := titles(out.Posts); !slices.Equal(got, tt.wantTitles) && len(tt.wantTitles) > 0 {
				t.Errorf("titles = %q, want %q", got, tt.wantTitles)
			}
			if tt.wantStatus != Found && len(out.Posts) != 0 {
				t.Errorf("expected no posts, got %d", len(out.Posts))
			}
		})
	}
}

func TestSearchCaseInsensitiveSameResults(t *testing.T) {
	c := MustNew(DefaultPosts())
	upper := titles(c.Search("AYURVEDIC").Posts)
	lower := titles(c.Search("ayurvedic").Posts)
	if !slices.Equal(upper, lower) {
		t.Errorf("case changes results: %q vs %q", upper, lower)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		posts   []Post
		wantErr error
	}{
		{name: "duplicate id", posts: []Post{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}}, wantErr: ErrDuplicateID},
		{name: "zero id", posts: []Post{{ID: 0, Title: "a"}}, wantErr: ErrInvalidPost},
		{name: "blank title", posts: []Post{{ID: 1, Title: "  "}}, wantErr: ErrInvalidPost},
		{name: "negative views", posts: []Post{{ID: 1, Title: "a", Views: -1}}, wantErr: ErrInvalidPost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.posts); !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	posts := DefaultPosts()
	c := MustNew(posts)
	posts[0].Title = "changed"
	if c.Posts()[0].Title == "changed" {
		t.Error("catalog shares its input slice")
	}
}

func TestLookup(t *testing.T) {
	c := MustNew(DefaultPosts())

	p, ok := c.Lookup("holistic-wellness-guide")
	if !ok || p.ID != 2 {
		t.Errorf("Lookup = (%d, %v), want (2, true)", p.ID, ok)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posts.yml")
	content := `posts:
  - id: 10
    title: Yoga for Beginners
    excerpt: Gentle first steps.
    thumbnail: ./images/yoga.jpg
    date: "2024-02-01T08:00:00"
    views: 12
    url: ./posts/yoga.html
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	posts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Yoga for Beginners" || posts[0].Views != 12 {
		t.Fatalf("Load = %+v", posts)
	}

	c, err := New(posts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.Posts()[0].DateValid {
		t.Error("expected loaded date to parse")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadAndAttachBodies(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/holistic-wellness-guide.md":     {Data: []byte("# Holistic\n\nBody.")},
		"posts/2023/new-herbal-supplements.md": {Data: []byte("# Herbal")},
		"posts/notes.txt":                      {Data: []byte("ignored")},
	}

	bodies, err := LoadBodies(fsys, "posts/**/*.md")
	if err != nil {
		t.Fatalf("LoadBodies: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(bodies))
	}

	posts := AttachBodies(DefaultPosts(), bodies)
	if posts[0].Body != "" {
		t.Errorf("post without markdown got body %q", posts[0].Body)
	}
	if posts[1].Body != "# Holistic\n\nBody." {
		t.Errorf("holistic body = %q", posts[1].Body)
	}
	if posts[2].Body != "# Herbal" {
		t.Errorf("herbal body = %q", posts[2].Body)
	}
}
