package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk shape of a seed list. JSON files parse too.
type seedFile struct {
	Posts []Post `yaml:"posts"`
}

// Load reads a seed list from a YAML or JSON file.
func Load(filePath string) ([]Post, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", filePath, err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", filePath, err)
	}
	return sf.Posts, nil
}

// LoadBodies returns the markdown files under fsys matching pattern
// (a doublestar glob such as "posts/**/*.md"), keyed by file stem.
func LoadBodies(fsys fs.FS, pattern string) (map[string]string, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}

	bodies := make(map[string]string, len(matches))
	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", m, err)
		}
		base := path.Base(m)
		bodies[strings.TrimSuffix(base, path.Ext(base))] = string(data)
	}
	return bodies, nil
}

// AttachBodies returns a copy of posts with Body filled from bodies by slug.
// Posts that already carry a body keep it.
func AttachBodies(posts []Post, bodies map[string]string) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		if p.Body == "" {
			if b, ok := bodies[p.Slug()]; ok {
				p.Body = b
			}
		}
		out[i] = p
	}
	return out
}
