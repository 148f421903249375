// Package content loads the site's resource collection: Markdown files with a
// YAML front matter header, validated, rendered and sanitized once at startup.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("content: not found")

// DefaultDir is where resources live relative to the content root.
const DefaultDir = "content/resources"

// Resource is one entry of the resources collection.
type Resource struct {
	Title         string
	Description   string
	Author        string
	DatePublished string
	DateModified  string
	Slug          string
	Featured      bool
	DownloadURL   string
	OGImage       string
	Section       string
	Tags          []string

	Published time.Time
	Modified  time.Time
	Body      string // Markdown source
	HTML      string // rendered and sanitized body
	WordCount int
}

// Path is the resource's site-relative URL path.
func (r Resource) Path() string {
	return "/resources/" + r.Slug + "/"
}

type frontMatter struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Author        string   `yaml:"author"`
	DatePublished string   `yaml:"datePublished"`
	DateModified  string   `yaml:"dateModified"`
	Slug          string   `yaml:"slug"`
	Featured      bool     `yaml:"featured"`
	DownloadURL   string   `yaml:"downloadUrl"`
	OGImage       string   `yaml:"ogImage"`
	Section       string   `yaml:"section"`
	Tags          []string `yaml:"tags"`
}

// ValidationError reports a resource file that does not match the collection shape.
type ValidationError struct {
	File   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %s: %s %s", e.File, e.Field, e.Reason)
}

// Collection is an immutable, ordered set of resources.
type Collection struct {
	resources []Resource
	bySlug    map[string]int
}

// Load reads every .md file in dir. A missing dir yields an empty collection.
func Load(fsys fs.FS, dir string) (*Collection, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newCollection(nil), nil
		}
		return nil, fmt.Errorf("content: read %s: %w", dir, err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy := bluemonday.UGCPolicy()

	var resources []Resource
	seen := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		file := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", file, err)
		}
		r, err := parseResource(file, data)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[r.Slug]; ok {
			return nil, &ValidationError{File: file, Field: "slug", Reason: fmt.Sprintf("%q already used by %s", r.Slug, prev)}
		}
		seen[r.Slug] = file

		var buf bytes.Buffer
		if err := md.Convert([]byte(r.Body), &buf); err != nil {
			return nil, fmt.Errorf("content: render %s: %w", file, err)
		}
		r.HTML = policy.Sanitize(buf.String())
		resources = append(resources, r)
	}
	return newCollection(resources), nil
}

func parseResource(file string, data []byte) (Resource, error) {
	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Resource{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}

	required := []struct {
		field string
		value string
	}{
		{"title", front.Title},
		{"description", front.Description},
		{"author", front.Author},
		{"datePublished", front.DatePublished},
		{"dateModified", front.DateModified},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return Resource{}, &ValidationError{File: file, Field: f.field, Reason: "is required"}
		}
	}
	published, ok := parseDate(front.DatePublished)
	if !ok {
		return Resource{}, &ValidationError{File: file, Field: "datePublished", Reason: "is not a date"}
	}
	modified, ok := parseDate(front.DateModified)
	if !ok {
		return Resource{}, &ValidationError{File: file, Field: "dateModified", Reason: "is not a date"}
	}

	slug := Slugify(front.Slug)
	if slug == "" {
		slug = Slugify(strings.TrimSuffix(path.Base(file), path.Ext(file)))
	}
	if slug == "" {
		return Resource{}, &ValidationError{File: file, Field: "slug", Reason: "is empty"}
	}

	var tags []string
	for _, t := range front.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}

	return Resource{
		Title:         strings.TrimSpace(front.Title),
		Description:   strings.TrimSpace(front.Description),
		Author:        strings.TrimSpace(front.Author),
		DatePublished: strings.TrimSpace(front.DatePublished),
		DateModified:  strings.TrimSpace(front.DateModified),
		Slug:          slug,
		Featured:      front.Featured,
		DownloadURL:   strings.TrimSpace(front.DownloadURL),
		OGImage:       strings.TrimSpace(front.OGImage),
		Section:       strings.TrimSpace(front.Section),
		Tags:          tags,
		Published:     published,
		Modified:      modified,
		Body:          body,
		WordCount:     len(strings.Fields(body)),
	}, nil
}

func newCollection(resources []Resource) *Collection {
	sort.SliceStable(resources, func(i, j int) bool {
		a, b := resources[i], resources[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if !a.Published.Equal(b.Published) {
			return a.Published.After(b.Published)
		}
		return a.Slug < b.Slug
	})
	c := &Collection{resources: resources, bySlug: make(map[string]int, len(resources))}
	for i, r := range resources {
		c.bySlug[r.Slug] = i
	}
	return c
}

// Len returns the number of resources.
func (c *Collection) Len() int {
	return len(c.resources)
}

// List returns every resource, featured first, then newest first.
func (c *Collection) List() []Resource {
	return append([]Resource(nil), c.resources...)
}

// Featured returns only the featured resources.
func (c *Collection) Featured() []Resource {
	var out []Resource
	for _, r := range c.resources {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// Get returns the resource with the given slug.
func (c *Collection) Get(slug string) (Resource, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Resource{}, ErrNotFound
	}
	return c.resources[i], nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimPrefix(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\r\n")
		}
	}
	return "", input
}

func parseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02", "2006-1-2"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Slugify converts a title or file name to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
