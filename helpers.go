package brochure

import (
	"net/url"
	"path"
	"strings"

	"github.com/eringen/brochure/schema"
	"github.com/eringen/brochure/seo"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SchemaBreadcrumbs converts a meta breadcrumb trail into BreadcrumbList items.
func SchemaBreadcrumbs(crumbs []seo.Breadcrumb) []schema.BreadcrumbItem {
	if len(crumbs) == 0 {
		return nil
	}
	items := make([]schema.BreadcrumbItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = schema.BreadcrumbItem{Name: c.Name, URL: c.URL}
	}
	return items
}

// safeRedirect returns target when it is a site-relative path, else fallback.
func safeRedirect(target, fallback string) string {
	target = strings.TrimSpace(target)
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return fallback
	}
	return target
}
