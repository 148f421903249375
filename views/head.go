package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/brochure/schema"
	"github.com/eringen/brochure/seo"
)

// Head renders the title, meta, Open Graph, Twitter and article tags for a
// page, followed by its JSON-LD graph. Empty values are skipped.
func Head(meta seo.MetaTags, graph schema.Graph) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<title>")
		h.text(meta.Title)
		h.raw("</title>")
		metaTag(h, "name", "description", meta.Description)
		if meta.Canonical != "" {
			h.raw(`<link rel="canonical"`)
			h.attr("href", meta.Canonical)
			h.raw(">")
		}
		metaTag(h, "name", "robots", meta.Robots)

		metaTag(h, "property", "og:type", meta.OGType)
		metaTag(h, "property", "og:url", meta.OGURL)
		metaTag(h, "property", "og:title", meta.OGTitle)
		metaTag(h, "property", "og:description", meta.OGDescription)
		metaTag(h, "property", "og:image", meta.OGImage)
		metaTag(h, "property", "og:image:alt", meta.OGImageAlt)
		metaTag(h, "property", "og:site_name", meta.OGSiteName)
		metaTag(h, "property", "og:locale", meta.OGLocale)

		metaTag(h, "name", "twitter:card", meta.TwitterCard)
		metaTag(h, "name", "twitter:title", meta.TwitterTitle)
		metaTag(h, "name", "twitter:description", meta.TwitterDescription)
		metaTag(h, "name", "twitter:image", meta.TwitterImage)
		metaTag(h, "name", "twitter:image:alt", meta.TwitterImageAlt)
		metaTag(h, "name", "twitter:site", meta.TwitterSite)

		if a := meta.ArticleMeta; a != nil {
			metaTag(h, "property", "article:published_time", a.PublishedTime)
			metaTag(h, "property", "article:modified_time", a.ModifiedTime)
			metaTag(h, "property", "article:author", a.Author)
			metaTag(h, "property", "article:section", a.Section)
			for _, tag := range a.Tags {
				metaTag(h, "property", "article:tag", tag)
			}
		}

		if len(graph.Nodes) > 0 {
			raw, err := graph.Marshal()
			if err != nil {
				return err
			}
			h.raw(`<script type="application/ld+json">`)
			h.raw(string(raw))
			h.raw("</script>")
		}
		return h.err
	})
}

func metaTag(h *htmlWriter, attr, key, content string) {
	if content == "" {
		return
	}
	h.raw("<meta")
	h.attr(attr, key)
	h.attr("content", content)
	h.raw(">")
}
