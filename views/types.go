package views

import (
	"github.com/eringen/brochure/schema"
	"github.com/eringen/brochure/seo"
)

// PageData is everything the layout needs to render one page. Handlers build
// it per request; components only read it.
type PageData struct {
	Key         string // registered page key, e.g. "about"; empty for resources
	Path        string
	Heading     string
	Intro       string
	Meta        seo.MetaTags
	Schema      schema.Graph
	Breadcrumbs []seo.Breadcrumb
	Nav         []NavItem

	SiteName        string
	CSRFToken       string
	Flash           string
	SubscribeFormID string
	Year            int
}

// NavItem is one header link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}
