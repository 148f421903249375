package schema

// PageOptions drives GeneratePageSchema.
type PageOptions struct {
	URL           string
	Title         string
	Description   string
	Breadcrumbs   []BreadcrumbItem
	DatePublished string
	DateModified  string
	Image         string

	// Homepage flags.
	IncludeOrganization bool
	IncludeWebSite      bool

	// Appended last, in order.
	Additional []Node
}

// GeneratePageSchema composes the graph for one page: the WebPage node, then
// Organization and WebSite when flagged, then the BreadcrumbList when
// breadcrumbs are given, then any additional nodes.
func GeneratePageSchema(opts PageOptions, cfg Config) Graph {
	nodes := make([]Node, 0, 4+len(opts.Additional))
	nodes = append(nodes, WebPage(WebPageOptions{
		URL:           opts.URL,
		Title:         opts.Title,
		Description:   opts.Description,
		DatePublished: opts.DatePublished,
		DateModified:  opts.DateModified,
		Image:         opts.Image,
	}, cfg))
	if opts.IncludeOrganization {
		nodes = append(nodes, Organization(cfg))
	}
	if opts.IncludeWebSite {
		nodes = append(nodes, WebSite(cfg))
	}
	if len(opts.Breadcrumbs) > 0 {
		nodes = append(nodes, Breadcrumbs(opts.Breadcrumbs, cfg))
	}
	nodes = append(nodes, opts.Additional...)
	return NewGraph(nodes...)
}
