package brochure

import (
	"github.com/eringen/brochure/schema"
	"github.com/eringen/brochure/seo"
)

// Page is a registered static page. Its SEO title and description come from
// the seo page overrides when Key has one, else from Heading and Intro.
type Page struct {
	Key      string
	Path     string // site-relative, with leading and trailing slash
	Heading  string
	Intro    string
	NavLabel string // shown in the header when set

	Home     bool // adds Organization and WebSite nodes
	Person   bool // adds the site owner's Person node
	Service  *ServiceInfo
	FAQs     []schema.FAQItem
	Products []schema.ProductOptions
}

// ServiceInfo describes a consulting offer for its Service node.
type ServiceInfo struct {
	Name       string
	PriceRange string
}

// DefaultPages returns the site's page set. Each call returns new values.
func DefaultPages() []Page {
	return []Page{
		{Key: seo.PageHome, Path: "/", Heading: "Operations systems for travel advisors", Intro: "Done-for-you builds, VIP strategy days, workflow audits and DIY templates.", Home: true},
		{Key: seo.PageAbout, Path: "/about/", Heading: "About Kady", NavLabel: "About", Person: true},
		{Key: seo.PageServices, Path: "/services/", Heading: "Services", NavLabel: "Services"},
		{Key: seo.PageDoneForYouSystems, Path: "/services/done-for-you-systems/", Heading: "Done-For-You Systems", Service: &ServiceInfo{Name: "Done-For-You Systems"}},
		{Key: seo.PageVIPStrategyDay, Path: "/services/vip-strategy-day/", Heading: "VIP Strategy Day", Service: &ServiceInfo{Name: "VIP Strategy Day"}},
		{Key: seo.PageWorkflowAudit, Path: "/services/workflow-audit/", Heading: "Workflow Audit", Service: &ServiceInfo{Name: "Workflow Audit", PriceRange: "$500"}},
		{Key: seo.PageShop, Path: "/shop/", Heading: "Templates & Tools", NavLabel: "Shop"},
		{Key: seo.PageResources, Path: "/resources/", Heading: "Free Resources", NavLabel: "Resources"},
		{Key: seo.PageCommunity, Path: "/community/", Heading: "Travel Agent Workflows Community", NavLabel: "Community"},
		{Key: seo.PageContact, Path: "/contact/", Heading: "Let's talk", NavLabel: "Contact"},
	}
}

// seoInput resolves the page's SEO intent, applying any registered override.
func (p Page) seoInput() seo.Input {
	in := seo.Input{Title: p.Heading, Description: p.Intro, Path: p.Path}
	if o, ok := seo.PageSEO(p.Key); ok {
		in = in.WithOverride(o)
	}
	return in
}
