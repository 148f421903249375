// Package schema builds Schema.org JSON-LD nodes and combines them into a
// single @graph document per page.
//
// Nodes that other nodes point at carry a deterministic @id derived from the
// site URL (Organization, Person, WebSite) or the page URL (WebPage, Article,
// Service, BreadcrumbList). References are always {"@id": ...} stubs, so the
// Organization and Person data is defined once and linked from everywhere else.
package schema

import (
	"bytes"
	"encoding/json"
)

// Context is the JSON-LD @context of every graph.
const Context = "https://schema.org"

// Node is one JSON-LD fragment.
type Node map[string]any

// Type returns the node's @type, or "" when unset.
func (n Node) Type() string {
	t, _ := n["@type"].(string)
	return t
}

// ID returns the node's @id, or "" when unset.
func (n Node) ID() string {
	id, _ := n["@id"].(string)
	return id
}

// Ref returns an @id reference stub.
func Ref(id string) Node {
	return Node{"@id": id}
}

// Graph is the JSON-LD document injected into a page.
type Graph struct {
	Context string `json:"@context"`
	Nodes   []Node `json:"@graph"`
}

// NewGraph wraps nodes, in the given order, into a graph.
func NewGraph(nodes ...Node) Graph {
	if nodes == nil {
		nodes = []Node{}
	}
	return Graph{Context: Context, Nodes: nodes}
}

// Marshal encodes the graph as compact JSON. HTML-significant characters are
// escaped so the output is safe inside a <script> element.
func (g Graph) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(g); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// String returns the compact JSON form, or "{}" if encoding fails.
func (g Graph) String() string {
	b, err := g.Marshal()
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Count returns how many nodes of the given @type the graph holds.
func (g Graph) Count(typ string) int {
	n := 0
	for _, node := range g.Nodes {
		if node.Type() == typ {
			n++
		}
	}
	return n
}

// Config is the site-wide identity used to build @id references.
type Config struct {
	SiteURL         string
	SiteName        string
	SiteDescription string
	AuthorName      string
	AuthorTitle     string
	LogoURL         string
	SocialLinks     []string
	KnowsAbout      []string

	// Service defaults.
	ServiceType  string
	AreaServed   string
	AudienceType string
}

// DefaultConfig returns the production identity. Each call returns a new value
// with its own slices.
func DefaultConfig() Config {
	return Config{
		SiteURL:         "https://kadydennis.com",
		SiteName:        "Kady Dennis Consulting",
		SiteDescription: "AI operations consulting for travel agencies and small businesses",
		AuthorName:      "Kady Dennis",
		AuthorTitle:     "AI Operations Consultant",
		LogoURL:         "https://kadydennis.com/images/logo.png",
		SocialLinks: []string{
			"https://linkedin.com/in/kadydennis",
			"https://www.facebook.com/groups/traveladvisoropscommunity",
		},
		KnowsAbout: []string{
			"AI automation",
			"ClickUp",
			"travel agency operations",
			"workflow design",
			"business process automation",
			"operations consulting",
		},
		ServiceType:  "Operations Consulting",
		AreaServed:   "Worldwide",
		AudienceType: "Travel Advisors, Small Business Owners",
	}
}

// OrganizationID is the @id of the site's Organization node.
func OrganizationID(cfg Config) string { return cfg.SiteURL + "/#organization" }

// PersonID is the @id of the site owner's Person node.
func PersonID(cfg Config) string { return cfg.SiteURL + "/about/#person" }

// WebSiteID is the @id of the WebSite node.
func WebSiteID(cfg Config) string { return cfg.SiteURL + "/#website" }

func logoID(cfg Config) string { return cfg.SiteURL + "/#logo" }

func imageObject(url string) Node {
	return Node{"@type": "ImageObject", "url": url}
}

func strs(v []string) []string {
	if v == nil {
		return []string{}
	}
	return append([]string(nil), v...)
}
