package schema

// Organization is referenced site-wide as publisher, provider, brand and seller.
func Organization(cfg Config) Node {
	return Node{
		"@type": "Organization",
		"@id":   OrganizationID(cfg),
		"name":  cfg.SiteName,
		"url":   cfg.SiteURL,
		"logo": Node{
			"@type":      "ImageObject",
			"@id":        logoID(cfg),
			"url":        cfg.LogoURL,
			"contentUrl": cfg.LogoURL,
			"caption":    cfg.SiteName,
		},
		"description": cfg.SiteDescription,
		"founder":     Ref(PersonID(cfg)),
		"sameAs":      strs(cfg.SocialLinks),
	}
}

// Person describes the site owner; articles reference it as author.
func Person(cfg Config) Node {
	return Node{
		"@type":      "Person",
		"@id":        PersonID(cfg),
		"name":       cfg.AuthorName,
		"jobTitle":   cfg.AuthorTitle,
		"url":        cfg.SiteURL + "/about/",
		"worksFor":   Ref(OrganizationID(cfg)),
		"knowsAbout": strs(cfg.KnowsAbout),
		"sameAs":     strs(cfg.SocialLinks),
	}
}

// WebSite describes the site with a sitelinks search action.
func WebSite(cfg Config) Node {
	return Node{
		"@type":       "WebSite",
		"@id":         WebSiteID(cfg),
		"url":         cfg.SiteURL,
		"name":        cfg.SiteName,
		"description": cfg.SiteDescription,
		"publisher":   Ref(OrganizationID(cfg)),
		"potentialAction": Node{
			"@type": "SearchAction",
			"target": Node{
				"@type":       "EntryPoint",
				"urlTemplate": cfg.SiteURL + "/search?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
}

// WebPageOptions describes one page.
type WebPageOptions struct {
	URL           string
	Title         string
	Description   string
	DatePublished string
	DateModified  string
	Image         string
}

// WebPage is emitted for every page.
func WebPage(opts WebPageOptions, cfg Config) Node {
	n := Node{
		"@type":       "WebPage",
		"@id":         opts.URL + "#webpage",
		"url":         opts.URL,
		"name":        opts.Title,
		"description": opts.Description,
		"isPartOf":    Ref(WebSiteID(cfg)),
		"about":       Ref(OrganizationID(cfg)),
	}
	if opts.DatePublished != "" {
		n["datePublished"] = opts.DatePublished
	}
	if opts.DateModified != "" {
		n["dateModified"] = opts.DateModified
	}
	if opts.Image != "" {
		n["primaryImageOfPage"] = imageObject(opts.Image)
	}
	return n
}

// BreadcrumbItem maps a name to an absolute URL.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// Breadcrumbs builds a BreadcrumbList. Its @id comes from the last item's URL,
// or the site URL when items is empty; positions are 1-based.
func Breadcrumbs(items []BreadcrumbItem, cfg Config) Node {
	base := cfg.SiteURL
	if len(items) > 0 && items[len(items)-1].URL != "" {
		base = items[len(items)-1].URL
	}
	elements := make([]Node, 0, len(items))
	for i, it := range items {
		elements = append(elements, Node{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.URL,
		})
	}
	return Node{
		"@type":           "BreadcrumbList",
		"@id":             base + "#breadcrumb",
		"itemListElement": elements,
	}
}

// ServiceOptions describes one consulting offer.
type ServiceOptions struct {
	Name         string
	Description  string
	URL          string
	PriceRange   string
	AreaServed   string
	AudienceType string
}

// Service describes an offer provided by the Organization.
func Service(opts ServiceOptions, cfg Config) Node {
	area := opts.AreaServed
	if area == "" {
		area = cfg.AreaServed
	}
	audience := opts.AudienceType
	if audience == "" {
		audience = cfg.AudienceType
	}
	n := Node{
		"@type":       "Service",
		"@id":         opts.URL + "#service",
		"name":        opts.Name,
		"description": opts.Description,
		"url":         opts.URL,
		"serviceType": cfg.ServiceType,
		"provider":    Ref(OrganizationID(cfg)),
		"areaServed":  area,
		"audience": Node{
			"@type":        "Audience",
			"audienceType": audience,
		},
	}
	if opts.PriceRange != "" {
		n["priceRange"] = opts.PriceRange
	}
	return n
}

// FAQItem is one question and its answer.
type FAQItem struct {
	Question string
	Answer   string
}

// FAQPage lists questions with accepted answers.
func FAQPage(faqs []FAQItem) Node {
	entities := make([]Node, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, Node{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": Node{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return Node{
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// ArticleOptions describes a blog post or resource.
type ArticleOptions struct {
	URL           string
	Title         string
	Description   string
	DatePublished string
	DateModified  string
	Image         string
	WordCount     int
}

// Article is authored by the Person and published by the Organization.
func Article(opts ArticleOptions, cfg Config) Node {
	n := Node{
		"@type":         "Article",
		"@id":           opts.URL + "#article",
		"headline":      opts.Title,
		"description":   opts.Description,
		"url":           opts.URL,
		"datePublished": opts.DatePublished,
		"dateModified":  opts.DateModified,
		"author":        Ref(PersonID(cfg)),
		"publisher":     Ref(OrganizationID(cfg)),
		"isPartOf":      Ref(WebSiteID(cfg)),
	}
	if opts.Image != "" {
		n["image"] = imageObject(opts.Image)
	}
	if opts.WordCount > 0 {
		n["wordCount"] = opts.WordCount
	}
	return n
}

// Availability is a schema.org ItemAvailability value.
type Availability string

const (
	InStock    Availability = "InStock"
	OutOfStock Availability = "OutOfStock"
	PreOrder   Availability = "PreOrder"
)

// ProductOptions describes a shop item.
type ProductOptions struct {
	Name          string
	Description   string
	URL           string
	Price         float64
	PriceCurrency string // default USD
	Image         string
	Availability  Availability // default InStock
}

// Product describes a shop item sold by the Organization.
func Product(opts ProductOptions, cfg Config) Node {
	currency := opts.PriceCurrency
	if currency == "" {
		currency = "USD"
	}
	availability := opts.Availability
	if availability == "" {
		availability = InStock
	}
	n := Node{
		"@type":       "Product",
		"name":        opts.Name,
		"description": opts.Description,
		"url":         opts.URL,
		"brand":       Ref(OrganizationID(cfg)),
		"offers": Node{
			"@type":         "Offer",
			"price":         opts.Price,
			"priceCurrency": currency,
			"availability":  Context + "/" + string(availability),
			"seller":        Ref(OrganizationID(cfg)),
		},
	}
	if opts.Image != "" {
		n["image"] = opts.Image
	}
	return n
}
