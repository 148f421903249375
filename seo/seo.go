// Package seo resolves per-page meta, Open Graph and Twitter Card values from
// page input and site-wide defaults.
//
// Every function here is pure: it reads its arguments and returns a new value.
// SiteConfig is passed by value so callers cannot mutate shared configuration
// between calls.
package seo

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDescriptionLength is the description cut-off used by GenerateMetaTags.
const DefaultDescriptionLength = 160

const ellipsis = "..."

// Open Graph types.
const (
	TypeWebsite = "website"
	TypeArticle = "article"
	TypeProduct = "product"
)

// Twitter card types.
const (
	CardSummary      = "summary"
	CardSummaryLarge = "summary_large_image"
)

// SiteConfig holds site-wide SEO defaults.
type SiteConfig struct {
	SiteURL       string
	SiteName      string
	Brand         string // substring that marks a title as already branded; defaults to SiteName
	DefaultImage  string
	Locale        string
	TwitterHandle string // optional, e.g. "@handle"
}

// DefaultSiteConfig returns the production defaults. Each call returns a new value.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteURL:      "https://kadydennis.com",
		SiteName:     "Kady Dennis Consulting",
		Brand:        "Kady Dennis",
		DefaultImage: "/images/og-default.jpg",
		Locale:       "en_US",
	}
}

// Input is the per-page SEO intent. Title and Description are required.
type Input struct {
	Title       string
	Description string
	Path        string // page path used for the canonical URL when Canonical is empty
	Canonical   string
	NoIndex     bool
	NoFollow    bool
	OGType      string
	OGImage     string
	OGImageAlt  string
	TwitterCard string

	// Article metadata, emitted only when OGType is TypeArticle.
	PublishedTime string
	ModifiedTime  string
	Author        string
	Section       string
	Tags          []string
}

// ArticleMeta carries the article:* Open Graph values.
type ArticleMeta struct {
	PublishedTime string   `json:"articlePublishedTime"`
	ModifiedTime  string   `json:"articleModifiedTime"`
	Author        string   `json:"articleAuthor"`
	Section       string   `json:"articleSection"`
	Tags          []string `json:"articleTags"`
}

// MetaTags is the fully resolved tag set for one page.
type MetaTags struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
	Robots      string `json:"robots"`

	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
	OGType        string `json:"ogType"`
	OGURL         string `json:"ogUrl"`
	OGImage       string `json:"ogImage"`
	OGImageAlt    string `json:"ogImageAlt"`
	OGSiteName    string `json:"ogSiteName"`
	OGLocale      string `json:"ogLocale"`

	TwitterCard        string `json:"twitterCard"`
	TwitterTitle       string `json:"twitterTitle"`
	TwitterDescription string `json:"twitterDescription"`
	TwitterImage       string `json:"twitterImage"`
	TwitterImageAlt    string `json:"twitterImageAlt"`
	TwitterSite        string `json:"twitterSite,omitempty"`

	// Embedded so its fields flatten into the JSON form; nil (and therefore
	// absent) unless OGType is TypeArticle.
	*ArticleMeta
}

// Breadcrumb is one step of a page's position in the site hierarchy.
type Breadcrumb struct {
	Name string
	URL  string
}

// FullTitle appends " | siteName" unless title already carries the brand.
// The match is a case-insensitive substring test; brand falls back to siteName.
func FullTitle(title, siteName, brand string) string {
	if brand == "" {
		brand = siteName
	}
	if brand != "" && strings.Contains(strings.ToLower(title), strings.ToLower(brand)) {
		return title
	}
	return title + " | " + siteName
}

// TruncateDescription shortens description to at most maxLength runes plus an
// ellipsis, cutting at the last space so no word is split. A maxLength of zero
// or less means DefaultDescriptionLength. When the cut holds no usable space
// the text is hard-cut at maxLength.
func TruncateDescription(description string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultDescriptionLength
	}
	runes := []rune(description)
	if len(runes) <= maxLength {
		return description
	}
	cut := string(runes[:maxLength])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ") + ellipsis
}

// CanonicalURL joins path onto siteURL with a leading slash and, for
// directory-like paths, a trailing slash. A last segment containing a dot is
// treated as a file and left alone.
func CanonicalURL(path, siteURL string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		last := path[strings.LastIndex(path, "/")+1:]
		if !strings.Contains(last, ".") {
			path += "/"
		}
	}
	return strings.TrimRight(siteURL, "/") + path
}

// AbsoluteImageURL returns imagePath as an absolute URL under siteURL.
func AbsoluteImageURL(imagePath, siteURL string) string {
	if strings.HasPrefix(imagePath, "http") {
		return imagePath
	}
	if !strings.HasPrefix(imagePath, "/") {
		imagePath = "/" + imagePath
	}
	return strings.TrimRight(siteURL, "/") + imagePath
}

// Robots builds the robots directive from the indexing flags.
func Robots(noIndex, noFollow bool) string {
	var directives []string
	if noIndex {
		directives = append(directives, "noindex")
	}
	if noFollow {
		directives = append(directives, "nofollow")
	}
	if len(directives) == 0 {
		return "index, follow"
	}
	return strings.Join(directives, ", ")
}

// GenerateMetaTags resolves every tag value a page head needs.
func GenerateMetaTags(in Input, cfg SiteConfig) MetaTags {
	ogType := in.OGType
	if ogType == "" {
		ogType = TypeWebsite
	}
	card := in.TwitterCard
	if card == "" {
		card = CardSummaryLarge
	}

	description := TruncateDescription(in.Description, DefaultDescriptionLength)
	canonical := in.Canonical
	if canonical == "" {
		path := in.Path
		if path == "" {
			path = "/"
		}
		canonical = CanonicalURL(path, cfg.SiteURL)
	}
	image := in.OGImage
	if image == "" {
		image = cfg.DefaultImage
	}
	image = AbsoluteImageURL(image, cfg.SiteURL)
	alt := in.OGImageAlt
	if alt == "" {
		alt = in.Title
	}

	tags := MetaTags{
		Title:       FullTitle(in.Title, cfg.SiteName, cfg.Brand),
		Description: description,
		Canonical:   canonical,
		Robots:      Robots(in.NoIndex, in.NoFollow),

		OGTitle:       in.Title,
		OGDescription: description,
		OGType:        ogType,
		OGURL:         canonical,
		OGImage:       image,
		OGImageAlt:    alt,
		OGSiteName:    cfg.SiteName,
		OGLocale:      cfg.Locale,

		TwitterCard:        card,
		TwitterTitle:       in.Title,
		TwitterDescription: description,
		TwitterImage:       image,
		TwitterImageAlt:    alt,
		TwitterSite:        cfg.TwitterHandle,
	}
	if ogType == TypeArticle {
		tags.ArticleMeta = &ArticleMeta{
			PublishedTime: in.PublishedTime,
			ModifiedTime:  in.ModifiedTime,
			Author:        in.Author,
			Section:       in.Section,
			Tags:          append([]string(nil), in.Tags...),
		}
	}
	return tags
}

// GenerateBreadcrumbs derives a breadcrumb trail from a URL path. The root
// path yields no breadcrumbs; anything else starts with Home at siteURL and
// adds one crumb per segment. Hyphens become spaces and each word gets an
// uppercase first letter; the rest of the word is kept as written.
func GenerateBreadcrumbs(pathname, siteURL string) []Breadcrumb {
	var segments []string
	for _, s := range strings.Split(strings.Trim(pathname, "/"), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return nil
	}

	crumbs := make([]Breadcrumb, 0, len(segments)+1)
	crumbs = append(crumbs, Breadcrumb{Name: "Home", URL: siteURL})
	current := ""
	for _, s := range segments {
		current += "/" + s
		crumbs = append(crumbs, Breadcrumb{
			Name: slugTitle(s),
			URL:  siteURL + current + "/",
		})
	}
	return crumbs
}

func slugTitle(slug string) string {
	upper := cases.Upper(language.English)
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		_, n := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:n]) + w[n:]
	}
	return strings.Join(words, " ")
}
