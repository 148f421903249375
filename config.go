package brochure

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/brochure/schema"
	"github.com/eringen/brochure/seo"
)

// SiteConfig holds all configuration for a brochure site.
type SiteConfig struct {
	Name          string // Site name (default "Kady Dennis Consulting")
	Brand         string // Title brand marker (default "Kady Dennis")
	URL           string // Canonical URL, no trailing slash (default "https://kadydennis.com")
	Description   string // Site description for RSS, meta tags and JSON-LD
	Locale        string // og:locale (default "en_US")
	DefaultImage  string // Fallback social image path
	TwitterHandle string // Optional twitter:site value

	AuthorName   string
	AuthorTitle  string
	LogoURL      string
	SocialLinks  []string
	KnowsAbout   []string
	ServiceType  string
	AreaServed   string
	AudienceType string

	Addr       string // Listen address (default ":3000")
	ContentDir string // Root holding content/resources (default ".")

	ConvertKitSecret  string // Missing secret turns form posts into 500s, not a startup failure
	ConvertKitBaseURL string // default convertkit.DefaultBaseURL
	ContactTagID      string // default "15471216"
	SubscribeFormID   string // Form used by the footer newsletter form; empty hides it

	SessionSecret string // Required: flash session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	FormRateLimit  int           // Submissions per IP per window (default 5)
	FormRateWindow time.Duration // default 1min
	LogLevel       string        // debug, info, warn, error (default info)
}

func (c *SiteConfig) setDefaults() {
	seoDefaults := seo.DefaultSiteConfig()
	schemaDefaults := schema.DefaultConfig()

	if c.Name == "" {
		c.Name = seoDefaults.SiteName
	}
	if c.Brand == "" {
		c.Brand = seoDefaults.Brand
	}
	if c.URL == "" {
		c.URL = seoDefaults.SiteURL
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Description == "" {
		c.Description = schemaDefaults.SiteDescription
	}
	if c.Locale == "" {
		c.Locale = seoDefaults.Locale
	}
	if c.DefaultImage == "" {
		c.DefaultImage = seoDefaults.DefaultImage
	}
	if c.AuthorName == "" {
		c.AuthorName = schemaDefaults.AuthorName
	}
	if c.AuthorTitle == "" {
		c.AuthorTitle = schemaDefaults.AuthorTitle
	}
	if c.LogoURL == "" {
		c.LogoURL = c.URL + "/images/logo.png"
	}
	// A nil list means unset; a non-nil one is kept, minus blank entries.
	if c.SocialLinks == nil {
		c.SocialLinks = schemaDefaults.SocialLinks
	} else {
		c.SocialLinks = FilterEmpty(c.SocialLinks)
	}
	if c.KnowsAbout == nil {
		c.KnowsAbout = schemaDefaults.KnowsAbout
	} else {
		c.KnowsAbout = FilterEmpty(c.KnowsAbout)
	}
	if c.ServiceType == "" {
		c.ServiceType = schemaDefaults.ServiceType
	}
	if c.AreaServed == "" {
		c.AreaServed = schemaDefaults.AreaServed
	}
	if c.AudienceType == "" {
		c.AudienceType = schemaDefaults.AudienceType
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "."
	}
	if c.ContactTagID == "" {
		c.ContactTagID = "15471216"
	}
	if c.FormRateLimit <= 0 {
		c.FormRateLimit = 5
	}
	if c.FormRateWindow <= 0 {
		c.FormRateWindow = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// SEO returns the meta tag defaults derived from the site config.
func (c SiteConfig) SEO() seo.SiteConfig {
	return seo.SiteConfig{
		SiteURL:       c.URL,
		SiteName:      c.Name,
		Brand:         c.Brand,
		DefaultImage:  c.DefaultImage,
		Locale:        c.Locale,
		TwitterHandle: c.TwitterHandle,
	}
}

// Schema returns the JSON-LD defaults derived from the site config.
func (c SiteConfig) Schema() schema.Config {
	return schema.Config{
		SiteURL:         c.URL,
		SiteName:        c.Name,
		SiteDescription: c.Description,
		AuthorName:      c.AuthorName,
		AuthorTitle:     c.AuthorTitle,
		LogoURL:         c.LogoURL,
		SocialLinks:     append([]string(nil), c.SocialLinks...),
		KnowsAbout:      append([]string(nil), c.KnowsAbout...),
		ServiceType:     c.ServiceType,
		AreaServed:      c.AreaServed,
		AudienceType:    c.AudienceType,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContentFS reads resources from fsys instead of Config.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}

// WithLogger replaces the logger built from Config.LogLevel.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithHTTPClient sets the client used for ConvertKit calls.
func WithHTTPClient(h *http.Client) Option {
	return func(a *App) {
		a.httpClient = h
	}
}

// WithPages replaces the registered page set.
func WithPages(pages ...Page) Option {
	return func(a *App) {
		a.pages = append([]Page(nil), pages...)
	}
}
