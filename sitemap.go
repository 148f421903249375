package brochure

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/brochure/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists every registered page followed by every resource.
func (a *App) renderSitemap(c echo.Context, resources []content.Resource) error {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(a.pages)+len(resources))
	for _, p := range a.pages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, p.Path)})
	}
	for _, r := range resources {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "resources", r.Slug),
			LastMod: r.Modified.Format("2006-01-02"),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
