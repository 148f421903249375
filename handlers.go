package brochure

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/brochure/content"
	"github.com/eringen/brochure/schema"
	"github.com/eringen/brochure/seo"
	"github.com/eringen/brochure/views"
)

// findPage returns the registered page served at path.
func (a *App) findPage(path string) (Page, bool) {
	for _, p := range a.pages {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

func (a *App) nav(current string) []views.NavItem {
	var items []views.NavItem
	for _, p := range a.pages {
		if p.NavLabel == "" {
			continue
		}
		items = append(items, views.NavItem{
			Label:  p.NavLabel,
			Href:   p.Path,
			Active: current == p.Path || (p.Path != "/" && strings.HasPrefix(current, p.Path)),
		})
	}
	return items
}

// pageData resolves meta tags, breadcrumbs and the JSON-LD graph for one
// request. so carries the page-specific schema flags and extra nodes; a
// non-empty crumb names the last breadcrumb instead of its URL segment.
func (a *App) pageData(c echo.Context, key string, in seo.Input, so schema.PageOptions, crumb string) views.PageData {
	meta := seo.GenerateMetaTags(in, a.Config.SEO())
	crumbs := seo.GenerateBreadcrumbs(in.Path, a.Config.URL)
	if n := len(crumbs); n > 0 && crumb != "" {
		crumbs[n-1].Name = crumb
	}

	so.URL = meta.Canonical
	so.Title = meta.OGTitle
	so.Description = meta.Description
	so.Breadcrumbs = SchemaBreadcrumbs(crumbs)
	if so.Image == "" && in.OGImage != "" {
		so.Image = meta.OGImage
	}

	return views.PageData{
		Key:             key,
		Path:            in.Path,
		Heading:         in.Title,
		Intro:           in.Description,
		Meta:            meta,
		Schema:          schema.GeneratePageSchema(so, a.Config.Schema()),
		Breadcrumbs:     crumbs,
		Nav:             a.nav(in.Path),
		SiteName:        a.Config.Name,
		CSRFToken:       CsrfToken(c),
		Flash:           popFlash(c),
		SubscribeFormID: a.Config.SubscribeFormID,
		Year:            time.Now().Year(),
	}
}

// pageSchema returns the schema options a registered page contributes.
func (a *App) pageSchema(p Page, canonical, description string) schema.PageOptions {
	cfg := a.Config.Schema()
	so := schema.PageOptions{
		IncludeOrganization: p.Home,
		IncludeWebSite:      p.Home,
	}
	if p.Person {
		so.Additional = append(so.Additional, schema.Person(cfg))
	}
	if p.Service != nil {
		so.Additional = append(so.Additional, schema.Service(schema.ServiceOptions{
			Name:        p.Service.Name,
			Description: description,
			URL:         canonical,
			PriceRange:  p.Service.PriceRange,
		}, cfg))
	}
	for _, prod := range p.Products {
		so.Additional = append(so.Additional, schema.Product(prod, cfg))
	}
	if len(p.FAQs) > 0 {
		so.Additional = append(so.Additional, schema.FAQPage(p.FAQs))
	}
	return so
}

func (a *App) renderPage(c echo.Context, p Page) error {
	in := p.seoInput()
	canonical := seo.CanonicalURL(p.Path, a.Config.URL)
	data := a.pageData(c, p.Key, in, a.pageSchema(p, canonical, seo.TruncateDescription(in.Description, 0)), "")
	// The visible heading is the page heading, not the SEO title.
	data.Heading = p.Heading
	if p.Intro != "" {
		data.Intro = p.Intro
	}
	a.Metrics.page("page")
	return Render(c, a.Views.Page(data))
}

func (a *App) handleHome(c echo.Context) error {
	p, ok := a.findPage("/")
	if !ok {
		return echo.ErrNotFound
	}
	return a.renderPage(c, p)
}

func (a *App) handlePage(c echo.Context) error {
	p, ok := a.findPage("/" + c.Param("page") + "/")
	if !ok {
		return echo.ErrNotFound
	}
	return a.renderPage(c, p)
}

func (a *App) handleService(c echo.Context) error {
	p, ok := a.findPage("/services/" + c.Param("service") + "/")
	if !ok {
		return echo.ErrNotFound
	}
	return a.renderPage(c, p)
}

func (a *App) handleResources(c echo.Context) error {
	p, ok := a.findPage("/resources/")
	if !ok {
		p = Page{Key: seo.PageResources, Path: "/resources/", Heading: "Resources"}
	}
	in := p.seoInput()
	data := a.pageData(c, p.Key, in, a.pageSchema(p, seo.CanonicalURL(p.Path, a.Config.URL), in.Description), "")
	data.Heading = p.Heading
	a.Metrics.page("resources")
	return Render(c, a.Views.Resources(data, a.Resources.List()))
}

func (a *App) handleResource(c echo.Context) error {
	r, err := a.Resources.Get(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}

	in := seo.Input{
		Title:         r.Title,
		Description:   r.Description,
		Path:          r.Path(),
		OGType:        seo.TypeArticle,
		OGImage:       r.OGImage,
		PublishedTime: r.DatePublished,
		ModifiedTime:  r.DateModified,
		Author:        r.Author,
		Section:       r.Section,
		Tags:          r.Tags,
	}
	canonical := seo.CanonicalURL(r.Path(), a.Config.URL)
	image := ""
	if r.OGImage != "" {
		image = seo.AbsoluteImageURL(r.OGImage, a.Config.URL)
	}
	so := schema.PageOptions{
		DatePublished: r.DatePublished,
		DateModified:  r.DateModified,
		Image:         image,
		Additional: []schema.Node{schema.Article(schema.ArticleOptions{
			URL:           canonical,
			Title:         r.Title,
			Description:   r.Description,
			DatePublished: r.DatePublished,
			DateModified:  r.DateModified,
			Image:         image,
			WordCount:     r.WordCount,
		}, a.Config.Schema())},
	}

	data := a.pageData(c, "", in, so, r.Title)
	a.Metrics.page("resource")
	return Render(c, a.Views.Resource(data, r))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Resources.List())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Resources.List())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\nDisallow: /api/\n\n")
	b.WriteString("Sitemap: " + a.Config.URL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "ok",
		"resources":  a.Resources.Len(),
		"convertkit": a.ConvertKit.Configured(),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !strings.HasPrefix(c.Request().URL.Path, "/api/") {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("uri", c.Request().RequestURI),
		)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
