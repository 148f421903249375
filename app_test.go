package brochure

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/eringen/brochure/schema"
)

const guideMD = `---
title: ClickUp Setup Guide
description: Step-by-step ClickUp setup for travel advisors.
author: Kady Dennis
datePublished: 2024-01-15
dateModified: 2024-02-01
section: Guides
tags: [clickup, workflows]
---
# Getting started

Create a workspace, then add your first list.
`

type ckRequest struct {
	Path string
	Body map[string]any
}

// fakeConvertKit records subscribe calls and answers with status and reply.
type fakeConvertKit struct {
	mu       sync.Mutex
	requests []ckRequest
	status   int
	reply    string
}

func (f *fakeConvertKit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	f.mu.Lock()
	f.requests = append(f.requests, ckRequest{Path: r.URL.Path, Body: body})
	status, reply := f.status, f.reply
	f.mu.Unlock()
	if status == 0 {
		status = http.StatusOK
	}
	if reply == "" {
		reply = `{"subscription":{"id":1,"state":"active"}}`
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

func (f *fakeConvertKit) last(t *testing.T) ckRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeConvertKit) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestApp(t *testing.T, ck *fakeConvertKit, mutate func(*SiteConfig)) *App {
	t.Helper()
	cfg := SiteConfig{
		URL:              "https://example.com/",
		SessionSecret:    "test-session-secret",
		ConvertKitSecret: "ck-secret",
		SubscribeFormID:  "321",
		FormRateLimit:    100,
	}
	if ck != nil {
		srv := httptest.NewServer(ck)
		t.Cleanup(srv.Close)
		cfg.ConvertKitBaseURL = srv.URL
	}
	if mutate != nil {
		mutate(&cfg)
	}
	fsys := fstest.MapFS{
		"content/resources/clickup-setup-guide.md": &fstest.MapFile{Data: []byte(guideMD)},
	}
	app := New(cfg, ViewFuncs{}, WithContentFS(fsys), WithLogger(zaptest.NewLogger(t)), WithStaticDir(t.TempDir()))
	require.NoError(t, app.Setup())
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func serve(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func get(app *App, target string) *httptest.ResponseRecorder {
	return serve(app, httptest.NewRequest(http.MethodGet, target, nil))
}

func postJSON(app *App, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return serve(app, req)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

// graphNodes returns the @graph nodes of the page's JSON-LD script.
func graphNodes(t *testing.T, doc *goquery.Document) []map[string]any {
	t.Helper()
	script := doc.Find(`script[type="application/ld+json"]`)
	require.Equal(t, 1, script.Length())
	var g struct {
		Context string           `json:"@context"`
		Graph   []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(script.Text()), &g))
	assert.Equal(t, "https://schema.org", g.Context)
	return g.Graph
}

func nodeTypes(nodes []map[string]any) []string {
	var types []string
	for _, n := range nodes {
		types = append(types, n["@type"].(string))
	}
	return types
}

func findNode(nodes []map[string]any, typ string) map[string]any {
	for _, n := range nodes {
		if n["@type"] == typ {
			return n
		}
	}
	return nil
}

func TestSetupRequiresSessionSecret(t *testing.T) {
	app := New(SiteConfig{}, ViewFuncs{}, WithLogger(zaptest.NewLogger(t)), WithContentFS(fstest.MapFS{}))
	err := app.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SessionSecret")
}

func TestSetupFailsOnInvalidContent(t *testing.T) {
	fsys := fstest.MapFS{"content/resources/bad.md": &fstest.MapFile{Data: []byte("# no front matter\n")}}
	app := New(SiteConfig{SessionSecret: "s"}, ViewFuncs{}, WithLogger(zaptest.NewLogger(t)), WithContentFS(fsys))
	err := app.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load content")
}

func TestHomePage(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := get(app, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	doc := document(t, rec)
	assert.Equal(t, "Kady Dennis | AI Operations Consultant for Travel Advisors | Done-For-You & DIY Solutions", doc.Find("title").First().Text())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://example.com/", canonical)

	nodes := graphNodes(t, doc)
	assert.Equal(t, []string{"WebPage", "Organization", "WebSite"}, nodeTypes(nodes))
	assert.Equal(t, "https://example.com/#webpage", nodes[0]["@id"])
	assert.Equal(t, "https://example.com/#organization", nodes[1]["@id"])

	assert.Equal(t, 1, doc.Find(`form[data-form="subscribe"]`).Length())
	assert.Zero(t, doc.Find(".breadcrumbs").Length())
}

func TestAboutPageAddsPerson(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := get(app, "/about/")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := document(t, rec)
	assert.Equal(t, "About Kady", doc.Find("main h1").Text())
	nodes := graphNodes(t, doc)
	assert.Equal(t, []string{"WebPage", "BreadcrumbList", "Person"}, nodeTypes(nodes))
	assert.Equal(t, "https://example.com/about/#breadcrumb", nodes[1]["@id"])
	assert.Equal(t, "page", doc.Find(`header a[href="/about/"]`).AttrOr("aria-current", ""))
}

func TestServicePageAddsService(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := get(app, "/services/workflow-audit/")
	require.Equal(t, http.StatusOK, rec.Code)

	nodes := graphNodes(t, document(t, rec))
	assert.Equal(t, []string{"WebPage", "BreadcrumbList", "Service"}, nodeTypes(nodes))
	service := findNode(nodes, "Service")
	assert.Equal(t, "Workflow Audit", service["name"])
	assert.Equal(t, "$500", service["priceRange"])
	assert.Equal(t, "https://example.com/services/workflow-audit/#service", service["@id"])
	assert.Equal(t, map[string]any{"@id": "https://example.com/#organization"}, service["provider"])

	crumbs := findNode(nodes, "BreadcrumbList")["itemListElement"].([]any)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "Workflow Audit", crumbs[2].(map[string]any)["name"])

	vip := graphNodes(t, document(t, get(app, "/services/vip-strategy-day/")))
	assert.NotContains(t, findNode(vip, "Service"), "priceRange")
}

func TestUnknownPagesRenderNotFound(t *testing.T) {
	app := newTestApp(t, nil, nil)
	for _, target := range []string{"/nope/", "/services/nope/", "/resources/missing/", "/a/b/c/"} {
		rec := get(app, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "Page not found", document(t, rec).Find("h1").Text(), target)
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := get(app, "/about")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/about/", rec.Header().Get("Location"))
}

func TestResourcePages(t *testing.T) {
	app := newTestApp(t, nil, nil)

	list := get(app, "/resources/")
	require.Equal(t, http.StatusOK, list.Code)
	listDoc := document(t, list)
	assert.Equal(t, "/resources/clickup-setup-guide/", listDoc.Find(".resources a").AttrOr("href", ""))
	assert.Equal(t, "Free Resources | Travel Agent Workflow Guides | Kady Dennis Consulting", listDoc.Find("title").First().Text())

	rec := get(app, "/resources/clickup-setup-guide/")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := document(t, rec)

	og, _ := doc.Find(`meta[property="og:type"]`).Attr("content")
	assert.Equal(t, "article", og)
	published, _ := doc.Find(`meta[property="article:published_time"]`).Attr("content")
	assert.Equal(t, "2024-01-15", published)
	section, _ := doc.Find(`meta[property="article:section"]`).Attr("content")
	assert.Equal(t, "Guides", section)
	assert.Equal(t, 2, doc.Find(`meta[property="article:tag"]`).Length())
	assert.Equal(t, "Getting started", doc.Find("article h1").Eq(1).Text())

	nodes := graphNodes(t, doc)
	assert.Equal(t, []string{"WebPage", "BreadcrumbList", "Article"}, nodeTypes(nodes))
	assert.Equal(t, "2024-01-15", nodes[0]["datePublished"])
	article := findNode(nodes, "Article")
	assert.Equal(t, "ClickUp Setup Guide", article["headline"])
	assert.Greater(t, article["wordCount"].(float64), 5.0)
	assert.Equal(t, map[string]any{"@id": "https://example.com/about/#person"}, article["author"])

	crumbs := findNode(nodes, "BreadcrumbList")["itemListElement"].([]any)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "ClickUp Setup Guide", crumbs[2].(map[string]any)["name"])
	assert.Equal(t, "ClickUp Setup Guide", doc.Find(`.breadcrumbs [aria-current="page"]`).Text())
}

func TestSitemap(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := get(app, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	require.Len(t, set.URLs, len(DefaultPages())+1)
	assert.Equal(t, "https://example.com/", set.URLs[0].Loc)
	last := set.URLs[len(set.URLs)-1]
	assert.Equal(t, "https://example.com/resources/clickup-setup-guide/", last.Loc)
	assert.Equal(t, "2024-02-01", last.LastMod)
}

func TestFeed(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := get(app, "/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)

	var feed rssXML
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Equal(t, "Kady Dennis Consulting", feed.Channel.Title)
	assert.Equal(t, "en-us", feed.Channel.Language)
	require.Len(t, feed.Channel.Items, 1)
	item := feed.Channel.Items[0]
	assert.Equal(t, "https://example.com/resources/clickup-setup-guide/", item.Link)
	assert.Equal(t, []string{"clickup", "workflows"}, item.Categories)
	assert.True(t, strings.HasPrefix(item.PubDate, "Mon, 15 Jan 2024"), item.PubDate)
}

func TestRobotsAndHealth(t *testing.T) {
	app := newTestApp(t, nil, nil)

	robots := get(app, "/robots.txt")
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Sitemap: https://example.com/sitemap.xml")
	assert.Contains(t, robots.Body.String(), "Disallow: /api/")

	health := get(app, "/healthz")
	require.Equal(t, http.StatusOK, health.Code)
	body := decodeJSON(t, health)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 1.0, body["resources"])
	assert.Equal(t, true, body["convertkit"])
}

func TestFormsScriptIsEmbedded(t *testing.T) {
	app := newTestApp(t, nil, nil)
	rec := get(app, "/public/forms.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "X-CSRF-Token")
}

func TestContactForwardsToTag(t *testing.T) {
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, nil)

	rec := postJSON(app, "/api/contact", `{"name":"Jane","email":"jane@example.com","message":"Need help with ClickUp"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true, "message": "Message sent successfully!"}, decodeJSON(t, rec))

	got := ck.last(t)
	assert.Equal(t, "/v3/tags/15471216/subscribe", got.Path)
	assert.Equal(t, "ck-secret", got.Body["api_secret"])
	assert.Equal(t, "jane@example.com", got.Body["email"])
	assert.Equal(t, "Jane", got.Body["first_name"])
	assert.Equal(t, map[string]any{
		"contact_subject": "General Inquiry",
		"contact_message": "Need help with ClickUp",
	}, got.Body["fields"])

	metrics := get(app, "/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `brochure_form_submissions_total{form="contact",outcome="success"} 1`)
}

func TestContactValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"a@b.co","message":"hi"}`, "Name, email, and message are required"},
		{"missing email", `{"name":"A","message":"hi"}`, "Name, email, and message are required"},
		{"blank message", `{"name":"A","email":"a@b.co","message":"   "}`, "Name, email, and message are required"},
		{"empty body", ``, "Name, email, and message are required"},
		{"malformed json", `{"name":`, "Invalid request body"},
		{"wrong type", `{"name":5,"email":"a@b.co","message":"hi"}`, "Invalid request body"},
	}
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(app, "/api/contact", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]any{"error": tt.want}, decodeJSON(t, rec))
		})
	}
	assert.Zero(t, ck.count())
}

func TestContactUpstreamFailure(t *testing.T) {
	ck := &fakeConvertKit{status: http.StatusUnauthorized, reply: `{"error":"Authorization Failed"}`}
	app := newTestApp(t, ck, nil)

	rec := postJSON(app, "/api/contact", `{"name":"A","email":"a@b.co","message":"hi","subject":"Audit"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "Failed to send message"}, decodeJSON(t, rec))
	assert.Equal(t, "Audit", ck.last(t).Body["fields"].(map[string]any)["contact_subject"])
}

func TestMissingSecretIsConfigurationError(t *testing.T) {
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, func(c *SiteConfig) { c.ConvertKitSecret = "" })

	contact := postJSON(app, "/api/contact", `{"name":"A","email":"a@b.co","message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, contact.Code)
	assert.Equal(t, map[string]any{"error": "Server configuration error"}, decodeJSON(t, contact))

	subscribe := postJSON(app, "/api/subscribe", `{"email":"a@b.co","formId":"1"}`)
	assert.Equal(t, http.StatusInternalServerError, subscribe.Code)
	assert.Equal(t, map[string]any{"error": "Server configuration error"}, decodeJSON(t, subscribe))
	assert.Zero(t, ck.count())
}

func TestSubscribe(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPath string
		wantTags any
	}{
		{"form with tags", `{"email":"a@b.co","firstName":"Ann","formId":"123","tags":["5",6]}`, "/v3/forms/123/subscribe", []any{5.0, 6.0}},
		{"numeric form id", `{"email":"a@b.co","formId":123}`, "/v3/forms/123/subscribe", nil},
		{"first tag only", `{"email":"a@b.co","tags":[77,88]}`, "/v3/tags/77/subscribe", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ck := &fakeConvertKit{reply: `{"subscription":{"id":9}}`}
			app := newTestApp(t, ck, nil)

			rec := postJSON(app, "/api/subscribe", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := decodeJSON(t, rec)
			assert.Equal(t, true, body["success"])
			assert.Equal(t, "Successfully subscribed!", body["message"])
			assert.Equal(t, map[string]any{"id": 9.0}, body["subscriber"])

			got := ck.last(t)
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, "a@b.co", got.Body["email"])
			assert.Equal(t, tt.wantTags, got.Body["tags"])
		})
	}
}

func TestSubscribeValidation(t *testing.T) {
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, nil)

	rec := postJSON(app, "/api/subscribe", `{"formId":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Email is required"}, decodeJSON(t, rec))

	rec = postJSON(app, "/api/subscribe", `{"email":"a@b.co","tags":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Form ID or tag required"}, decodeJSON(t, rec))

	rec = postJSON(app, "/api/subscribe", `{"email":"a@b.co","formId":{"x":1}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Invalid request body"}, decodeJSON(t, rec))
	assert.Zero(t, ck.count())
}

func TestSubscribeUpstreamFailureIncludesDetails(t *testing.T) {
	ck := &fakeConvertKit{status: http.StatusUnprocessableEntity, reply: `{"error":"Email address is invalid"}`}
	app := newTestApp(t, ck, nil)

	rec := postJSON(app, "/api/subscribe", `{"email":"nope","formId":"1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{
		"error":   "Subscription failed",
		"details": `{"error":"Email address is invalid"}`,
	}, decodeJSON(t, rec))
}

func TestTransportFailureIsGeneric(t *testing.T) {
	app := newTestApp(t, nil, func(c *SiteConfig) { c.ConvertKitBaseURL = "http://127.0.0.1:1" })

	rec := postJSON(app, "/api/subscribe", `{"email":"a@b.co","formId":"1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "An error occurred"}, decodeJSON(t, rec))
}

func TestFormsAreRateLimited(t *testing.T) {
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, func(c *SiteConfig) { c.FormRateLimit = 1 })

	first := postJSON(app, "/api/contact", `{"name":"A","email":"a@b.co","message":"hi"}`)
	assert.Equal(t, http.StatusOK, first.Code)
	second := postJSON(app, "/api/contact", `{"name":"A","email":"a@b.co","message":"hi"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, map[string]any{"error": "Too many requests"}, decodeJSON(t, second))
	assert.Equal(t, 1, ck.count())
}

func TestFormPostWithoutTokenIsForbidden(t *testing.T) {
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("name=A&email=a%40b.co&message=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(app, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, ck.count())
}

func TestBrowserFormPostRedirectsWithFlash(t *testing.T) {
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, nil)

	page := get(app, "/contact/")
	require.Equal(t, http.StatusOK, page.Code)
	token, ok := document(t, page).Find(`form[data-form="contact"] input[name="_csrf"]`).Attr("value")
	require.True(t, ok)
	cookies := page.Result().Cookies()

	form := url.Values{
		"_csrf":    {token},
		"redirect": {"/contact/"},
		"name":     {"Jane"},
		"email":    {"jane@example.com"},
		"message":  {"Hello"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := serve(app, req)
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, "/contact/", rec.Header().Get("Location"))
	assert.Equal(t, "Jane", ck.last(t).Body["first_name"])

	follow := httptest.NewRequest(http.MethodGet, "/contact/", nil)
	for _, c := range append(cookies, rec.Result().Cookies()...) {
		follow.AddCookie(c)
	}
	shown := serve(app, follow)
	require.Equal(t, http.StatusOK, shown.Code)
	assert.Equal(t, "Message sent successfully!", document(t, shown).Find(`[role="status"]`).Text())
}

func TestBrowserFormPostIgnoresOffsiteRedirect(t *testing.T) {
	ck := &fakeConvertKit{}
	app := newTestApp(t, ck, nil)

	page := get(app, "/")
	token, _ := document(t, page).Find(`form[data-form="subscribe"] input[name="_csrf"]`).Attr("value")
	form := url.Values{"_csrf": {token}, "redirect": {"//evil.example"}, "email": {"a@b.co"}, "formId": {"321"}}
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range page.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := serve(app, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, "/v3/forms/321/subscribe", ck.last(t).Path)
}

func TestCustomViewsAndRoutes(t *testing.T) {
	fsys := fstest.MapFS{}
	app := New(SiteConfig{SessionSecret: "s"}, ViewFuncs{},
		WithLogger(zaptest.NewLogger(t)),
		WithContentFS(fsys),
		WithPages(Page{Key: "faq", Path: "/faq/", Heading: "FAQ", Intro: "Answers", NavLabel: "FAQ"}),
		WithCustomRoutes(func(a *App) {
			a.Echo.GET("/ping/", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
		}),
	)
	require.NoError(t, app.Setup())
	defer app.Close()

	assert.Equal(t, "pong", get(app, "/ping/").Body.String())
	rec := get(app, "/faq/")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := document(t, rec)
	assert.Equal(t, "FAQ | Kady Dennis Consulting", doc.Find("title").First().Text())
	assert.Equal(t, http.StatusNotFound, get(app, "/about/").Code)
	assert.Equal(t, http.StatusNotFound, get(app, "/").Code)
}

func TestPageProductsAndFAQs(t *testing.T) {
	shop := Page{
		Key:     "templates",
		Path:    "/templates/",
		Heading: "Templates",
		Intro:   "Ready-made ClickUp templates",
		Products: []schema.ProductOptions{
			{Name: "Client Onboarding Template", Description: "ClickUp onboarding list", URL: "https://example.com/templates/#onboarding", Price: 47},
		},
		FAQs: []schema.FAQItem{
			{Question: "Do I need ClickUp?", Answer: "Yes, a free plan works."},
			{Question: "Can I get a refund?", Answer: "Within 14 days."},
		},
	}
	app := New(SiteConfig{URL: "https://example.com", SessionSecret: "s"}, ViewFuncs{},
		WithLogger(zaptest.NewLogger(t)),
		WithContentFS(fstest.MapFS{}),
		WithPages(shop),
	)
	require.NoError(t, app.Setup())
	defer app.Close()

	rec := get(app, "/templates/")
	require.Equal(t, http.StatusOK, rec.Code)
	nodes := graphNodes(t, document(t, rec))
	assert.Equal(t, []string{"WebPage", "BreadcrumbList", "Product", "FAQPage"}, nodeTypes(nodes))

	product := findNode(nodes, "Product")
	assert.Equal(t, "Client Onboarding Template", product["name"])
	assert.Equal(t, map[string]any{"@id": "https://example.com/#organization"}, product["brand"])
	offer := product["offers"].(map[string]any)
	assert.Equal(t, 47.0, offer["price"])
	assert.Equal(t, "USD", offer["priceCurrency"])
	assert.Equal(t, "https://schema.org/InStock", offer["availability"])

	questions := findNode(nodes, "FAQPage")["mainEntity"].([]any)
	require.Len(t, questions, 2)
	first := questions[0].(map[string]any)
	assert.Equal(t, "Do I need ClickUp?", first["name"])
	assert.Equal(t, "Yes, a free plan works.", first["acceptedAnswer"].(map[string]any)["text"])
}

func TestValidationPrecedesMissingSecret(t *testing.T) {
	app := newTestApp(t, nil, func(c *SiteConfig) { c.ConvertKitSecret = "" })

	rec := postJSON(app, "/api/subscribe", `{"email":"a@b.co"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Form ID or tag required"}, decodeJSON(t, rec))

	rec = postJSON(app, "/api/contact", `{"email":"a@b.co"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Name, email, and message are required"}, decodeJSON(t, rec))
}
