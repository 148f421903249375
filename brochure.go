// Package brochure serves a consultant's marketing site built with Go, Echo
// and templ: registered pages and a Markdown resources collection, each with
// resolved SEO meta tags and a Schema.org JSON-LD graph, plus contact and
// newsletter endpoints that forward to ConvertKit.
//
// Users may provide their own templ components via the ViewFuncs struct;
// brochure handles the handler logic, middleware and metadata.
package brochure

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/brochure/content"
	"github.com/eringen/brochure/convertkit"
	"github.com/eringen/brochure/views"
)

// ViewFuncs holds the templ components the app calls when rendering pages.
// Nil fields fall back to the views package defaults.
type ViewFuncs struct {
	Page        func(data views.PageData) templ.Component
	Resources   func(data views.PageData, resources []content.Resource) templ.Component
	Resource    func(data views.PageData, r content.Resource) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.Page == nil {
		v.Page = views.Page
	}
	if v.Resources == nil {
		v.Resources = views.ResourceList
	}
	if v.Resource == nil {
		v.Resource = views.ResourceDetail
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App wires together content, handlers, middleware and templates.
type App struct {
	Config     SiteConfig
	Echo       *echo.Echo
	Views      ViewFuncs
	Logger     *zap.Logger
	Resources  *content.Collection
	ConvertKit *convertkit.Client
	Metrics    *Metrics

	formLimiter  *FormLimiter
	contentFS    fs.FS
	httpClient   *http.Client
	customRoutes []func(*App)
	staticDir    string
	pages        []Page
	ready        bool
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	v.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v,
		staticDir: "public",
		pages:     DefaultPages(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		l, err := NewLogger(cfg.LogLevel)
		if err != nil {
			l = zap.NewNop()
		}
		a.Logger = l
	}
	return a
}

// Setup loads content and registers middleware and routes. Start calls it;
// tests call it directly and drive a.Echo as an http.Handler.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return errors.New("brochure: SessionSecret is required")
	}

	fsys := a.contentFS
	if fsys == nil {
		fsys = os.DirFS(a.Config.ContentDir)
	}
	resources, err := content.Load(fsys, content.DefaultDir)
	if err != nil {
		return fmt.Errorf("brochure: load content: %w", err)
	}
	a.Resources = resources

	ckOpts := []convertkit.Option{convertkit.WithHTTPClient(a.httpClient)}
	if a.Config.ConvertKitBaseURL != "" {
		ckOpts = append(ckOpts, convertkit.WithBaseURL(a.Config.ConvertKitBaseURL))
	}
	a.ConvertKit = convertkit.NewClient(a.Config.ConvertKitSecret, ckOpts...)
	if !a.ConvertKit.Configured() {
		a.Logger.Warn("convertkit api secret not set; form submissions will fail")
	}

	a.formLimiter = NewFormLimiter(a.Config.FormRateLimit, a.Config.FormRateWindow)
	a.Metrics = NewMetrics()

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	a.Logger.Info("site ready",
		zap.String("url", a.Config.URL),
		zap.Int("pages", len(a.pages)),
		zap.Int("resources", a.Resources.Len()),
	)
	return nil
}

// Start sets the app up and starts the server.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets are served under /public/ ahead of the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/forms.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", a.handleHealth)
	e.GET("/metrics", echo.WrapHandler(a.Metrics.Handler()))

	e.GET("/", a.handleHome)
	e.GET("/resources/", a.handleResources)
	e.GET("/resources/:slug/", a.handleResource)
	e.GET("/services/:service/", a.handleService)
	e.GET("/:page/", a.handlePage)

	e.POST("/api/contact", a.handleContact)
	e.POST("/api/subscribe", a.handleSubscribe)
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.formLimiter != nil {
		a.formLimiter.Stop()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("brochure: required environment variable %s is not set", key)
	}
	return v
}
