package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vallista-blog/internal/config"
	"vallista-blog/internal/handlers"
	"vallista-blog/internal/middleware"
	"vallista-blog/internal/navbar"
	"vallista-blog/internal/service"
	"vallista-blog/pkg/cache"
	"vallista-blog/pkg/logger"
	"vallista-blog/pkg/navigation"
	"vallista-blog/pkg/validator"
)

type Options struct {
	Theme navbar.Theme
}

type Application struct {
	cfg     *config.Config
	options Options

	cache       *cache.Cache
	rateLimiter *middleware.RateLimitManager

	navbarService *service.NavbarService
	navbarHandler *handlers.NavbarHandler

	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if opts.Theme == (navbar.Theme{}) {
		opts.Theme = navbar.DefaultTheme()
	}

	app := &Application{
		cfg:     cfg,
		options: opts,
	}

	validator.Init()
	app.initCache()

	if err := app.initServices(); err != nil {
		return nil, err
	}

	app.navbarHandler = handlers.NewNavbarHandler(app.navbarService, cfg.SiteName, cfg.SiteURL)

	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		_ = a.rateLimiter.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initCache() {
	c, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableRedis)
	if err != nil {
		logger.Error(err, "Redis unavailable, navbar cache disabled", map[string]interface{}{"addr": a.cfg.RedisURL})
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
}

func (a *Application) initServices() error {
	navCfg, err := navigation.Load(a.cfg.NavConfigPath)
	if err != nil {
		return err
	}

	renderer, err := navbar.NewRenderer(a.options.Theme)
	if err != nil {
		return err
	}

	a.navbarService = service.NewNavbarService(navCfg, renderer, a.cache, a.cfg.NavCacheTTL)

	// Fragments rendered for a previous config version are unreachable now.
	if err := a.cache.InvalidateNavbar(context.Background()); err != nil {
		logger.Warn("Failed to clear stale navbar cache", map[string]interface{}{"error": err.Error()})
	}

	logger.Info("Navigation loaded", map[string]interface{}{
		"categories": len(navCfg.Categories),
		"footer":     len(navCfg.Footer),
		"source":     sourceLabel(a.cfg.NavConfigPath),
	})
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.SecurityHeadersMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.StaticFS("/static", http.FS(navbar.Static()))

	a.rateLimiter = middleware.NewRateLimitManager(context.Background())
	throttle := middleware.RateLimitMiddleware(a.rateLimiter, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow, a.cfg.RateLimitBurst)

	router.GET("/navbar", middleware.NoIndexMiddleware(), throttle, a.navbarHandler.Fragment)

	corsConfig := cors.Config{
		AllowOrigins:  a.cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Viewport-Width", "Sec-CH-Viewport-Width"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}

	api := router.Group("/api/v1")
	api.Use(cors.New(corsConfig), middleware.NoIndexMiddleware(), throttle)
	api.GET("/navigation", a.navbarHandler.Navigation)
	api.OPTIONS("/navigation", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	router.NoRoute(a.navbarHandler.Page)

	a.router = router
}

func sourceLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
