package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vallista-blog/internal/navbar"
	"vallista-blog/pkg/cache"
	"vallista-blog/pkg/logger"
	"vallista-blog/pkg/navigation"
)

var (
	metricsOnce          sync.Once
	navbarRendersTotal   *prometheus.CounterVec
	navbarRenderDuration *prometheus.HistogramVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		navbarRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vallista_blog",
			Subsystem: "navbar",
			Name:      "renders_total",
			Help:      "Navbar fragments served, by layout and cache outcome",
		}, []string{"layout", "cache"})

		navbarRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vallista_blog",
			Subsystem: "navbar",
			Name:      "render_duration_seconds",
			Help:      "Time spent executing navbar templates",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		}, []string{"layout"})
	})
}

// NavbarService owns the navigation config and produces navbar views and
// rendered fragments, going through the cache when one is enabled.
type NavbarService struct {
	config      navigation.Config
	fingerprint string
	renderer    *navbar.Renderer
	cache       *cache.Cache
	ttl         time.Duration
}

func NewNavbarService(cfg navigation.Config, renderer *navbar.Renderer, cacheService *cache.Cache, ttl time.Duration) *NavbarService {
	initMetrics()

	return &NavbarService{
		config:      cfg,
		fingerprint: cfg.Fingerprint(),
		renderer:    renderer,
		cache:       cacheService,
		ttl:         ttl,
	}
}

func (s *NavbarService) Config() navigation.Config {
	return s.config
}

func (s *NavbarService) Renderer() *navbar.Renderer {
	return s.renderer
}

func (s *NavbarService) View(currentPath string, viewport navbar.Viewport) navbar.View {
	return navbar.Build(s.config, currentPath, viewport)
}

// Fragment returns the rendered aside element for currentPath. Cache failures
// are logged and fall back to rendering.
func (s *NavbarService) Fragment(ctx context.Context, currentPath string, viewport navbar.Viewport) (string, error) {
	view := s.View(currentPath, viewport)
	layout := layoutLabel(view.ShowTooltips)

	if !s.cache.Enabled() {
		navbarRendersTotal.WithLabelValues(layout, "disabled").Inc()
		return s.render(view, layout)
	}

	key := cache.NavbarKey(s.fingerprint, view.ShowTooltips, view.ActiveLink())
	html, err := s.cache.GetCachedNavbar(ctx, key)
	if err == nil {
		navbarRendersTotal.WithLabelValues(layout, "hit").Inc()
		return html, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.FromContext(ctx).WithError(err).WithField("key", key).Warn("Failed to read navbar from cache")
	}

	navbarRendersTotal.WithLabelValues(layout, "miss").Inc()
	html, err = s.render(view, layout)
	if err != nil {
		return "", err
	}

	if err := s.cache.CacheNavbar(ctx, key, html, s.ttl); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("key", key).Warn("Failed to cache navbar")
	}

	return html, nil
}

func (s *NavbarService) render(view navbar.View, layout string) (string, error) {
	timer := prometheus.NewTimer(navbarRenderDuration.WithLabelValues(layout))
	defer timer.ObserveDuration()

	return s.renderer.RenderString(view)
}

func layoutLabel(tooltips bool) string {
	if tooltips {
		return "desktop"
	}
	return "mobile"
}
