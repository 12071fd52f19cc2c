package demos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-barry/demos/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// RuntimeConfig is everything Start needs. Nothing is registered globally.
type RuntimeConfig struct {
	Env    string
	Config core.Config

	// Renderer overrides the template renderer built from Config.
	Renderer core.Renderer
	// Registry receives the request metrics in prod. A fresh registry is
	// used when nil.
	Registry *prometheus.Registry
}

type Server struct {
	cfg      RuntimeConfig
	handler  http.Handler
	reloader core.LiveReloaderInterface
}

// NewServer wires the route table and middleware for cfg.
func NewServer(cfg RuntimeConfig) (*Server, error) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}

	assets := core.NewAssets(cfg.Env)

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = core.NewTemplateRenderer(
			core.TemplatesFS(cfg.Config.TemplatesDir),
			core.TemplateFuncs(cfg.Env, assets),
			cfg.Env == "prod" && cfg.Config.Minify,
		)
	}

	s := &Server{cfg: cfg}

	ctx := core.RuntimeContext{Env: cfg.Env}
	if cfg.Env == "dev" {
		s.reloader = core.NewLiveReloader()
		ctx.Reloader = s.reloader
	}

	routes := core.Routes(cfg.Config, ctx, renderer, assets)

	var metrics *core.Metrics
	if cfg.Env == "prod" {
		reg := cfg.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		m, err := core.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		metrics = m
		routes = append(routes, core.Route{
			Pattern: "GET " + core.MetricsPath,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		})
	}

	var handler http.Handler = core.NewRouter(routes)
	if metrics != nil {
		handler = metrics.Middleware(handler)
	}
	if cfg.Config.DebugLogs {
		handler = core.Logger(handler)
	}
	s.handler = core.RequestID(handler)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves cfg until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, cfg RuntimeConfig) error {
	fmt.Println("Starting demos in", cfg.Env, "mode...")

	s, err := NewServer(cfg)
	if err != nil {
		return err
	}

	if s.reloader != nil && cfg.Config.TemplatesDir != "" {
		go func() {
			if err := core.WatchTemplates(ctx, cfg.Config.TemplatesDir, s.reloader.BroadcastReload); err != nil {
				fmt.Println("⚠️  Live reload disabled:", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("✅ Demos running at http://localhost:%d\n", cfg.Config.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		fmt.Println("🛑 Shutting down...")
		return srv.Shutdown(shutdownCtx)
	}
}
