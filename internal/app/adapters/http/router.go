package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"statushub/internal/app/adapters/http/handlers"
	"statushub/internal/app/adapters/http/middlewares"
	"statushub/internal/app/infrastructure/config"
	"statushub/internal/app/ports"
	"statushub/pkg/logger"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares
	srv         *http.Server

	log     logger.Logger
	manager *config.Manager
}

// NewRouter wires the gateway: REST surface, websocket upgrade, static
// media, diagnostics and the operator endpoints.
func NewRouter(log logger.Logger, manager *config.Manager, store ports.StoragePort, hub ports.HubPort, ws http.Handler, media ports.MediaPort, uploadsDir string) *Router {
	r := &Router{
		router:      gin.Default(),
		handlers:    handlers.New(log, manager, store, hub, media),
		middlewares: middlewares.New(log),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	r.router.Use(r.middlewares.CORS())

	api := r.router.Group("/api", r.middlewares.RateLimit(cfg.Limiter.Requests, cfg.Limiter.Per, cfg.Limiter.Burst))
	api.GET("/status", r.handlers.ListStatuses)
	api.GET("/status/user/:userId", r.handlers.ListUserStatuses)
	api.POST("/status", r.handlers.CreateStatus)
	api.POST("/status/upload", r.handlers.UploadStatus)
	api.DELETE("/status/:id", r.handlers.DeleteStatus)
	api.DELETE("/status/user/:userId", r.handlers.DeleteUserStatuses)

	r.router.GET("/ws", gin.WrapH(ws))
	r.router.Static("/uploads", uploadsDir)
	r.router.GET("/stats", r.handlers.Stats)

	// Operator endpoints stay dark unless an admin token hash is configured.
	if cfg.App.AdminTokenHash != "" {
		admin := r.router.Group("/", r.middlewares.AdminAuth(cfg.App.AdminUser, cfg.App.AdminTokenHash))
		admin.GET("/metrics", gin.WrapH(promhttp.Handler()))
		pprof.RouteRegister(admin, "debug/pprof")
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	cfg := r.manager.Get()
	r.srv = r.newServer(cfg.App.ListenAddr, r.router)

	errCh := make(chan error, 1)
	go func() {
		if err := r.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return r.srv.Shutdown(shutdownCtx)
	}
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}

// Handler exposes the built engine for tests.
func (r *Router) Handler() http.Handler {
	return r.router
}
