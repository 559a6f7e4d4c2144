package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osa911/clipdesk/internal/api/handlers"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/api/validation"
	"github.com/osa911/clipdesk/internal/config"
	"github.com/osa911/clipdesk/internal/db"
	"github.com/osa911/clipdesk/internal/identity"
	"github.com/osa911/clipdesk/internal/logging"
	"github.com/osa911/clipdesk/internal/policy"
	"github.com/osa911/clipdesk/internal/repository"
	"github.com/osa911/clipdesk/internal/server/routes"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	store  *repository.Store
}

// NewServer wires repositories, services and handlers into a gin engine
func NewServer(cfg *config.Config, database *db.Database, verifier identity.Verifier) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Request logging goes through our own logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	validation.RegisterWithGin()

	store := repository.NewStore(database)

	authService := service.NewAuthService(store.Users, store.Sessions, verifier, cfg.SessionTTL)
	analyticsService := service.NewAnalyticsService(store.Analytics)

	h := &routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService, service.NewUserService(store.Users), utils.CookieOptions{Secure: cfg.CookieSecure}),
		Health:      handlers.NewHealthHandler(database),
		Application: handlers.NewApplicationHandler(service.NewApplicationService(store.Applications)),
		Team:        handlers.NewTeamHandler(service.NewTeamService(store.Teams, store.Campaigns)),
		Campaign:    handlers.NewCampaignHandler(service.NewCampaignService(store.Campaigns, store.Clips)),
		Clip:        handlers.NewClipHandler(service.NewClipService(store.Clips, store.Campaigns, store.Analytics)),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService),
		Message:     handlers.NewMessageHandler(service.NewMessageService(store.Messages)),
		Dashboard:   handlers.NewDashboardHandler(service.NewDashboardService(store, analyticsService)),
	}

	applicationRate := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   cfg.ApplicationRateRPS,
		Burst: cfg.ApplicationRateBurst,
	})

	m := &routes.Middleware{
		Policy:          policy.Default(),
		Authenticate:    middleware.Authenticate(authService),
		ApplicationRate: applicationRate,
	}

	router := gin.New()
	// Without configured proxies, forwarding headers are ignored and the peer address is the client
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logging.GetGlobalLogger().Error("Ignoring invalid trusted proxies: %v", err)
		_ = router.SetTrustedProxies(nil)
	}
	routes.SetupGlobalMiddleware(router, cfg.AllowedOrigins, cfg.AllowAnyOrigin())
	routes.Setup(router, h, m)

	return &Server{
		cfg:    cfg,
		router: router,
		store:  store,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store exposes the repositories the server was built on
func (s *Server) Store() *repository.Store {
	return s.store
}

// Start serves HTTP until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
