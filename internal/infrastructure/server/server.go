package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/workspacefs/workspaced/internal/api/http"
	"github.com/workspacefs/workspaced/internal/api/middleware"
	"github.com/workspacefs/workspaced/internal/infrastructure/config"
	"github.com/workspacefs/workspaced/internal/infrastructure/logging"
	"github.com/workspacefs/workspaced/internal/infrastructure/monitoring"
	"github.com/workspacefs/workspaced/internal/providers/filesystem"
	"github.com/workspacefs/workspaced/internal/service"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	ws       *workspace.Workspace
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Info("initializing workspaced",
		zap.String("port", cfg.Server.Port),
		zap.String("workspace_root", cfg.Workspace.Root),
	)

	ws, err := workspace.New(cfg.Workspace.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}
	logger.Info("workspace ready", zap.String("root", ws.Root()))

	metrics := monitoring.NewMetrics()

	registry := service.NewRegistry()
	if err := registry.Register(filesystem.NewProvider(ws)); err != nil {
		return nil, fmt.Errorf("failed to register filesystem provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, ws, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("server initialized")

	return &Server{
		router:   router,
		registry: registry,
		ws:       ws,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close flushes pending state before shutdown
func (s *Server) Close() error {
	s.logger.Info("shutting down server")
	s.logger.Sync()
	return nil
}
