package server

import (
	"context"
	"log/slog"
	"net/http"

	"draft-board-service/internal/app/board"
	"draft-board-service/internal/app/profile"
	"draft-board-service/internal/app/reports"
	"draft-board-service/internal/config"
	httpserver "draft-board-service/internal/http"
	"draft-board-service/internal/http/handlers"
	"draft-board-service/internal/http/middleware"
	"draft-board-service/internal/loader"
	"draft-board-service/internal/logging"
	"draft-board-service/internal/metrics"
	"draft-board-service/internal/providers"
	"draft-board-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	boardService  *board.Service
	profileService *profile.Service
	reportService *reports.Service
	httpServer    httpServer
	metricsServer httpServer
	loader        Loader
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and loader wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	name := normalizeProviderName(cfg.Provider)
	if provider == nil {
		provider = selectProvider(cfg, logger)
	}
	provider = providers.NewInstrumentedProvider(provider, name, logger, recorder)

	memoryStore, boardSvc, profileSvc, reportSvc := buildServices()
	ldr := loader.New(provider, memoryStore, logger, recorder)
	httpSrv := buildHTTPServer(cfg, boardSvc, profileSvc, reportSvc, logger, recorder, ldr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		boardService:  boardSvc,
		profileService: profileSvc,
		reportService: reportSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		loader:        ldr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, ldr Loader) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		loader:     ldr,
	}
}

func buildServices() (*store.MemoryStore, *board.Service, *profile.Service, *reports.Service) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, board.NewService(memoryStore), profile.NewService(memoryStore), reports.NewService(memoryStore)
}

func buildHTTPServer(cfg config.Config, boardSvc *board.Service, profileSvc *profile.Service, reportSvc *reports.Service, logger *slog.Logger, recorder *metrics.Recorder, ldr Loader) httpServer {
	var statusFn func() loader.Status
	if ldr != nil {
		statusFn = ldr.Status
	}

	handler := handlers.NewHandler(boardSvc, profileSvc, reportSvc, logger, recorder, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the loader and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.loader.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.loader.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop loader", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
