package server

import (
	"context"
	"log/slog"
	"net/http"

	playersapp "cfb-scout-service/internal/app/players"
	"cfb-scout-service/internal/app/scout"
	teamsapp "cfb-scout-service/internal/app/teams"
	"cfb-scout-service/internal/config"
	httpserver "cfb-scout-service/internal/http"
	"cfb-scout-service/internal/metrics"
	"cfb-scout-service/internal/providers"
	"cfb-scout-service/internal/providers/cfbd"
	"cfb-scout-service/internal/providers/espn"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	registry      *providers.Registry
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New assembles the provider registry, app services, and HTTP servers from
// configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	registry := buildRegistry(cfg, logger, recorder)

	defaultTag, ok := providers.ParseTag(cfg.Provider)
	if !ok {
		if logger != nil {
			logger.Warn("unknown default provider, falling back to cfbd", slog.String("provider", cfg.Provider))
		}
		defaultTag = providers.TagCFBD
	}

	teamsSvc := teamsapp.NewService(registry)
	playersSvc := playersapp.NewService(registry, logger)
	scoutSvc := scout.NewService(cfg.OpenAI, logger, recorder)

	handler := httpserver.NewHandler(teamsSvc, playersSvc, scoutSvc, defaultTag, logger)
	router := httpserver.NewRouter(handler, logger, recorder)

	httpSrv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		registry:      registry,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildRegistry(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *providers.Registry {
	registry := providers.NewRegistry()
	registry.Register(providers.TagCFBD, cfbd.NewClient(cfg.CFBD, nil, logger, recorder))
	registry.Register(providers.TagESPN, espn.NewClient(cfg.ESPN, nil, logger, recorder))
	return registry
}

// Run starts the HTTP (and metrics) servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

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
