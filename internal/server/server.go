// Package server assembles the aggregation client, cache, telemetry, and
// HTTP surface into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cenkalti/backoff/v4"

	appclient "sports-stats-service/internal/app/client"
	"sports-stats-service/internal/cache"
	"sports-stats-service/internal/config"
	httpserver "sports-stats-service/internal/http"
	"sports-stats-service/internal/http/handlers"
	"sports-stats-service/internal/http/middleware"
	"sports-stats-service/internal/logging"
	"sports-stats-service/internal/metrics"
	"sports-stats-service/internal/providers"
	"sports-stats-service/internal/providers/balldontlie"
	"sports-stats-service/internal/quota"
	"sports-stats-service/internal/sports"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	client        *appclient.Client
	cacheCloser   func() error
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with balldontlie providers for the configured sports.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProviders(cfg, logger, nil)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, provs map[string]providers.DataProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	tracker := quota.NewTracker()
	if provs == nil {
		provs = buildProviders(cfg, tracker, recorder)
	}

	resultCache, cacheCloser := buildCache(cfg, logger)

	client := appclient.New(appclient.Config{
		Providers: provs,
		Cache:     resultCache,
		Quota:     tracker,
		Logger:    logger,
		Metrics:   recorder,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		client:        client,
		cacheCloser:   cacheCloser,
		httpServer:    buildHTTPServer(cfg, client, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// buildProviders creates one balldontlie client per configured sport, all
// feeding the same quota tracker since the API key's quota is shared.
func buildProviders(cfg config.Config, tracker *quota.Tracker, recorder *metrics.Recorder) map[string]providers.DataProvider {
	provs := make(map[string]providers.DataProvider, len(cfg.Sports))
	for _, key := range cfg.Sports {
		sport, ok := sports.ByKey(key)
		if !ok {
			continue
		}
		provs[sport.Key] = balldontlie.NewClient(balldontlie.Config{
			BaseURL:           sport.BaseURL,
			APIKey:            cfg.Balldontlie.APIKey,
			HTTPClient:        &http.Client{Timeout: cfg.Balldontlie.HTTPTimeout},
			Quota:             tracker,
			Metrics:           recorder,
			RequestsPerMinute: cfg.Balldontlie.RequestsPerMinute,
			MaxPages:          cfg.Balldontlie.MaxPages,
		})
	}
	return provs
}

func buildCache(cfg config.Config, logger *slog.Logger) (cache.Cache, func() error) {
	if cfg.Cache.Backend == config.CacheBackendRedis {
		redisCache, err := cache.NewRedis(cfg.Cache.RedisURL, logger)
		if err == nil {
			return redisCache, redisCache.Close
		}
		if logger != nil {
			logger.Warn("redis cache unavailable, falling back to memory", "error", err)
		}
	}
	return cache.NewMemory(), nil
}

func buildHTTPServer(cfg config.Config, client *appclient.Client, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(client, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
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

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.warmup(ctx)
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// warmup primes the team cache for each configured sport so the first
// requests do not pay the upstream round trip. Retries with exponential
// backoff since the upstream may still be rate limiting us from a previous
// run.
func (s *Server) warmup(ctx context.Context) {
	if !s.cfg.Warmup.Enabled {
		return
	}

	for _, key := range s.cfg.Sports {
		key := key
		policy := backoff.NewExponentialBackOff()
		policy.MaxElapsedTime = s.cfg.Warmup.MaxElapsed

		err := backoff.Retry(func() error {
			_, err := s.client.ListTeams(ctx, key)
			if err != nil && ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}, backoff.WithContext(policy, ctx))

		if s.logger == nil {
			continue
		}
		if err != nil {
			s.logger.Warn("team cache warmup failed", slog.String(logging.FieldSport, key), "error", err)
		} else {
			s.logger.Info("team cache warmed", slog.String(logging.FieldSport, key))
		}
	}
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

	if s.cacheCloser != nil {
		if err := s.cacheCloser(); err != nil && s.logger != nil {
			s.logger.Warn("cache close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
