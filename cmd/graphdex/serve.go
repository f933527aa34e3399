package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/helix-bio/graphdex/internal/cache"
	"github.com/helix-bio/graphdex/internal/config"
	"github.com/helix-bio/graphdex/internal/curie"
	logpkg "github.com/helix-bio/graphdex/internal/logger"
	"github.com/helix-bio/graphdex/internal/metrics"
	associationrepo "github.com/helix-bio/graphdex/internal/repository/association"
	entityrepo "github.com/helix-bio/graphdex/internal/repository/entity"
	mappingrepo "github.com/helix-bio/graphdex/internal/repository/mapping"
	"github.com/helix-bio/graphdex/internal/solr"
	chiTransport "github.com/helix-bio/graphdex/internal/transport/chi"
	associationuc "github.com/helix-bio/graphdex/internal/usecase/association"
	entityuc "github.com/helix-bio/graphdex/internal/usecase/entity"
	searchuc "github.com/helix-bio/graphdex/internal/usecase/search"
	"github.com/helix-bio/graphdex/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the graphdex HTTP API server",
	Long: `Start the graphdex HTTP API server in front of the knowledge-graph index.

Configuration is read from config/<ENV>.yaml (ENV defaults to "local");
values may reference environment variables with ${VAR:-default} syntax.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// An explicit --solr-url beats the config file.
	if cmd.Flags().Changed("solr-url") {
		cfg.Solr.BaseURL = solrURL
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting graphdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("solr_base_url", cfg.Solr.BaseURL),
	)

	gateway, err := solr.NewClient(solr.Config{
		BaseURL: cfg.Solr.BaseURL,
		Timeout: time.Duration(cfg.Solr.TimeoutSec) * time.Second,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create search backend client: %w", err)
	}

	ctx := cmd.Context()
	if err := gateway.WaitForReady(ctx, time.Duration(cfg.Solr.ReadinessTimeoutSec)*time.Second); err != nil {
		return fmt.Errorf("search backend not ready: %w", err)
	}
	logger.Info("Connected to search backend")

	// Register backend metrics explicitly (no init())
	metrics.RegisterSolrMetrics()

	links, err := curie.New()
	if err != nil {
		return fmt.Errorf("failed to load curie tables: %w", err)
	}

	// Create repositories
	entityRepo := entityrepo.New(gateway)
	assocRepo := associationrepo.New(gateway, links)
	mappingRepo := mappingrepo.New(gateway)

	// Create use case services
	entitySvc := entityuc.New(entityRepo, assocRepo, links, logger)
	assocSvc := associationuc.New(assocRepo, logger)
	searchSvc := searchuc.New(entityRepo, mappingRepo, logger)

	// Create chi server
	server := chiTransport.NewServer(entitySvc, assocSvc, searchSvc, gateway, logger)

	if cfg.Cache.Enabled() {
		respCache, err := cache.New(cache.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
			TTL:      time.Duration(cfg.Cache.TTLSec) * time.Second,
		}, metrics.CacheTotal, logger)
		if err != nil {
			return fmt.Errorf("failed to create response cache: %w", err)
		}
		defer respCache.Close()
		server = server.WithCache(respCache)
		logger.Info("Response cache enabled",
			zap.Strings("addrs", cfg.Cache.Addrs),
			zap.Int("ttl_sec", cfg.Cache.TTLSec),
		)
	}

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
