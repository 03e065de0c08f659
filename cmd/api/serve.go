package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/hub-schedules/internal/app"
	"github.com/BruksfildServices01/hub-schedules/internal/cache"
	dbpkg "github.com/BruksfildServices01/hub-schedules/internal/db"
	"github.com/BruksfildServices01/hub-schedules/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schedule tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := dbpkg.Open(cfg)
		if err != nil {
			return err
		}
		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
		logger.Info().Msg("migrations applied")
		return nil
	},
}

// connectRedis returns nil when no REDIS_URL is configured.
func connectRedis(ctx context.Context) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	return cache.NewClient(ctx, cfg.RedisURL)
}

func runServe(cmd *cobra.Command, args []string) error {
	db := dbpkg.NewDB(cfg, logger)

	rdb, err := connectRedis(cmd.Context())
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Info().Msg("REDIS_URL not set, settings cache disabled")
	}

	var (
		reg      prometheus.Registerer
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		r := prometheus.NewRegistry()
		r.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		reg, gatherer = r, r
	}

	a := app.New(db, rdb, cfg, reg, logger)
	defer a.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, a, cfg, gatherer, nil)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
