package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/huddle/db"
	"github.com/monocle-dev/huddle/internal/config"
	"github.com/monocle-dev/huddle/internal/realtime"
	"github.com/monocle-dev/huddle/internal/router"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and websocket server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(serve)
	},
}

func serve(cfg *config.Config, database *gorm.DB, logger *zap.Logger) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.MigrateDatabase(database); err != nil {
		logger.Error("migration failed", zap.Error(err))
		return err
	}

	var relay realtime.Relay
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
		}
		relay = realtime.NewRedisRelay(client, cfg.RedisPrefix, logger)
		logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr), zap.String("prefix", cfg.RedisPrefix))
	}

	engine, hub, err := router.Setup(router.Deps{Config: cfg, DB: database, Relay: relay, Logger: logger})
	if err != nil {
		return err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()

	failed := make(chan error, 2)
	hubStopped := make(chan struct{})
	go func() {
		defer close(hubStopped)
		if err := hub.Run(hubCtx); err != nil && hubCtx.Err() == nil {
			failed <- fmt.Errorf("room hub stopped: %w", err)
		}
	}()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: engine}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		shutdownOperations(srv, stopHub, hubStopped, logger),
	)

	select {
	case err := <-failed:
		logger.Error("server failed", zap.Error(err))
		return err
	case code := <-wait:
		logger.Info("server exited", zap.Int("code", code))
		if code != 0 {
			return fmt.Errorf("shutdown finished with exit code %d", code)
		}
		return nil
	}
}

// shutdownOperations stops the HTTP server and the room hub. The hub
// operation returns once Run has returned or ctx expires.
func shutdownOperations(srv *http.Server, stopHub context.CancelFunc, hubStopped <-chan struct{}, logger *zap.Logger) map[string]gfshutdown.Operation {
	return map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			logger.Info("shutting down")
			return srv.Shutdown(ctx)
		},
		"room-hub": func(ctx context.Context) error {
			stopHub()
			select {
			case <-hubStopped:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
}
