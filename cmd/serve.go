package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sleekhr/employee-directory/internal/config"
	"github.com/sleekhr/employee-directory/internal/db"
	httpSrv "github.com/sleekhr/employee-directory/internal/http"
	"github.com/sleekhr/employee-directory/internal/logger"
	"github.com/sleekhr/employee-directory/internal/ratelimit"
	"github.com/sleekhr/employee-directory/internal/repository"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Init(cfg.Log.Level)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var repo repository.EmployeeRepository
		if cfg.MySQL.DSN != "" {
			mysqlDB, err := db.NewMySQLConnection(cfg.MySQL.DSN, db.MySQLOpts{
				MaxOpenConns:    cfg.MySQL.MaxOpenConns,
				MaxIdleConns:    cfg.MySQL.MaxIdleConns,
				ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
				ConnMaxIdleTime: cfg.MySQL.ConnMaxIdleTime,
				PingTimeout:     cfg.MySQL.PingTimeout,
			})
			if err != nil {
				return fmt.Errorf("mysql connect: %w", err)
			}
			defer mysqlDB.Close()
			repo = repository.NewEmployeeRepository(mysqlDB)
		} else {
			log.Printf("no MySQL DSN configured, using in-memory store")
			repo = repository.NewMemoryRepository()
		}

		var limiter ratelimit.Limiter
		switch cfg.RateLimit.Backend {
		case "redis":
			redisClient, err := db.NewRedisClient(db.RedisOpts{
				Addr:        cfg.Redis.Addr,
				Password:    cfg.Redis.Password,
				DB:          cfg.Redis.DB,
				DialTimeout: cfg.Redis.DialTimeout,
			})
			if err != nil {
				return fmt.Errorf("redis connect: %w", err)
			}
			defer func() { _ = redisClient.Close() }()
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		default:
			mem := ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
			go mem.Run(ctx, cfg.RateLimit.SweepInterval)
			limiter = mem
		}

		server := httpSrv.NewServer(cfg, repo, limiter)

		errCh := make(chan error, 1)
		go func() {
			log.Printf("starting http on %s", cfg.HTTP.Addr)
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			log.Printf("signal received: %s, shutting down...", sig)
		case err := <-errCh:
			if err != nil {
				log.Printf("http server exited: %v", err)
			}
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)

		return nil
	},
}
