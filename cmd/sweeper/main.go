// Package main is the guest-record expiry sweeper. It is a one-shot binary
// meant to run on a schedule (cron, systemd timer, or a container job): it
// connects, deletes every expired guest record, logs what it did, and exits.
// The API server never does this work in a request path.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/mhaugen/awaydays/backend/internal/config"
	"github.com/mhaugen/awaydays/backend/internal/repo"
	"github.com/mhaugen/awaydays/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// An unreachable database is the only failure that exits non-zero; sweep
	// errors are logged inside Sweep and the next scheduled run retries.
	backoff := retry.WithMaxRetries(5, retry.NewExponential(1*time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			logger.Warn("database not ready, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	sweeper := service.NewSweeperService(repo.NewFlightRepo(pool), logger)
	sweeper.Sweep(ctx, time.Now().UTC())
}
