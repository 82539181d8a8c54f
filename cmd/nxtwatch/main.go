package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/nxtwatch/nxtwatch/internal/database"
	"github.com/nxtwatch/nxtwatch/internal/saved"
	"github.com/nxtwatch/nxtwatch/internal/server"
	"github.com/nxtwatch/nxtwatch/internal/videoapi"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(getEnv("LOG_LEVEL", "info")),
	})))

	if err := run(); err != nil {
		slog.Error("nxtwatch stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	port := getEnv("PORT", "8080")
	baseURL := getEnv("BASE_URL", "http://localhost:8080")

	cfg := server.Config{
		BaseURL:    baseURL,
		LoginURL:   getEnv("LOGIN_URL", "/login"),
		AssetHosts: splitList(getEnv("ASSET_HOSTS", "https://assets.ccbp.in")),
		TrustProxy: getEnv("TRUSTED_PROXY", "false") == "true",
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := database.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(databaseURL); err != nil {
			return fmt.Errorf("database migration failed: %w", err)
		}
		slog.Info("database migrations applied")

		cfg.Saved = saved.NewPostgresStore(db.Pool)
		cfg.Pinger = db
	} else {
		slog.Info("DATABASE_URL not set, saved videos kept in memory")
		cfg.Saved = saved.NewMemoryStore()
	}

	var videos videoapi.Fetcher = videoapi.NewClient(
		getEnv("VIDEO_API_URL", "https://apis.ccbp.in"),
		getEnvDuration("UPSTREAM_TIMEOUT", 0),
	)
	if ttl := getEnvDuration("VIDEO_CACHE_TTL", 0); ttl > 0 {
		videos = videoapi.NewCachingFetcher(videos, ttl)
		slog.Info("video cache enabled", "ttl", ttl.String())
	}
	cfg.Videos = videos

	srv := server.New(cfg)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("nxtwatch listening", "port", port, "base_url", baseURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-shutdownCh:
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	slog.Info("shutdown complete")
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("30s") or plain seconds ("30").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if seconds := getEnvInt64(key, -1); seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
