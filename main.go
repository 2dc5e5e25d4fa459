package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	admin "auction-console/internal/adminService"
	"auction-console/internal/apiclient"
	bidder "auction-console/internal/bidderService"
	"auction-console/internal/config"
	"auction-console/internal/repository"
	"auction-console/internal/server"
	"auction-console/internal/session"
	"auction-console/internal/watch"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.Configure(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openSessionStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open session store", map[string]any{"backend": cfg.SessionBackend, "error": err.Error()})
	}

	clk := clock.New()
	sess := session.New(store, func() {
		utils.Warn("session rejected by server, please log in again", nil)
	})
	client := apiclient.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, sess, clk)

	registry := watch.NewRegistry(ctx, client, watch.Options{
		Clock:        clk,
		PollInterval: cfg.PollInterval,
		TickInterval: cfg.TickInterval,
	})
	defer registry.Close()

	router := server.SetupRouter(server.Services{
		Bidder: bidder.NewBidderService(client, sess, clk),
		Admin:  admin.NewAdminService(client, sess, repository.NewMemoryRepo(), clk),
		Live:   registry,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	utils.Info("starting auction console", map[string]any{
		"addr":            cfg.Addr(),
		"api_base_url":    cfg.APIBaseURL,
		"session_backend": cfg.SessionBackend,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// openSessionStore returns the session backend selected in the config
func openSessionStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	switch cfg.SessionBackend {
	case config.SessionFile:
		return session.NewFileStore(cfg.SessionFile)
	case config.SessionRedis:
		rdb, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(rdb), nil
	default:
		return session.NewMemoryStore(), nil
	}
}
