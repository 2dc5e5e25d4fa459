// Command watch follows the countdown of one or more products in the terminal.
//
//	watch --api http://localhost:8000 vase clock
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"auction-console/internal/apiclient"
	"auction-console/internal/countdown"
	"auction-console/internal/forms"
	"auction-console/internal/poller"
	"auction-console/internal/session"
	"auction-console/internal/watch"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
	"github.com/spf13/pflag"
)

func main() {
	apiURL := pflag.String("api", "http://localhost:8000", "auction API base URL")
	pollEvery := pflag.Duration("poll", poller.CardInterval, "server sync interval")
	terminal := pflag.String("terminal", countdown.Ended, "text shown once a product has ended")
	logLevel := pflag.String("log-level", "warn", "log level")
	pflag.Parse()

	productIDs := pflag.Args()
	if len(productIDs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: watch [flags] PRODUCT_ID...")
		os.Exit(2)
	}
	utils.Configure(*logLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.New()
	client := apiclient.New(*apiURL, &http.Client{Timeout: 10 * time.Second}, session.New(session.NewMemoryStore(), nil), clk)

	var (
		mu       sync.Mutex
		registry *watch.Registry
	)
	render := func(productID string, _ int64) {
		mu.Lock()
		defer mu.Unlock()
		if registry == nil {
			return
		}
		v, err := registry.Get(productID)
		if err != nil {
			return
		}
		fmt.Printf("%-12s %-14s %s  highest ₹%-10s [%s]\n", productID, v.Remaining, v.Clock, forms.Rupees(v.HighestBid), v.SyncState)
	}

	registry = watch.NewRegistry(ctx, client, watch.Options{
		Clock:        clk,
		PollInterval: *pollEvery,
		Terminal:     *terminal,
		OnTick:       render,
	})
	defer registry.Close()

	for _, id := range productIDs {
		if _, err := registry.Mount(id, time.Time{}); err != nil {
			utils.Error("failed to watch product", map[string]any{"product_id": id, "error": err.Error()})
		}
	}
	<-ctx.Done()
}
