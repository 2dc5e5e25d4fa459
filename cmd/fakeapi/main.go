// Command fakeapi serves the in-memory auction API for local development.
package main

import (
	"net/http"
	"os"
	"time"

	"auction-console/internal/fakeapi"
	model "auction-console/internal/models"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
	"github.com/spf13/pflag"
)

func main() {
	addr := pflag.String("addr", ":8000", "listen address")
	seed := pflag.Bool("seed", true, "create demo accounts and auctions")
	logLevel := pflag.String("log-level", "info", "log level")
	pflag.Parse()

	utils.Configure(*logLevel, os.Stdout)

	clk := clock.New()
	api := fakeapi.New(clk)
	if *seed {
		seedDemo(api, clk.Now())
	}

	utils.Info("fake auction API listening", map[string]any{"addr": *addr, "seeded": *seed})
	srv := &http.Server{Addr: *addr, Handler: api.Handler(), ReadHeaderTimeout: 10 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		utils.Fatal("fake API stopped", map[string]any{"error": err.Error()})
	}
}

// seedDemo adds a bidder (demo/demo), an admin (admin/admin) and two auctions
func seedDemo(api *fakeapi.Server, now time.Time) {
	api.SeedUser(model.Registration{Name: "Demo Bidder", Username: "demo", MobileNumber: "9000000000", Password: "demo"}, 5000)
	admin, _ := api.SeedAdmin(model.Registration{Name: "Demo Admin", Username: "admin", Password: "admin"})

	spring := api.SeedAuction(model.Auction{ID: "spring", Name: "Spring Collectibles", ValidUntil: now.Add(2 * time.Hour)}, admin.ID)
	closing := api.SeedAuction(model.Auction{ID: "closing", Name: "Closing Soon", ValidUntil: now.Add(3 * time.Minute)}, admin.ID)

	api.SeedProduct(model.Product{ID: "vase", Name: "Ming Vase", Description: "blue and white porcelain", Time: spring.ValidUntil, AuctionID: spring.ID})
	api.SeedProduct(model.Product{ID: "clock", Name: "Mantel Clock", Description: "brass, wind-up", Time: now.Add(90 * time.Minute), AuctionID: spring.ID})
	api.SeedProduct(model.Product{ID: "stamp", Name: "Penny Black", Description: "1840 stamp", Time: closing.ValidUntil, AuctionID: closing.ID})
	api.SeedProduct(model.Product{ID: "lamp", Name: "Tiffany Lamp", Description: "unassigned", Time: now.Add(24 * time.Hour)})
}
