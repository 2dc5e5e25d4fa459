package server

import (
	model "auction-console/internal/models"
	handler "auction-console/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles what the router dispatches to
type Services struct {
	Bidder interface {
		handler.AccountService
		handler.BidderServiceInterface
	}
	Admin interface {
		handler.AccountService
		handler.AdminServiceInterface
	}
	Live handler.LiveRegistry
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlate logs with the UI
	router.Use(RequestLoggerMiddleware) // custom request logging

	sessionHandler := handler.NewSessionHandler(svc.Bidder, svc.Admin)
	bidderHandler := handler.NewBidderHandler(svc.Bidder)
	adminHandler := handler.NewAdminHandler(svc.Admin)
	liveHandler := handler.NewLiveHandler(svc.Live)

	session := router.Group("/session")
	{
		session.POST("/login", sessionHandler.LoginHandler(model.RoleUser))
		session.POST("/register", sessionHandler.RegisterHandler(model.RoleUser))
		session.POST("/change-password", sessionHandler.ChangePasswordHandler(model.RoleUser))
		session.POST("/admin/login", sessionHandler.LoginHandler(model.RoleAdmin))
		session.POST("/admin/register", sessionHandler.RegisterHandler(model.RoleAdmin))
		session.POST("/admin/change-password", sessionHandler.ChangePasswordHandler(model.RoleAdmin))
		session.POST("/logout", sessionHandler.LogoutHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", bidderHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id/products", bidderHandler.AuctionProductsHandler)
		auctions.POST("/:auction_id/join", bidderHandler.JoinAuctionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", bidderHandler.PlaceBidHandler)
		bids.GET("/mine", bidderHandler.MyBidsHandler)
		bids.POST("/:bid_id/rollback", bidderHandler.RollbackBidHandler)
	}

	wallet := router.Group("/wallet")
	{
		wallet.GET("", bidderHandler.WalletHandler)
		wallet.GET("/transactions", bidderHandler.TransactionsHandler)
		wallet.POST("/topup", bidderHandler.TopUpHandler)
	}

	live := router.Group("/live")
	{
		live.POST("/:product_id", liveHandler.MountHandler)
		live.GET("/:product_id", liveHandler.ViewHandler)
		live.DELETE("/:product_id", liveHandler.UnmountHandler)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/auctions", adminHandler.ListAuctionsHandler)
		admin.POST("/auctions", adminHandler.CreateAuctionHandler)
		admin.PUT("/auctions/:auction_id", adminHandler.UpdateAuctionHandler)
		admin.DELETE("/auctions/:auction_id", adminHandler.DeleteAuctionHandler)
		admin.POST("/auctions/:auction_id/settle", adminHandler.SettleAuctionHandler)
		admin.GET("/auctions/:auction_id/products", adminHandler.AuctionProductsHandler)
		admin.GET("/products/unassigned", adminHandler.UnassignedProductsHandler)
		admin.POST("/products", adminHandler.CreateProductHandler)
		admin.PUT("/products/:product_id", adminHandler.UpdateProductHandler)
		admin.DELETE("/products/:product_id", adminHandler.DeleteProductHandler)
	}

	return router
}
