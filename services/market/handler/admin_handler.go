package handler

//go:generate mockgen -destination=mock_admin_service.go -package=handler auction-console/services/market/handler AdminServiceInterface

import (
	"context"
	"fmt"
	"net/http"

	"auction-console/internal/auctionerrors"
	"auction-console/internal/listfilter"
	model "auction-console/internal/models"
	"auction-console/services/market/helpers"
	"auction-console/utils"

	"github.com/gin-gonic/gin"
)

type AdminServiceInterface interface {
	AllAuctions(ctx context.Context, q listfilter.Query) ([]model.Auction, error)
	MyAuctions(ctx context.Context, q listfilter.Query) ([]model.Auction, error)
	CreateAuction(ctx context.Context, in model.AuctionInput) (model.Auction, error)
	UpdateAuction(ctx context.Context, auctionID string, in model.AuctionInput) (model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID string) error
	SettleAuction(ctx context.Context, auctionID string) (model.Settlement, error)
	AuctionProducts(ctx context.Context, auctionID string, q listfilter.Query) ([]model.Product, error)
	UnassignedProducts(ctx context.Context, q listfilter.Query) ([]model.Product, error)
	CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, productID string, in model.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type AdminHandler struct {
	service AdminServiceInterface
}

func NewAdminHandler(service AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListAuctionsHandler handles GET /admin/auctions?scope=all|mine
func (h *AdminHandler) ListAuctionsHandler(c *gin.Context) {
	q, err := helpers.BindListQuery(c)
	if err != nil {
		helpers.RespondError(c, "AdminListAuctionsHandler", err, nil)
		return
	}

	var auctions []model.Auction
	switch scope := c.DefaultQuery("scope", "all"); scope {
	case "all":
		auctions, err = h.service.AllAuctions(c.Request.Context(), q)
	case "mine":
		auctions, err = h.service.MyAuctions(c.Request.Context(), q)
	default:
		err = fmt.Errorf("%w: unknown scope %q", auctionerrors.ErrInvalidFilter, scope)
	}
	if err != nil {
		helpers.RespondError(c, "AdminListAuctionsHandler", err, nil)
		return
	}

	utils.JSONList(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// CreateAuctionHandler handles POST /admin/auctions
func (h *AdminHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, err := h.service.CreateAuction(c.Request.Context(), req.Input())
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created", map[string]any{"auction_id": a.ID})
}

// UpdateAuctionHandler handles PUT /admin/auctions/:auction_id
func (h *AdminHandler) UpdateAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	a, err := h.service.UpdateAuction(c.Request.Context(), auctionID, req.Input())
	if err != nil {
		helpers.RespondError(c, "UpdateAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction updated successfully")
}

// DeleteAuctionHandler handles DELETE /admin/auctions/:auction_id
func (h *AdminHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.service.DeleteAuction(c.Request.Context(), auctionID); err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted", map[string]any{"auction_id": auctionID})
}

// SettleAuctionHandler handles POST /admin/auctions/:auction_id/settle
func (h *AdminHandler) SettleAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	res, err := h.service.SettleAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "SettleAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, res, "auction settled successfully")
	helpers.LogSuccess("SettleAuctionHandler", "auction settled", map[string]any{
		"auction_id": auctionID,
		"winners":    len(res.Winners),
	})
}

// AuctionProductsHandler handles GET /admin/auctions/:auction_id/products
func (h *AdminHandler) AuctionProductsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	q, err := helpers.BindListQuery(c)
	if err != nil {
		helpers.RespondError(c, "AdminAuctionProductsHandler", err, nil)
		return
	}

	products, err := h.service.AuctionProducts(c.Request.Context(), auctionID, q)
	if err != nil {
		helpers.RespondError(c, "AdminAuctionProductsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONList(c, http.StatusOK, products, "products retrieved successfully")
}

// UnassignedProductsHandler handles GET /admin/products/unassigned
func (h *AdminHandler) UnassignedProductsHandler(c *gin.Context) {
	q, err := helpers.BindListQuery(c)
	if err != nil {
		helpers.RespondError(c, "UnassignedProductsHandler", err, nil)
		return
	}

	products, err := h.service.UnassignedProducts(c.Request.Context(), q)
	if err != nil {
		helpers.RespondError(c, "UnassignedProductsHandler", err, nil)
		return
	}
	utils.JSONList(c, http.StatusOK, products, "products retrieved successfully")
}

// CreateProductHandler handles POST /admin/products
func (h *AdminHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), req.Input())
	if err != nil {
		helpers.RespondError(c, "CreateProductHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, p, "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created", map[string]any{"product_id": p.ID, "auction_id": p.AuctionID})
}

// UpdateProductHandler handles PUT /admin/products/:product_id
func (h *AdminHandler) UpdateProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	var req helpers.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	p, err := h.service.UpdateProduct(c.Request.Context(), productID, req.Input())
	if err != nil {
		helpers.RespondError(c, "UpdateProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "product updated successfully")
}

// DeleteProductHandler handles DELETE /admin/products/:product_id
func (h *AdminHandler) DeleteProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	if err := h.service.DeleteProduct(c.Request.Context(), productID); err != nil {
		helpers.RespondError(c, "DeleteProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID}, "product deleted successfully")
}
