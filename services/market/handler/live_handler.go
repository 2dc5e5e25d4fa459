package handler

//go:generate mockgen -destination=mock_live_registry.go -package=handler auction-console/services/market/handler LiveRegistry

import (
	"net/http"
	"time"

	"auction-console/internal/watch"
	"auction-console/services/market/helpers"
	"auction-console/utils"

	"github.com/gin-gonic/gin"
)

type LiveRegistry interface {
	Mount(productID string, hint time.Time) (watch.View, error)
	Get(productID string) (watch.View, error)
	Unmount(productID string) error
}

type LiveHandler struct {
	registry LiveRegistry
}

func NewLiveHandler(registry LiveRegistry) *LiveHandler {
	return &LiveHandler{registry: registry}
}

// MountHandler handles POST /live/:product_id
func (h *LiveHandler) MountHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.MountRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "MountHandler", err)
			return
		}
	}
	var hint time.Time
	if req.Deadline != nil {
		hint = *req.Deadline
	}

	view, err := h.registry.Mount(productID, hint)
	if err != nil {
		helpers.RespondError(c, "MountHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, view, "live view mounted")
}

// ViewHandler handles GET /live/:product_id
func (h *LiveHandler) ViewHandler(c *gin.Context) {
	productID := c.Param("product_id")
	view, err := h.registry.Get(productID)
	if err != nil {
		helpers.RespondError(c, "ViewHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, view, "live view retrieved")
}

// UnmountHandler handles DELETE /live/:product_id
func (h *LiveHandler) UnmountHandler(c *gin.Context) {
	productID := c.Param("product_id")
	if err := h.registry.Unmount(productID); err != nil {
		helpers.RespondError(c, "UnmountHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID}, "live view unmounted")
}
