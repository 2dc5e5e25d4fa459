package handler

//go:generate mockgen -destination=mock_account_service.go -package=handler auction-console/services/market/handler AccountService

import (
	"context"
	"net/http"

	model "auction-console/internal/models"
	"auction-console/services/market/helpers"
	"auction-console/utils"

	"github.com/gin-gonic/gin"
)

// AccountService is implemented by both the bidder and the admin service
type AccountService interface {
	Login(ctx context.Context, creds model.Credentials) (model.Identity, error)
	Register(ctx context.Context, reg model.Registration) (model.Identity, error)
	ChangePassword(ctx context.Context, change model.PasswordChange) error
	Logout(ctx context.Context) error
}

type SessionHandler struct {
	bidder AccountService
	admin  AccountService
}

func NewSessionHandler(bidder, admin AccountService) *SessionHandler {
	return &SessionHandler{bidder: bidder, admin: admin}
}

func (h *SessionHandler) account(role model.Role) AccountService {
	if role == model.RoleAdmin {
		return h.admin
	}
	return h.bidder
}

// LoginHandler handles POST /session/login and POST /session/admin/login
func (h *SessionHandler) LoginHandler(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req helpers.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "LoginHandler", err)
			return
		}

		id, err := h.account(role).Login(c.Request.Context(), model.Credentials{Username: req.Username, Password: req.Password})
		if err != nil {
			helpers.RespondError(c, "LoginHandler", err, map[string]any{"role": role, "username": req.Username})
			return
		}

		utils.JSONResponse(c, http.StatusOK, helpers.SessionResponse{Role: role, Identity: id}, "logged in successfully")
		helpers.LogSuccess("LoginHandler", "logged in", map[string]any{"role": role, "id": id.ID})
	}
}

// RegisterHandler handles POST /session/register and POST /session/admin/register
func (h *SessionHandler) RegisterHandler(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req helpers.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "RegisterHandler", err)
			return
		}

		id, err := h.account(role).Register(c.Request.Context(), model.Registration{
			Name:         req.Name,
			Username:     req.Username,
			MobileNumber: req.MobileNumber,
			Password:     req.Password,
		})
		if err != nil {
			helpers.RespondError(c, "RegisterHandler", err, map[string]any{"role": role, "username": req.Username})
			return
		}

		utils.JSONResponse(c, http.StatusCreated, helpers.SessionResponse{Role: role, Identity: id}, "registered successfully")
		helpers.LogSuccess("RegisterHandler", "registered", map[string]any{"role": role, "id": id.ID})
	}
}

// ChangePasswordHandler handles POST /session/change-password and POST /session/admin/change-password
func (h *SessionHandler) ChangePasswordHandler(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req helpers.ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "ChangePasswordHandler", err)
			return
		}

		change := model.PasswordChange{OldPassword: req.OldPassword, NewPassword: req.NewPassword}
		if err := h.account(role).ChangePassword(c.Request.Context(), change); err != nil {
			helpers.RespondError(c, "ChangePasswordHandler", err, map[string]any{"role": role})
			return
		}

		utils.JSONResponse(c, http.StatusOK, nil, "password changed successfully")
	}
}

// LogoutHandler handles POST /session/logout; both roles are cleared
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.bidder.Logout(ctx); err != nil {
		helpers.RespondError(c, "LogoutHandler", err, map[string]any{"role": model.RoleUser})
		return
	}
	if err := h.admin.Logout(ctx); err != nil {
		helpers.RespondError(c, "LogoutHandler", err, map[string]any{"role": model.RoleAdmin})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
}
