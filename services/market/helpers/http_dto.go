package helpers

import (
	"time"

	model "auction-console/internal/models"
)

// Request/Response DTOs
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Username     string `json:"username" binding:"required"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// PlaceBidRequest carries the highest bid the view was showing so the guard can run
// against what the bidder actually saw
type PlaceBidRequest struct {
	ProductID      string  `json:"product_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	CurrentHighest float64 `json:"current_highest" binding:"gte=0"`
}

type TopUpRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type AuctionRequest struct {
	Name       string    `json:"name" binding:"required"`
	ValidUntil time.Time `json:"valid_until" binding:"required"`
	ProductIDs []string  `json:"product_ids"`
}

type ProductRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
	AuctionID   string    `json:"auction_id"`
}

// MountRequest optionally passes the deadline already shown in a listing
type MountRequest struct {
	Deadline *time.Time `json:"deadline"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	UserID    string          `json:"user_id"`
	Amount    float64         `json:"amount"`
	Status    model.BidStatus `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type SessionResponse struct {
	Role     model.Role     `json:"role"`
	Identity model.Identity `json:"identity"`
}

// NewBidResponse formats a bid for the UI
func NewBidResponse(b model.Bid) BidResponse {
	resp := BidResponse{
		BidID:     b.BidID,
		ProductID: b.ProductID,
		UserID:    b.UserID,
		Amount:    b.Amount,
		Status:    b.Status,
	}
	if !b.Timestamp.IsZero() {
		resp.CreatedAt = b.Timestamp.UTC().Format(time.RFC3339)
	}
	return resp
}

func (r AuctionRequest) Input() model.AuctionInput {
	return model.AuctionInput{Name: r.Name, ValidUntil: r.ValidUntil, ProductIDs: r.ProductIDs}
}

func (r ProductRequest) Input() model.ProductInput {
	return model.ProductInput{Name: r.Name, Description: r.Description, Time: r.Time, AuctionID: r.AuctionID}
}
