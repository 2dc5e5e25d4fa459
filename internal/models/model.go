package models

import "time"

// Role identifies which experience a session belongs to
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// BidStatus is the server-reported state of a bid
type BidStatus string

const (
	BidSuccess    BidStatus = "success"
	BidFailed     BidStatus = "failed"
	BidRolledBack BidStatus = "rolledback"
)

// TransactionType distinguishes wallet entries
type TransactionType string

const (
	TransactionTopUp TransactionType = "topup"
	TransactionBid   TransactionType = "bid"
)

// Identity is the client-held copy of the logged-in user or admin
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	MobileNumber string `json:"mobile_number"`
	Role         Role   `json:"role,omitempty"`
}

// Product represents an auctioned product
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
	AuctionID   string    `json:"auction_id,omitempty"`
}

// Auction groups products under one deadline
type Auction struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ValidUntil time.Time `json:"valid_until"`
	ProductIDs []string  `json:"product_ids"`
}

// IsExpired is a display hint only; the server decides whether bidding is still open.
func (a Auction) IsExpired(now time.Time) bool {
	return !now.Before(a.ValidUntil)
}

// IsExpired reports whether the product end time has passed at now
func (p Product) IsExpired(now time.Time) bool {
	return !now.Before(p.Time)
}

// Bid represents a user's bid on a product
type Bid struct {
	BidID     string    `json:"bid_id,omitempty"`
	ProductID string    `json:"product_id"`
	Amount    float64   `json:"amount"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Status    BidStatus `json:"status"`
}

// Transaction is a read-only wallet ledger entry
type Transaction struct {
	ID        string          `json:"_id"`
	Type      TransactionType `json:"type"`
	Amount    float64         `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Meta      map[string]any  `json:"meta,omitempty"`
}

// Wallet holds the bidder's balance
type Wallet struct {
	Balance float64 `json:"balance"`
}

// LiveSnapshot is the authoritative product state returned by one sync poll
type LiveSnapshot struct {
	ProductID  string    `json:"product_id"`
	Deadline   time.Time `json:"deadline"`
	HighestBid float64   `json:"highest_bid"`
	Bids       []Bid     `json:"bids"`
}

// SearchText returns the fields the list search matches against
func (p Product) SearchText() []string { return []string{p.Name, p.Description} }

// EndsAt returns the product deadline
func (p Product) EndsAt() time.Time { return p.Time }

// SearchText returns the fields the list search matches against
func (a Auction) SearchText() []string { return []string{a.Name} }

// EndsAt returns the auction deadline
func (a Auction) EndsAt() time.Time { return a.ValidUntil }

// Credentials is the login payload for both roles
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the sign-up payload for both roles
type Registration struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
}

// PasswordChange rotates the credentials of the logged-in account
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// AuctionInput creates or edits an auction
type AuctionInput struct {
	Name       string    `json:"name"`
	ValidUntil time.Time `json:"valid_until"`
	ProductIDs []string  `json:"product_ids"`
}

// ProductInput creates or edits a product
type ProductInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
	AuctionID   string    `json:"auction_id,omitempty"`
}

// Settlement is the server's answer to settling an auction
type Settlement struct {
	AuctionID string `json:"auction_id"`
	Message   string `json:"message"`
	Winners   []Bid  `json:"winners,omitempty"`
}
