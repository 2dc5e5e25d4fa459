package fakeapi

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"
	"auction-console/utils"
)

type account struct {
	identity model.Identity
	password string
}

type grant struct {
	role model.Role
	id   string
}

// book is the fake server's state. All methods are safe for concurrent use.
type book struct {
	mu sync.RWMutex

	users    map[string]account // key: username
	admins   map[string]account // key: username
	tokens   map[string]grant   // key: bearer token
	auctions map[string]model.Auction
	order    []string // auction ids in creation order
	owners   map[string]string // key: auctionID -> adminID
	products map[string]model.Product
	bids     map[string][]model.Bid // key: productID
	joined   map[string]map[string]bool
	wallets  map[string]float64
	ledger   map[string][]model.Transaction
}

func newBook() *book {
	return &book{
		users:    make(map[string]account),
		admins:   make(map[string]account),
		tokens:   make(map[string]grant),
		auctions: make(map[string]model.Auction),
		owners:   make(map[string]string),
		products: make(map[string]model.Product),
		bids:     make(map[string][]model.Bid),
		joined:   make(map[string]map[string]bool),
		wallets:  make(map[string]float64),
		ledger:   make(map[string][]model.Transaction),
	}
}

func (b *book) accounts(role model.Role) map[string]account {
	if role == model.RoleAdmin {
		return b.admins
	}
	return b.users
}

func (b *book) register(role model.Role, reg model.Registration) (model.Identity, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	accts := b.accounts(role)
	if _, ok := accts[reg.Username]; ok {
		return model.Identity{}, "", fmt.Errorf("register %s: username taken: %w", reg.Username, errConflict)
	}
	id := model.Identity{
		ID:           utils.GenerateID(),
		Name:         reg.Name,
		Username:     reg.Username,
		MobileNumber: reg.MobileNumber,
		Role:         role,
	}
	accts[reg.Username] = account{identity: id, password: reg.Password}
	return id, b.issueLocked(role, id.ID), nil
}

func (b *book) login(role model.Role, creds model.Credentials) (model.Identity, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts(role)[creds.Username]
	if !ok || acct.password != creds.Password {
		return model.Identity{}, "", errBadCredentials
	}
	return acct.identity, b.issueLocked(role, acct.identity.ID), nil
}

func (b *book) changePassword(g grant, change model.PasswordChange) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	accts := b.accounts(g.role)
	for name, acct := range accts {
		if acct.identity.ID != g.id {
			continue
		}
		if acct.password != change.OldPassword {
			return errBadCredentials
		}
		acct.password = change.NewPassword
		accts[name] = acct
		return nil
	}
	return errNotFound
}

func (b *book) issueLocked(role model.Role, id string) string {
	tok := utils.GenerateID()
	b.tokens[tok] = grant{role: role, id: id}
	return tok
}

func (b *book) lookup(token string) (grant, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	g, ok := b.tokens[token]
	return g, ok
}

func (b *book) revoke(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tokens, token)
}

func (b *book) putAuction(a model.Auction, owner string) model.Auction {
	b.mu.Lock()
	defer b.mu.Unlock()

	if a.ID == "" {
		a.ID = utils.GenerateID()
	}
	if _, exists := b.auctions[a.ID]; !exists {
		b.order = append(b.order, a.ID)
	}
	if a.ProductIDs == nil {
		a.ProductIDs = []string{}
	}
	b.auctions[a.ID] = a
	if owner != "" {
		b.owners[a.ID] = owner
	}
	for _, pid := range a.ProductIDs {
		if p, ok := b.products[pid]; ok {
			p.AuctionID = a.ID
			b.products[pid] = p
		}
	}
	return a
}

func (b *book) auction(id string) (model.Auction, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	a, ok := b.auctions[id]
	return a, ok
}

func (b *book) deleteAuction(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.auctions[id]; !ok {
		return false
	}
	delete(b.auctions, id)
	delete(b.owners, id)
	for i, aid := range b.order {
		if aid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	for pid, p := range b.products {
		if p.AuctionID == id {
			p.AuctionID = ""
			b.products[pid] = p
		}
	}
	return true
}

// listAuctions returns auctions in creation order; owner filters when non-empty
func (b *book) listAuctions(owner string) []model.Auction {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.Auction, 0, len(b.order))
	for _, id := range b.order {
		if owner != "" && b.owners[id] != owner {
			continue
		}
		out = append(out, b.auctions[id])
	}
	return out
}

func (b *book) putProduct(p model.Product) model.Product {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p.ID == "" {
		p.ID = utils.GenerateID()
	}
	b.products[p.ID] = p
	if p.AuctionID != "" {
		if a, ok := b.auctions[p.AuctionID]; ok && !contains(a.ProductIDs, p.ID) {
			a.ProductIDs = append(a.ProductIDs, p.ID)
			b.auctions[a.ID] = a
		}
	}
	return p
}

func (b *book) product(id string) (model.Product, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.products[id]
	return p, ok
}

func (b *book) deleteProduct(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.products[id]
	if !ok {
		return false
	}
	delete(b.products, id)
	delete(b.bids, id)
	if a, ok := b.auctions[p.AuctionID]; ok {
		kept := a.ProductIDs[:0:0]
		for _, pid := range a.ProductIDs {
			if pid != id {
				kept = append(kept, pid)
			}
		}
		a.ProductIDs = kept
		b.auctions[a.ID] = a
	}
	return true
}

// productsWhere returns products matching keep, sorted by end time then id
func (b *book) productsWhere(keep func(model.Product) bool) []model.Product {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.Product, 0)
	for _, p := range b.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Time.Equal(out[j].Time) {
			return out[i].Time.Before(out[j].Time)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (b *book) join(userID, auctionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.auctions[auctionID]; !ok {
		return errNotFound
	}
	if b.joined[userID] == nil {
		b.joined[userID] = make(map[string]bool)
	}
	b.joined[userID][auctionID] = true
	return nil
}

// highestLocked returns the highest successful bid; the earliest wins ties
func (b *book) highestLocked(productID string) (model.Bid, bool) {
	var best model.Bid
	found := false
	for _, bid := range b.bids[productID] {
		if bid.Status != model.BidSuccess {
			continue
		}
		if !found || bid.Amount > best.Amount || (bid.Amount == best.Amount && bid.Timestamp.Before(best.Timestamp)) {
			best = bid
			found = true
		}
	}
	return best, found
}

func (b *book) highest(productID string) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	best, _ := b.highestLocked(productID)
	return best.Amount
}

// placeBid applies the server-side rules the client only approximates
func (b *book) placeBid(userID, productID string, amount float64, now time.Time) (model.Bid, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.products[productID]
	if !ok {
		return model.Bid{}, errNotFound
	}
	if amount <= 0 {
		return model.Bid{}, fmt.Errorf("%w - non-positive amount", auctionerrors.ErrInvalidBid)
	}
	if !now.Before(p.Time) {
		return model.Bid{}, fmt.Errorf("%w - auction closed", auctionerrors.ErrInvalidBid)
	}
	if best, found := b.highestLocked(productID); found && amount <= best.Amount {
		return model.Bid{}, fmt.Errorf("%w - current highest bid is %.2f", auctionerrors.ErrBidTooLow, best.Amount)
	}
	if b.wallets[userID] < amount {
		return model.Bid{}, errInsufficientFunds
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		ProductID: productID,
		Amount:    amount,
		UserID:    userID,
		Timestamp: now,
		Status:    model.BidSuccess,
	}
	b.bids[productID] = append(b.bids[productID], bid)
	b.wallets[userID] -= amount
	b.ledger[userID] = append(b.ledger[userID], model.Transaction{
		ID:        utils.GenerateID(),
		Type:      model.TransactionBid,
		Amount:    amount,
		Timestamp: now,
		Meta:      map[string]any{"bid_id": bid.BidID, "product_id": productID},
	})
	return bid, nil
}

func (b *book) rollback(userID, bidID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for pid, bids := range b.bids {
		for i, bid := range bids {
			if bid.BidID != bidID {
				continue
			}
			if bid.UserID != userID {
				return errForbidden
			}
			if bid.Status != model.BidSuccess {
				return auctionerrors.ErrBidNotRollbackable
			}
			bids[i].Status = model.BidRolledBack
			b.bids[pid] = bids
			b.wallets[userID] += bid.Amount
			return nil
		}
	}
	return errNotFound
}

func (b *book) productBids(productID string) []model.Bid {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]model.Bid{}, b.bids[productID]...)
}

func (b *book) userBids(userID string) []model.Bid {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.Bid, 0)
	for _, bids := range b.bids {
		for _, bid := range bids {
			if bid.UserID == userID {
				out = append(out, bid)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

func (b *book) topUp(userID string, amount float64, now time.Time) model.Wallet {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.wallets[userID] += amount
	b.ledger[userID] = append(b.ledger[userID], model.Transaction{
		ID:        utils.GenerateID(),
		Type:      model.TransactionTopUp,
		Amount:    amount,
		Timestamp: now,
	})
	return model.Wallet{Balance: b.wallets[userID]}
}

func (b *book) wallet(userID string) model.Wallet {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return model.Wallet{Balance: b.wallets[userID]}
}

func (b *book) transactions(userID string) []model.Transaction {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]model.Transaction{}, b.ledger[userID]...)
}

// settle picks the highest successful bid of every product in the auction
func (b *book) settle(auctionID string) (model.Settlement, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	a, ok := b.auctions[auctionID]
	if !ok {
		return model.Settlement{}, errNotFound
	}
	out := model.Settlement{AuctionID: auctionID, Message: "auction settled"}
	for _, pid := range a.ProductIDs {
		if best, found := b.highestLocked(pid); found {
			out.Winners = append(out.Winners, best)
		}
	}
	return out, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
