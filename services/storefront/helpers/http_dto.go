package helpers

import (
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"
)

// Request DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type SetModeRequest struct {
	Mode models.Mode `json:"mode" binding:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount"`
	// KnownPrice is the current price the bidder was shown. When omitted the
	// server reads it before checking the bid.
	KnownPrice *float64 `json:"known_price"`
}

// ListQuery is the query string of the auction and product listings
type ListQuery struct {
	Category string   `form:"category"`
	Search   string   `form:"q"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	Sort     string   `form:"sort" binding:"omitempty,oneof=newest price_asc price_desc ending_soon"`
	Page     int      `form:"page" binding:"omitempty,min=1"`
	Limit    int      `form:"limit" binding:"omitempty,min=1"`
	Auction  *bool    `form:"auction"`
}

// Filter converts the query to a repository filter
func (q ListQuery) Filter() repository.ListFilter {
	return repository.ListFilter{
		Category: q.Category,
		Search:   q.Search,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Sort:     repository.SortOrder(q.Sort),
		Page:     q.Page,
		Limit:    q.Limit,
		Auction:  q.Auction,
	}
}

// Response DTOs
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Session       *models.Session `json:"session,omitempty"`
	Mode          models.Mode     `json:"mode"`
	CartCount     int             `json:"cart_count"`
}

type CartResponse struct {
	Lines  []models.CartLine `json:"lines"`
	Count  int               `json:"count"`
	Totals models.Totals     `json:"totals"`
}

type AddToCartResponse struct {
	Added bool `json:"added"`
	// Saved reports that the line was also written to the signed-in user's saved cart
	Saved bool `json:"saved"`
	CartResponse
}

type WatchlistToggleResponse struct {
	ItemID      string `json:"item_id"`
	InWatchlist bool   `json:"in_watchlist"`
}

type ModeResponse struct {
	Mode models.Mode `json:"mode"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	AuctionID    string  `json:"auction_id"`
	BidderID     string  `json:"bidder_id"`
	Amount       float64 `json:"amount"`
	CurrentPrice float64 `json:"current_price"`
	CreatedAt    string  `json:"created_at"`
}

// AuctionView is an auction listing with its derived state
type AuctionView struct {
	models.AuctionListing
	Price      float64             `json:"price"`
	State      models.AuctionState `json:"state"`
	TimeLeft   string              `json:"time_left"`
	MinNextBid float64             `json:"min_next_bid,omitempty"`
}

// NewAuctionView derives the state of l at now
func NewAuctionView(l models.AuctionListing, now time.Time, timeLeft func(time.Duration) string) AuctionView {
	return AuctionView{
		AuctionListing: l,
		Price:          l.EffectivePrice(),
		State:          l.State(now),
		TimeLeft:       timeLeft(l.EndTime.Sub(now)),
	}
}
