package models

import "time"

// Mode is the global browsing context of a storefront client
type Mode string

const (
	ModeAuction     Mode = "auction"
	ModeMarketplace Mode = "marketplace"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeAuction || m == ModeMarketplace
}

// Session represents the authenticated user of a client
type Session struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Token       string `json:"token,omitempty"`
}

// CartItem is a listing offered to the cart. Only items carrying an
// OriginalPrice are marketplace items and may enter the cart ledger.
type CartItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	ShippingCost  float64  `json:"shipping_cost"`
	ImageRef      string   `json:"image_ref"`
}

// CartLine represents a marketplace line item pending checkout
type CartLine struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	UnitPrice    float64 `json:"unit_price"`
	ShippingCost float64 `json:"shipping_cost"`
	ImageRef     string  `json:"image_ref"`
	Quantity     int     `json:"quantity"`
}

// Bid represents a single offer against an auction
type Bid struct {
	BidID      string    `json:"bid_id"`
	AuctionID  string    `json:"auction_id"`
	BidderID   string    `json:"bidder_id"`
	BidderName string    `json:"bidder_name,omitempty"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// WatchlistEntry is one saved-for-later item reference
type WatchlistEntry struct {
	ViewerID string    `json:"viewer_id"`
	ItemID   string    `json:"item_id"`
	AddedAt  time.Time `json:"added_at"`
}

// Totals is the price breakdown of a cart at a point in time
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
}

// PaymentSummary never carries more than the last four card digits
type PaymentSummary struct {
	Type  string `json:"type"`
	Last4 string `json:"last4"`
	Brand string `json:"brand"`
}

// Address is a shipping destination
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Order is created at checkout and never mutated afterwards
type Order struct {
	ID              string         `json:"id"`
	LineItems       []CartLine     `json:"line_items"`
	Totals          Totals         `json:"totals"`
	PaymentSummary  PaymentSummary `json:"payment_summary"`
	ShippingAddress Address        `json:"shipping_address"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}
