package models

import "time"

// AuctionState is the lifecycle position of an auction
type AuctionState string

const (
	AuctionScheduled AuctionState = "scheduled"
	AuctionOpen      AuctionState = "open"
	AuctionClosed    AuctionState = "closed"
)

// Product mirrors a row of the product table
type Product struct {
	ProductID   string    `json:"product_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	UID         string    `json:"uid"`
	IsAuction   bool      `json:"is_auction"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductImage mirrors a row of the product_images table
type ProductImage struct {
	ProductID string `json:"product_id"`
	ImageID   int64  `json:"image_id"`
	URL       string `json:"url"`
}

// Auction mirrors a row of the auction table
type Auction struct {
	AuctionID    string    `json:"auction_id"`
	ProductID    string    `json:"product_id"`
	StartPrice   float64   `json:"start_price"`
	CurrentPrice *float64  `json:"current_price"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

// EffectivePrice is the current price, or the starting price while no bid exists
func (a Auction) EffectivePrice() float64 {
	if a.CurrentPrice != nil {
		return *a.CurrentPrice
	}
	return a.StartPrice
}

// State derives the lifecycle state at now. The end time is exclusive.
func (a Auction) State(now time.Time) AuctionState {
	switch {
	case now.Before(a.StartTime):
		return AuctionScheduled
	case !now.Before(a.EndTime):
		return AuctionClosed
	default:
		return AuctionOpen
	}
}

// AuctionListing is an auction joined with its product and images
type AuctionListing struct {
	Auction
	Product Product        `json:"product"`
	Images  []ProductImage `json:"images"`
}

// ProductDetail is a product with its ordered images and, for auction
// products, the auction row
type ProductDetail struct {
	Product Product        `json:"product"`
	Images  []ProductImage `json:"images"`
	Auction *Auction       `json:"auction,omitempty"`
}

// Profile mirrors a row of the user_profile table
type Profile struct {
	ProfileID string `json:"profile_id"`
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// SavedCartLine is a row of the cart table joined with its product
type SavedCartLine struct {
	CartID    int64   `json:"cart_id"`
	ProfileID string  `json:"profile_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// Category mirrors a row of the categories table
type Category struct {
	CategoriesID int64  `json:"categories_id"`
	Name         string `json:"name"`
	Icon         string `json:"icon,omitempty"`
	ParentID     *int64 `json:"parent_id,omitempty"`
}

// Banner is a featured_banner row
type Banner struct {
	BannerID int64  `json:"banner_id"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	Priority int    `json:"priority"`
	Active   bool   `json:"is_active"`
}

// FlashDeal is a flash_deals row joined to its product
type FlashDeal struct {
	DealID          int64   `json:"deal_id"`
	DiscountPercent float64 `json:"discount_percent"`
	Product         Product `json:"product"`
}

// BestSeller is a best_seller row joined to its product
type BestSeller struct {
	Ranking int     `json:"ranking"`
	Product Product `json:"product"`
}
