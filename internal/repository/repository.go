package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"
	"strings"
	"time"

	"storefront/internal/models"
)

// SortOrder names a listing order
type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
	SortEndingSoon SortOrder = "ending_soon"
)

const (
	DefaultPage  = 1
	DefaultLimit = 48
	MaxLimit     = 200
)

// ListFilter narrows auction and product listings. Zero values mean "no filter".
type ListFilter struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortOrder
	Page     int
	Limit    int
	// Auction restricts product listings to auction (true) or marketplace (false) products
	Auction *bool
}

// Normalized applies the paging defaults and drops unknown sort orders
func (f ListFilter) Normalized() ListFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	switch f.Sort {
	case SortPriceAsc, SortPriceDesc, SortEndingSoon:
	default:
		f.Sort = SortNewest
	}
	f.Category = strings.TrimSpace(f.Category)
	f.Search = strings.TrimSpace(f.Search)
	return f
}

// Offset is the number of rows skipped before the current page
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// AuctionDB defines the auction and bid storage of the remote backend
type AuctionDB interface {
	GetAuction(ctx context.Context, auctionID string) (models.Auction, error)
	GetAuctionByProduct(ctx context.Context, productID string) (models.Auction, error)
	// ListAuctions returns one page of listings and the total number of matches
	ListAuctions(ctx context.Context, filter ListFilter) ([]models.AuctionListing, int, error)
	GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error)
	GetBidsByBidder(ctx context.Context, bidderID string) ([]models.Bid, error)
	// PlaceBid re-reads the auction, rejects closed, unopened or stale bids, inserts
	// the bid and raises the current price, all as one atomic step. It returns the
	// new current price.
	PlaceBid(ctx context.Context, bid models.Bid, now time.Time) (float64, error)
	// DeleteBid removes a bidder's bid and recomputes the current price from the
	// remaining bids in the same atomic step.
	DeleteBid(ctx context.Context, bidID, bidderID string) (models.Auction, error)
}

// CatalogDB defines product, promotion and profile storage of the remote backend
type CatalogDB interface {
	GetProduct(ctx context.Context, productID string) (models.Product, error)
	GetProductImages(ctx context.Context, productID string) ([]models.ProductImage, error)
	ListProducts(ctx context.Context, filter ListFilter) ([]models.Product, int, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBanners(ctx context.Context) ([]models.Banner, error)
	ListFlashDeals(ctx context.Context) ([]models.FlashDeal, error)
	ListBestSellers(ctx context.Context) ([]models.BestSeller, error)
	CreateProfile(ctx context.Context, profile models.Profile) error
	GetProfileByUID(ctx context.Context, uid string) (models.Profile, error)
}

// CartDB defines the cart rows kept per profile by the remote backend
type CartDB interface {
	// AddCartItem adds quantity units of a product to a profile's cart row,
	// creating the row on first use
	AddCartItem(ctx context.Context, profileID, productID string, quantity int) error
	// ListCart returns a profile's cart rows in insertion order
	ListCart(ctx context.Context, profileID string) ([]models.SavedCartLine, error)
}
