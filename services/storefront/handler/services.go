package handler

//go:generate mockgen -source=services.go -destination=mock_services.go -package=handler

import (
	"context"

	bidding "storefront/internal/biddingService"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/store"
)

type SessionServiceInterface interface {
	Login(ctx context.Context, st *store.Store, email, password string) (models.Session, error)
	Logout(st *store.Store)
	Register(ctx context.Context, name, email, password string) (models.Profile, error)
	Verify(ctx context.Context, st *store.Store) (models.Session, error)
}

type BiddingServiceInterface interface {
	DeleteBid(ctx context.Context, st *store.Store, bidID string) (models.Auction, error)
	GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error)
	GetBidsForBidder(ctx context.Context, st *store.Store) ([]models.Bid, error)
	MinimumNextBid(ctx context.Context, auctionID string) (float64, error)
	PlaceBid(ctx context.Context, st *store.Store, auctionID string, amount float64, knownPrice *float64) (bidding.PlaceBidResult, error)
}

type CatalogServiceInterface interface {
	Auction(ctx context.Context, auctionID string) (models.AuctionListing, error)
	Banners(ctx context.Context) ([]models.Banner, error)
	BestSellers(ctx context.Context) ([]models.BestSeller, error)
	Categories(ctx context.Context) ([]models.Category, error)
	EndingSoon(ctx context.Context) ([]models.AuctionListing, error)
	FlashDeals(ctx context.Context) ([]models.FlashDeal, error)
	Hot(ctx context.Context) ([]models.AuctionListing, error)
	NewArrivals(ctx context.Context) ([]models.AuctionListing, error)
	ProductDetail(ctx context.Context, productID string) (models.ProductDetail, error)
	SearchAuctions(ctx context.Context, filter repository.ListFilter) (catalog.Page[models.AuctionListing], error)
	SearchProducts(ctx context.Context, filter repository.ListFilter) (catalog.Page[models.Product], error)
}

type SavedCartServiceInterface interface {
	Lines(ctx context.Context, st *store.Store) ([]models.SavedCartLine, error)
	Save(ctx context.Context, st *store.Store, productID string, quantity int) error
}

type CheckoutServiceInterface interface {
	Submit(st *store.Store, form checkout.Form) (models.Order, error)
}
