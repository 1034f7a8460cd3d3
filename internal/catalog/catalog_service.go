package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/storeerrors"
	"storefront/utils"

	"golang.org/x/sync/singleflight"
)

// RailLimit is the number of auctions shown in each home page rail
const RailLimit = 12

// DefaultReadTimeout bounds one shared backend read
const DefaultReadTimeout = 10 * time.Second

// Page is one page of a filtered listing
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Service serves the read side of the storefront: home page rails,
// searches, product detail and the merchandising lists.
type Service struct {
	auctions repository.AuctionDB
	products repository.CatalogDB
	sfg      singleflight.Group // collapses identical concurrent reads
	timeout  time.Duration
	now      func() time.Time
}

// NewService creates a catalog Service
func NewService(auctions repository.AuctionDB, products repository.CatalogDB) *Service {
	return &Service{
		auctions: auctions,
		products: products,
		timeout:  DefaultReadTimeout,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithReadTimeout bounds each shared backend read. A non-positive value
// keeps DefaultReadTimeout.
func (s *Service) WithReadTimeout(timeout time.Duration) *Service {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// WithClock replaces the service clock. It is meant for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// shared runs fn once for all concurrent callers asking for the same key.
// Results are shared between callers and must not be mutated. fn runs under
// its own bounded context, so a caller that gives up only stops waiting.
func shared[T any](ctx context.Context, s *Service, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	ch := s.sfg.DoChan(key, func() (any, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return fn(readCtx)
	})

	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("catalog: %s: %w", key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// EndingSoon returns the auctions closing soonest. Auctions that already
// closed are left out.
func (s *Service) EndingSoon(ctx context.Context) ([]models.AuctionListing, error) {
	return shared(ctx, s, "rail:ending-soon", func(ctx context.Context) ([]models.AuctionListing, error) {
		listings, _, err := s.auctions.ListAuctions(ctx, repository.ListFilter{
			Sort:  repository.SortEndingSoon,
			Limit: repository.MaxLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("catalog: ending soon: %w", err)
		}

		now := s.now()
		out := make([]models.AuctionListing, 0, RailLimit)
		for _, l := range listings {
			if l.State(now) == models.AuctionClosed {
				continue
			}
			out = append(out, l)
			if len(out) == RailLimit {
				break
			}
		}
		return out, nil
	})
}

// Hot returns the auctions with the highest current price
func (s *Service) Hot(ctx context.Context) ([]models.AuctionListing, error) {
	return s.rail(ctx, "rail:hot", repository.SortPriceDesc)
}

// NewArrivals returns the most recently started auctions
func (s *Service) NewArrivals(ctx context.Context) ([]models.AuctionListing, error) {
	return s.rail(ctx, "rail:new", repository.SortNewest)
}

func (s *Service) rail(ctx context.Context, key string, order repository.SortOrder) ([]models.AuctionListing, error) {
	return shared(ctx, s, key, func(ctx context.Context) ([]models.AuctionListing, error) {
		listings, _, err := s.auctions.ListAuctions(ctx, repository.ListFilter{Sort: order, Limit: RailLimit})
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", strings.TrimPrefix(key, "rail:"), err)
		}
		return listings, nil
	})
}

// SearchAuctions returns one page of auctions matching filter
func (s *Service) SearchAuctions(ctx context.Context, filter repository.ListFilter) (Page[models.AuctionListing], error) {
	f, err := validFilter(filter)
	if err != nil {
		return Page[models.AuctionListing]{}, err
	}

	listings, total, err := s.auctions.ListAuctions(ctx, f)
	if err != nil {
		return Page[models.AuctionListing]{}, fmt.Errorf("catalog: search auctions: %w", err)
	}
	return Page[models.AuctionListing]{Items: listings, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// SearchProducts returns one page of products matching filter
func (s *Service) SearchProducts(ctx context.Context, filter repository.ListFilter) (Page[models.Product], error) {
	f, err := validFilter(filter)
	if err != nil {
		return Page[models.Product]{}, err
	}

	products, total, err := s.products.ListProducts(ctx, f)
	if err != nil {
		return Page[models.Product]{}, fmt.Errorf("catalog: search products: %w", err)
	}
	return Page[models.Product]{Items: products, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func validFilter(filter repository.ListFilter) (repository.ListFilter, error) {
	f := filter.Normalized()
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return f, fmt.Errorf("catalog: %w", storeerrors.NewValidationError("min_price", "must not be negative"))
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return f, fmt.Errorf("catalog: %w", storeerrors.NewValidationError("max_price", "must not be below min_price"))
	}
	return f, nil
}

// Auction returns one auction joined with its product and images
func (s *Service) Auction(ctx context.Context, auctionID string) (models.AuctionListing, error) {
	return shared(ctx, s, "auction:"+auctionID, func(ctx context.Context) (models.AuctionListing, error) {
		a, err := s.auctions.GetAuction(ctx, auctionID)
		if err != nil {
			return models.AuctionListing{}, fmt.Errorf("catalog: auction %s: %w", auctionID, err)
		}
		p, err := s.products.GetProduct(ctx, a.ProductID)
		if err != nil {
			return models.AuctionListing{}, fmt.Errorf("catalog: product of auction %s: %w", auctionID, err)
		}
		images, err := s.products.GetProductImages(ctx, a.ProductID)
		if err != nil {
			return models.AuctionListing{}, fmt.Errorf("catalog: images of auction %s: %w", auctionID, err)
		}
		return models.AuctionListing{Auction: a, Product: p, Images: images}, nil
	})
}

// ProductDetail returns a product, its images in upload order and, for
// auction products, the auction row. An auction product without an auction
// row is returned without one.
func (s *Service) ProductDetail(ctx context.Context, productID string) (models.ProductDetail, error) {
	return shared(ctx, s, "product:"+productID, func(ctx context.Context) (models.ProductDetail, error) {
		p, err := s.products.GetProduct(ctx, productID)
		if err != nil {
			return models.ProductDetail{}, fmt.Errorf("catalog: product %s: %w", productID, err)
		}
		images, err := s.products.GetProductImages(ctx, productID)
		if err != nil {
			return models.ProductDetail{}, fmt.Errorf("catalog: images of product %s: %w", productID, err)
		}

		detail := models.ProductDetail{Product: p, Images: images}
		if !p.IsAuction {
			return detail, nil
		}

		a, err := s.auctions.GetAuctionByProduct(ctx, productID)
		switch {
		case errors.Is(err, storeerrors.ErrNotFound):
			utils.Warn("catalog: auction product without auction row", map[string]any{"product_id": productID})
		case err != nil:
			return models.ProductDetail{}, fmt.Errorf("catalog: auction of product %s: %w", productID, err)
		default:
			detail.Auction = &a
		}
		return detail, nil
	})
}

// Categories returns every category
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return shared(ctx, s, "categories", func(ctx context.Context) ([]models.Category, error) {
		out, err := s.products.ListCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: categories: %w", err)
		}
		return out, nil
	})
}

// Banners returns the active featured banners by priority
func (s *Service) Banners(ctx context.Context) ([]models.Banner, error) {
	return shared(ctx, s, "banners", func(ctx context.Context) ([]models.Banner, error) {
		out, err := s.products.ListBanners(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: banners: %w", err)
		}
		return out, nil
	})
}

// FlashDeals returns the current flash deals, largest discount first
func (s *Service) FlashDeals(ctx context.Context) ([]models.FlashDeal, error) {
	return shared(ctx, s, "flash-deals", func(ctx context.Context) ([]models.FlashDeal, error) {
		out, err := s.products.ListFlashDeals(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: flash deals: %w", err)
		}
		return out, nil
	})
}

// BestSellers returns the best seller ranking
func (s *Service) BestSellers(ctx context.Context) ([]models.BestSeller, error) {
	return shared(ctx, s, "best-sellers", func(ctx context.Context) ([]models.BestSeller, error) {
		out, err := s.products.ListBestSellers(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: best sellers: %w", err)
		}
		return out, nil
	})
}
