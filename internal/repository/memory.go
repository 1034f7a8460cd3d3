package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/storeerrors"
	"storefront/utils"
)

type flashDealRow struct {
	dealID    int64
	productID string
	discount  float64
}

type bestSellerRow struct {
	ranking   int
	productID string
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB, CatalogDB and CartDB
type MemoryRepo struct {
	mu          sync.RWMutex
	products    map[string]models.Product
	images      map[string][]models.ProductImage // key: productID
	auctions    map[string]models.Auction
	bids        map[string][]models.Bid   // key: auctionID
	bidAuction  map[string]string         // key: bidID -> value: auctionID
	profiles    map[string]models.Profile // key: uid
	categories  []models.Category
	banners     []models.Banner
	flashDeals  []flashDealRow
	bestSellers []bestSellerRow
	carts       map[string][]models.SavedCartLine // key: profileID
	nextImageID int64
	nextCartID  int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:   make(map[string]models.Product),
		images:     make(map[string][]models.ProductImage),
		auctions:   make(map[string]models.Auction),
		bids:       make(map[string][]models.Bid),
		bidAuction: make(map[string]string),
		profiles:   make(map[string]models.Profile),
		carts:      make(map[string][]models.SavedCartLine),
	}
}

// checkBiddable applies the server-side acceptance rules to a freshly read auction
func checkBiddable(a models.Auction, amount float64, now time.Time) error {
	switch a.State(now) {
	case models.AuctionScheduled:
		return storeerrors.ErrAuctionNotOpen
	case models.AuctionClosed:
		return storeerrors.ErrAuctionClosed
	}
	if current := a.EffectivePrice(); amount <= current {
		return &storeerrors.ConflictError{AuctionID: a.AuctionID, CurrentPrice: current}
	}
	return nil
}

// highestBid returns the maximum remaining amount, or nil when no bid is left
func highestBid(bids []models.Bid) *float64 {
	if len(bids) == 0 {
		return nil
	}
	highest := bids[0].Amount
	for _, b := range bids[1:] {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return &highest
}

// PlaceBid checks and records a bid inside a single critical section
func (r *MemoryRepo) PlaceBid(ctx context.Context, bid models.Bid, now time.Time) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[bid.AuctionID]
	if !ok {
		return 0, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, storeerrors.ErrNotFound)
	}
	if err := checkBiddable(a, bid.Amount, now); err != nil {
		return 0, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	r.bidAuction[bid.BidID] = bid.AuctionID

	price := bid.Amount
	a.CurrentPrice = &price
	r.auctions[a.AuctionID] = a
	return price, nil
}

// DeleteBid removes a bid and recomputes the auction price in the same critical section
func (r *MemoryRepo) DeleteBid(ctx context.Context, bidID, bidderID string) (models.Auction, error) {
	if err := ctx.Err(); err != nil {
		return models.Auction{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	auctionID, ok := r.bidAuction[bidID]
	if !ok {
		return models.Auction{}, fmt.Errorf("delete bid %s: %w", bidID, storeerrors.ErrNotFound)
	}

	bids := r.bids[auctionID]
	idx := -1
	for i, b := range bids {
		if b.BidID == bidID {
			idx = i
			break
		}
	}
	if idx < 0 || bids[idx].BidderID != bidderID {
		return models.Auction{}, fmt.Errorf("delete bid %s: %w", bidID, storeerrors.ErrNotFound)
	}

	remaining := append(bids[:idx:idx], bids[idx+1:]...)
	r.bids[auctionID] = remaining
	delete(r.bidAuction, bidID)

	a := r.auctions[auctionID]
	a.CurrentPrice = highestBid(remaining)
	r.auctions[auctionID] = a

	utils.Debug("repository: bid deleted, price recomputed", map[string]any{
		"bid_id": bidID, "auction_id": auctionID, "price": a.EffectivePrice(),
	})
	return a, nil
}

// GetAuction returns one auction row
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, storeerrors.ErrNotFound)
	}
	return a, nil
}

// GetAuctionByProduct returns the auction selling productID
func (r *MemoryRepo) GetAuctionByProduct(_ context.Context, productID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.auctions {
		if a.ProductID == productID {
			return a, nil
		}
	}
	return models.Auction{}, fmt.Errorf("get auction for product %s: %w", productID, storeerrors.ErrNotFound)
}

// GetBidsByAuction returns the bids of an auction, newest first
func (r *MemoryRepo) GetBidsByAuction(_ context.Context, auctionID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, storeerrors.ErrNotFound)
	}
	bids := append([]models.Bid{}, r.bids[auctionID]...)
	sortNewestFirst(bids)
	return bids, nil
}

// GetBidsByBidder returns every bid a bidder placed, newest first
func (r *MemoryRepo) GetBidsByBidder(_ context.Context, bidderID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Bid{}
	for _, bids := range r.bids {
		for _, b := range bids {
			if b.BidderID == bidderID {
				out = append(out, b)
			}
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(bids []models.Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].BidID < bids[j].BidID
		}
		return bids[i].CreatedAt.After(bids[j].CreatedAt)
	})
}

// ListAuctions filters, sorts and pages auctions joined with their products
func (r *MemoryRepo) ListAuctions(_ context.Context, filter ListFilter) ([]models.AuctionListing, int, error) {
	f := filter.Normalized()

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.AuctionListing, 0)
	for _, a := range r.auctions {
		p := r.products[a.ProductID]
		if !matchesText(p, f) || !inPriceRange(a.EffectivePrice(), f) {
			continue
		}
		matches = append(matches, models.AuctionListing{
			Auction: a,
			Product: p,
			Images:  append([]models.ProductImage{}, r.images[a.ProductID]...),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		switch f.Sort {
		case SortPriceAsc:
			if a.EffectivePrice() != b.EffectivePrice() {
				return a.EffectivePrice() < b.EffectivePrice()
			}
		case SortPriceDesc:
			if a.EffectivePrice() != b.EffectivePrice() {
				return a.EffectivePrice() > b.EffectivePrice()
			}
		case SortEndingSoon:
			if !a.EndTime.Equal(b.EndTime) {
				return a.EndTime.Before(b.EndTime)
			}
		default:
			if !a.StartTime.Equal(b.StartTime) {
				return a.StartTime.After(b.StartTime)
			}
		}
		return a.AuctionID < b.AuctionID
	})

	return page(matches, f), len(matches), nil
}

// GetProduct returns one product row
func (r *MemoryRepo) GetProduct(_ context.Context, productID string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return models.Product{}, fmt.Errorf("get product %s: %w", productID, storeerrors.ErrNotFound)
	}
	return p, nil
}

// GetProductImages returns a product's images ordered by image id
func (r *MemoryRepo) GetProductImages(_ context.Context, productID string) ([]models.ProductImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ProductImage{}, r.images[productID]...), nil
}

// ListProducts filters, sorts and pages products
func (r *MemoryRepo) ListProducts(_ context.Context, filter ListFilter) ([]models.Product, int, error) {
	f := filter.Normalized()

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Product, 0)
	for _, p := range r.products {
		if f.Auction != nil && p.IsAuction != *f.Auction {
			continue
		}
		if !matchesText(p, f) || !inPriceRange(p.Price, f) {
			continue
		}
		matches = append(matches, p)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		switch f.Sort {
		case SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ProductID < b.ProductID
	})

	return page(matches, f), len(matches), nil
}

func matchesText(p models.Product, f ListFilter) bool {
	if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func inPriceRange(price float64, f ListFilter) bool {
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}

func page[T any](items []T, f ListFilter) []T {
	start := f.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + f.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ListCategories returns every category ordered by name
func (r *MemoryRepo) ListCategories(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]models.Category{}, r.categories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListBanners returns the active banners by priority
func (r *MemoryRepo) ListBanners(_ context.Context) ([]models.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Banner{}
	for _, b := range r.banners {
		if b.Active {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out, nil
}

// ListFlashDeals returns the deals with their products, biggest discount first
func (r *MemoryRepo) ListFlashDeals(_ context.Context) ([]models.FlashDeal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.FlashDeal{}
	for _, d := range r.flashDeals {
		p, ok := r.products[d.productID]
		if !ok {
			continue
		}
		out = append(out, models.FlashDeal{DealID: d.dealID, DiscountPercent: d.discount, Product: p})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DiscountPercent > out[j].DiscountPercent })
	return out, nil
}

// ListBestSellers returns the ranked best sellers with their products
func (r *MemoryRepo) ListBestSellers(_ context.Context) ([]models.BestSeller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.BestSeller{}
	for _, b := range r.bestSellers {
		p, ok := r.products[b.productID]
		if !ok {
			continue
		}
		out = append(out, models.BestSeller{Ranking: b.ranking, Product: p})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ranking < out[j].Ranking })
	return out, nil
}

// CreateProfile inserts a user_profile row. The uid is unique.
func (r *MemoryRepo) CreateProfile(ctx context.Context, profile models.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.UID]; exists {
		return fmt.Errorf("create profile for %s: %w", profile.UID, storeerrors.ErrConflict)
	}
	if profile.ProfileID == "" {
		profile.ProfileID = utils.GenerateID()
	}
	r.profiles[profile.UID] = profile
	return nil
}

// GetProfileByUID returns the profile of an auth user
func (r *MemoryRepo) GetProfileByUID(_ context.Context, uid string) (models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[uid]
	if !ok {
		return models.Profile{}, fmt.Errorf("get profile %s: %w", uid, storeerrors.ErrNotFound)
	}
	return p, nil
}

// AddProduct adds a product and its images. Image ids are assigned in call order.
func (r *MemoryRepo) AddProduct(p models.Product, imageURLs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[p.ProductID] = p
	for _, url := range imageURLs {
		r.nextImageID++
		r.images[p.ProductID] = append(r.images[p.ProductID], models.ProductImage{
			ProductID: p.ProductID,
			ImageID:   r.nextImageID,
			URL:       url,
		})
	}
}

// AddAuction adds or replaces an auction row
func (r *MemoryRepo) AddAuction(a models.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.AuctionID] = a
}

// AddCategory adds a category row
func (r *MemoryRepo) AddCategory(c models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, c)
}

// AddBanner adds a featured banner row
func (r *MemoryRepo) AddBanner(b models.Banner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banners = append(r.banners, b)
}

// AddFlashDeal adds a flash deal for an existing product
func (r *MemoryRepo) AddFlashDeal(dealID int64, productID string, discountPercent float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flashDeals = append(r.flashDeals, flashDealRow{dealID: dealID, productID: productID, discount: discountPercent})
}

// AddBestSeller ranks an existing product
func (r *MemoryRepo) AddBestSeller(ranking int, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bestSellers = append(r.bestSellers, bestSellerRow{ranking: ranking, productID: productID})
}

// AddCartItem upserts the (profile, product) cart row, adding to its quantity
// when it exists. An unknown profile or product reports ErrNotFound.
func (r *MemoryRepo) AddCartItem(ctx context.Context, profileID, productID string, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("add cart item: %w", storeerrors.NewValidationError("quantity", "must be positive"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasProfileLocked(profileID) {
		return fmt.Errorf("add cart item for %s: unknown profile: %w", profileID, storeerrors.ErrNotFound)
	}
	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("add cart item %s: unknown product: %w", productID, storeerrors.ErrNotFound)
	}

	lines := r.carts[profileID]
	for i := range lines {
		if lines[i].Product.ProductID == productID {
			lines[i].Quantity += quantity
			return nil
		}
	}
	r.nextCartID++
	r.carts[profileID] = append(lines, models.SavedCartLine{
		CartID:    r.nextCartID,
		ProfileID: profileID,
		Quantity:  quantity,
		Product:   p,
	})
	return nil
}

func (r *MemoryRepo) hasProfileLocked(profileID string) bool {
	for _, p := range r.profiles {
		if p.ProfileID == profileID {
			return true
		}
	}
	return false
}

// ListCart returns the cart rows of a profile with their products
func (r *MemoryRepo) ListCart(ctx context.Context, profileID string) ([]models.SavedCartLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SavedCartLine, 0, len(r.carts[profileID]))
	for _, l := range r.carts[profileID] {
		l.Product = r.products[l.Product.ProductID]
		out = append(out, l)
	}
	return out, nil
}
