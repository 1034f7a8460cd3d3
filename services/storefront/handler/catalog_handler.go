package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	bidding "storefront/internal/biddingService"
	"storefront/internal/models"
	"storefront/internal/storeerrors"
	"storefront/services/storefront/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog       CatalogServiceInterface
	bidding       BiddingServiceInterface
	now           func() time.Time
	tick          time.Duration
	lookupTimeout time.Duration
}

// DefaultLookupTimeout bounds the auction lookup that opens a countdown stream
const DefaultLookupTimeout = 5 * time.Second

func NewCatalogHandler(catalog CatalogServiceInterface, bidding BiddingServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, bidding: bidding, now: time.Now, tick: time.Second, lookupTimeout: DefaultLookupTimeout}
}

// WithLookupTimeout bounds the auction lookup of the countdown stream. The
// stream itself is not bounded. A non-positive value keeps the default.
func (h *CatalogHandler) WithLookupTimeout(d time.Duration) *CatalogHandler {
	if d > 0 {
		h.lookupTimeout = d
	}
	return h
}

// WithTick sets the countdown stream interval
func (h *CatalogHandler) WithTick(d time.Duration) *CatalogHandler {
	h.tick = d
	return h
}

// WithClock replaces the clock used to derive auction state. It is meant for tests.
func (h *CatalogHandler) WithClock(now func() time.Time) *CatalogHandler {
	h.now = now
	return h
}

func (h *CatalogHandler) views(listings []models.AuctionListing) []helpers.AuctionView {
	now := h.now()
	out := make([]helpers.AuctionView, 0, len(listings))
	for _, l := range listings {
		out = append(out, helpers.NewAuctionView(l, now, bidding.FormatRemaining))
	}
	return out
}

func (h *CatalogHandler) rail(c *gin.Context, name string, fetch func(*gin.Context) ([]models.AuctionListing, error)) {
	listings, err := fetch(c)
	if err != nil {
		helpers.RespondError(c, name, err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, h.views(listings), "auctions retrieved successfully")
}

// EndingSoonHandler handles GET /auctions/ending-soon
func (h *CatalogHandler) EndingSoonHandler(c *gin.Context) {
	h.rail(c, "EndingSoonHandler", func(c *gin.Context) ([]models.AuctionListing, error) {
		return h.catalog.EndingSoon(c.Request.Context())
	})
}

// HotHandler handles GET /auctions/hot
func (h *CatalogHandler) HotHandler(c *gin.Context) {
	h.rail(c, "HotHandler", func(c *gin.Context) ([]models.AuctionListing, error) {
		return h.catalog.Hot(c.Request.Context())
	})
}

// NewArrivalsHandler handles GET /auctions/new
func (h *CatalogHandler) NewArrivalsHandler(c *gin.Context) {
	h.rail(c, "NewArrivalsHandler", func(c *gin.Context) ([]models.AuctionListing, error) {
		return h.catalog.NewArrivals(c.Request.Context())
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *CatalogHandler) ListAuctionsHandler(c *gin.Context) {
	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	page, err := h.catalog.SearchAuctions(c.Request.Context(), q.Filter())
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"items": h.views(page.Items),
		"total": page.Total,
		"page":  page.Page,
		"limit": page.Limit,
	}, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *CatalogHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	listing, err := h.catalog.Auction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	view := helpers.NewAuctionView(listing, h.now(), bidding.FormatRemaining)
	if view.State == models.AuctionOpen {
		next, err := h.bidding.MinimumNextBid(c.Request.Context(), auctionID)
		if err != nil {
			helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
			return
		}
		view.MinNextBid = next
	}
	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
}

// CountdownHandler handles GET /auctions/:auction_id/countdown. It streams the
// time left as server-sent events until the auction ends or the client goes away.
func (h *CatalogHandler) CountdownHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	lookupCtx, cancel := context.WithTimeout(c.Request.Context(), h.lookupTimeout)
	listing, err := h.catalog.Auction(lookupCtx, auctionID)
	cancel()
	if err != nil {
		helpers.RespondError(c, "CountdownHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	sent := 0
	for label := range bidding.Countdown(c.Request.Context(), listing.EndTime, h.tick) {
		c.SSEvent("countdown", label)
		c.Writer.Flush()
		sent++
	}
	utils.Debug("countdown stream closed", map[string]any{"auction_id": auctionID, "events": sent})
}

// ListProductsHandler handles GET /products. Without an explicit ?auction
// filter the client's browsing mode decides which products are listed.
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListProductsHandler", err)
		return
	}
	if st, ok := helpers.CurrentStore(c); ok && q.Auction == nil {
		auction := st.Mode() == models.ModeAuction
		q.Auction = &auction
	}

	page, err := h.catalog.SearchProducts(c.Request.Context(), q.Filter())
	if err != nil {
		helpers.RespondError(c, "ListProductsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, page, "products retrieved successfully")
}

// GetProductHandler handles GET /products/:product_id
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	detail, err := h.catalog.ProductDetail(c.Request.Context(), productID)
	if err != nil {
		helpers.RespondError(c, "GetProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	resp := gin.H{"product": detail.Product, "images": detail.Images}
	if detail.Auction != nil {
		now := h.now()
		resp["auction"] = detail.Auction
		resp["state"] = detail.Auction.State(now)
		resp["time_left"] = bidding.FormatRemaining(detail.Auction.EndTime.Sub(now))
	}
	if st, ok := helpers.CurrentStore(c); ok {
		resp["in_watchlist"] = st.IsInWatchlist(productID)
	}
	utils.JSONResponse(c, http.StatusOK, resp, "product retrieved successfully")
}

// CategoriesHandler handles GET /categories
func (h *CatalogHandler) CategoriesHandler(c *gin.Context) {
	list(c, "CategoriesHandler", h.catalog.Categories)
}

// BannersHandler handles GET /banners
func (h *CatalogHandler) BannersHandler(c *gin.Context) {
	list(c, "BannersHandler", h.catalog.Banners)
}

// FlashDealsHandler handles GET /flash-deals
func (h *CatalogHandler) FlashDealsHandler(c *gin.Context) {
	list(c, "FlashDealsHandler", h.catalog.FlashDeals)
}

// BestSellersHandler handles GET /best-sellers
func (h *CatalogHandler) BestSellersHandler(c *gin.Context) {
	list(c, "BestSellersHandler", h.catalog.BestSellers)
}

// list renders a merchandising list. A backend without the table renders
// as an empty list.
func list[T any](c *gin.Context, name string, fetch func(ctx context.Context) ([]T, error)) {
	items, err := fetch(c.Request.Context())
	if err != nil && !errors.Is(err, storeerrors.ErrNotFound) {
		helpers.RespondError(c, name, err, nil)
		return
	}
	if items == nil {
		items = []T{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "retrieved successfully")
}
