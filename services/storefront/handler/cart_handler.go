package handler

import (
	"fmt"
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/storeerrors"
	"storefront/services/storefront/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the cart ledger, watchlist, browsing mode and order history
// of the calling client
type CartHandler struct {
	catalog  CatalogServiceInterface
	checkout CheckoutServiceInterface
	saved    SavedCartServiceInterface
}

func NewCartHandler(catalog CatalogServiceInterface, checkout CheckoutServiceInterface) *CartHandler {
	return &CartHandler{catalog: catalog, checkout: checkout}
}

// WithSavedCart mirrors the cart additions of signed-in clients into the
// backend cart table
func (h *CartHandler) WithSavedCart(saved SavedCartServiceInterface) *CartHandler {
	h.saved = saved
	return h
}

func cartResponse(st *store.Store) helpers.CartResponse {
	view := st.CartView()
	return helpers.CartResponse{Lines: view.Lines, Count: view.Count, Totals: view.Totals}
}

// GetCartHandler handles GET /cart
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetCartHandler")
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, cartResponse(st), "cart retrieved successfully")
}

// GetTotalsHandler handles GET /cart/totals
func (h *CartHandler) GetTotalsHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetTotalsHandler")
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, st.Totals(), "totals retrieved successfully")
}

// AddToCartHandler handles POST /cart. The line is built from the product
// row; auction products are not added.
func (h *CartHandler) AddToCartHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "AddToCartHandler")
	if !ok {
		return
	}
	var req helpers.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToCartHandler", err)
		return
	}

	detail, err := h.catalog.ProductDetail(c.Request.Context(), req.ProductID)
	if err != nil {
		helpers.RespondError(c, "AddToCartHandler", err, map[string]any{"product_id": req.ProductID})
		return
	}

	item := models.CartItem{ID: detail.Product.ProductID, Title: detail.Product.Title}
	if !detail.Product.IsAuction {
		price := detail.Product.Price
		item.OriginalPrice = &price
	}
	if len(detail.Images) > 0 {
		item.ImageRef = detail.Images[0].URL
	}

	added := st.AddToCart(item)
	status, message := http.StatusCreated, "added to cart"
	if !added {
		status, message = http.StatusOK, "auction items cannot be added to the cart"
	}
	saved := added && h.saveLine(c, st, req.ProductID)
	utils.JSONResponse(c, status, helpers.AddToCartResponse{Added: added, Saved: saved, CartResponse: cartResponse(st)}, message)
	helpers.LogSuccess("AddToCartHandler", message, map[string]any{"product_id": req.ProductID, "added": added, "saved": saved})
}

// saveLine writes one unit to the saved cart of a signed-in client. The
// client cart stays authoritative, so a failed write is only logged.
func (h *CartHandler) saveLine(c *gin.Context, st *store.Store, productID string) bool {
	if h.saved == nil || !st.IsAuthenticated() {
		return false
	}
	if err := h.saved.Save(c.Request.Context(), st, productID, 1); err != nil {
		utils.Warn("AddToCartHandler: saved cart not updated", map[string]any{"product_id": productID, "error": err.Error()})
		return false
	}
	return true
}

// GetSavedCartHandler handles GET /me/cart, the signed-in user's cart as
// stored by the backend
func (h *CartHandler) GetSavedCartHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetSavedCartHandler")
	if !ok {
		return
	}
	if h.saved == nil {
		helpers.RespondError(c, "GetSavedCartHandler", fmt.Errorf("saved cart: %w", storeerrors.ErrNotFound), nil)
		return
	}

	lines, err := h.saved.Lines(c.Request.Context(), st)
	if err != nil {
		helpers.RespondError(c, "GetSavedCartHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, lines, "saved cart retrieved successfully")
}

// UpdateQuantityHandler handles PATCH /cart/:item_id. A quantity of zero or
// less removes the line.
func (h *CartHandler) UpdateQuantityHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "UpdateQuantityHandler")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	var req helpers.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateQuantityHandler", err)
		return
	}

	if !st.UpdateQuantity(itemID, *req.Quantity) {
		helpers.RespondError(c, "UpdateQuantityHandler", fmt.Errorf("cart item %s: %w", itemID, storeerrors.ErrNotFound), nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cartResponse(st), "cart updated")
}

// RemoveFromCartHandler handles DELETE /cart/:item_id
func (h *CartHandler) RemoveFromCartHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "RemoveFromCartHandler")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	if !st.RemoveFromCart(itemID) {
		helpers.RespondError(c, "RemoveFromCartHandler", fmt.Errorf("cart item %s: %w", itemID, storeerrors.ErrNotFound), nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cartResponse(st), "removed from cart")
}

// ClearCartHandler handles DELETE /cart
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "ClearCartHandler")
	if !ok {
		return
	}
	st.ClearCart()
	utils.JSONResponse(c, http.StatusOK, cartResponse(st), "cart cleared")
}

// GetWatchlistHandler handles GET /watchlist
func (h *CartHandler) GetWatchlistHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetWatchlistHandler")
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, st.Watchlist(), "watchlist retrieved successfully")
}

// GetWatchlistItemHandler handles GET /watchlist/:item_id
func (h *CartHandler) GetWatchlistItemHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetWatchlistItemHandler")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	utils.JSONResponse(c, http.StatusOK, helpers.WatchlistToggleResponse{ItemID: itemID, InWatchlist: st.IsInWatchlist(itemID)}, "watchlist entry retrieved")
}

// ToggleWatchlistHandler handles POST /watchlist/:item_id
func (h *CartHandler) ToggleWatchlistHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "ToggleWatchlistHandler")
	if !ok {
		return
	}
	itemID := c.Param("item_id")
	in := st.ToggleWatchlist(itemID)
	message := "removed from watchlist"
	if in {
		message = "added to watchlist"
	}
	utils.JSONResponse(c, http.StatusOK, helpers.WatchlistToggleResponse{ItemID: itemID, InWatchlist: in}, message)
}

// GetModeHandler handles GET /mode
func (h *CartHandler) GetModeHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetModeHandler")
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ModeResponse{Mode: st.Mode()}, "mode retrieved successfully")
}

// SetModeHandler handles PUT /mode
func (h *CartHandler) SetModeHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "SetModeHandler")
	if !ok {
		return
	}
	var req helpers.SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetModeHandler", err)
		return
	}
	if err := st.SetMode(req.Mode); err != nil {
		helpers.RespondError(c, "SetModeHandler", err, map[string]any{"mode": req.Mode})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ModeResponse{Mode: st.Mode()}, "mode updated")
}

// GetOrdersHandler handles GET /orders
func (h *CartHandler) GetOrdersHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetOrdersHandler")
	if !ok {
		return
	}
	if !st.IsAuthenticated() {
		helpers.RespondError(c, "GetOrdersHandler", storeerrors.ErrNotAuthenticated, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, st.Orders(), "orders retrieved successfully")
}

// CheckoutHandler handles POST /orders
func (h *CartHandler) CheckoutHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "CheckoutHandler")
	if !ok {
		return
	}
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "CheckoutHandler", err)
		return
	}

	order, err := h.checkout.Submit(st, form)
	if err != nil {
		helpers.RespondError(c, "CheckoutHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, order, "order placed")
	helpers.LogSuccess("CheckoutHandler", "order placed", map[string]any{"order_id": order.ID})
}
