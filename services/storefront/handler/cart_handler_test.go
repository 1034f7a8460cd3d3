package handler

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/checkout"
	"storefront/internal/models"
	"storefront/internal/storeerrors"
	"storefront/services/storefront/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func cartRouter(h *CartHandler, st gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(st)
	router.GET("/cart", h.GetCartHandler)
	router.POST("/cart", h.AddToCartHandler)
	router.DELETE("/cart", h.ClearCartHandler)
	router.GET("/cart/totals", h.GetTotalsHandler)
	router.PATCH("/cart/:item_id", h.UpdateQuantityHandler)
	router.DELETE("/cart/:item_id", h.RemoveFromCartHandler)
	router.GET("/watchlist", h.GetWatchlistHandler)
	router.GET("/watchlist/:item_id", h.GetWatchlistItemHandler)
	router.POST("/watchlist/:item_id", h.ToggleWatchlistHandler)
	router.GET("/mode", h.GetModeHandler)
	router.PUT("/mode", h.SetModeHandler)
	router.GET("/orders", h.GetOrdersHandler)
	router.POST("/orders", h.CheckoutHandler)
	router.GET("/me/cart", h.GetSavedCartHandler)
	return router
}

func TestCartHandler_Flow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockCatalog := NewMockCatalogServiceInterface(ctrl)
	mockCheckout := NewMockCheckoutServiceInterface(ctrl)

	mockCatalog.EXPECT().ProductDetail(gomock.Any(), "prod-mug").Return(models.ProductDetail{
		Product: models.Product{ProductID: "prod-mug", Title: "Mug", Price: 12.5},
		Images:  []models.ProductImage{{ImageID: 1, URL: "https://img/mug.jpg"}},
	}, nil).Times(2)
	mockCatalog.EXPECT().ProductDetail(gomock.Any(), "prod-lamp").Return(models.ProductDetail{
		Product: models.Product{ProductID: "prod-lamp", Title: "Lamp", Price: 40},
	}, nil)
	mockCatalog.EXPECT().ProductDetail(gomock.Any(), "prod-watch").Return(models.ProductDetail{
		Product: models.Product{ProductID: "prod-watch", Title: "Watch", Price: 90, IsAuction: true},
	}, nil)
	mockCatalog.EXPECT().ProductDetail(gomock.Any(), "missing").Return(models.ProductDetail{}, storeerrors.ErrNotFound)

	st := newTestStore(false)
	router := cartRouter(NewCartHandler(mockCatalog, mockCheckout), withStore(st))

	status, resp := doRequest(t, router, http.MethodPost, "/cart", helpers.AddToCartRequest{ProductID: "prod-mug"})
	require.Equal(t, http.StatusCreated, status)
	added := decode[helpers.AddToCartResponse](t, resp.Data)
	require.True(t, added.Added)
	require.Equal(t, "https://img/mug.jpg", added.Lines[0].ImageRef)

	status, _ = doRequest(t, router, http.MethodPost, "/cart", helpers.AddToCartRequest{ProductID: "prod-mug"})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doRequest(t, router, http.MethodPost, "/cart", helpers.AddToCartRequest{ProductID: "prod-lamp"})
	require.Equal(t, http.StatusCreated, status)

	status, resp = doRequest(t, router, http.MethodPost, "/cart", helpers.AddToCartRequest{ProductID: "prod-watch"})
	require.Equal(t, http.StatusOK, status)
	require.False(t, decode[helpers.AddToCartResponse](t, resp.Data).Added)

	status, _ = doRequest(t, router, http.MethodPost, "/cart", helpers.AddToCartRequest{ProductID: "missing"})
	require.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, router, http.MethodPost, "/cart", `{}`)
	require.Equal(t, http.StatusBadRequest, status)

	// 2 x 12.5 + 40 = 65; shipping 2 lines x 10; tax 8%
	status, resp = doRequest(t, router, http.MethodGet, "/cart/totals", nil)
	require.Equal(t, http.StatusOK, status)
	totals := decode[models.Totals](t, resp.Data)
	require.InDelta(t, 65.0, totals.Subtotal, 1e-9)
	require.InDelta(t, 20.0, totals.Shipping, 1e-9)
	require.InDelta(t, 5.2, totals.Tax, 1e-9)
	require.InDelta(t, 90.2, totals.GrandTotal, 1e-9)

	qty := 5
	status, resp = doRequest(t, router, http.MethodPatch, "/cart/prod-lamp", helpers.UpdateQuantityRequest{Quantity: &qty})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 7, decode[helpers.CartResponse](t, resp.Data).Count)

	status, _ = doRequest(t, router, http.MethodPatch, "/cart/nope", helpers.UpdateQuantityRequest{Quantity: &qty})
	require.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, router, http.MethodPatch, "/cart/prod-lamp", `{}`)
	require.Equal(t, http.StatusBadRequest, status)

	zero := 0
	status, resp = doRequest(t, router, http.MethodPatch, "/cart/prod-lamp", helpers.UpdateQuantityRequest{Quantity: &zero})
	require.Equal(t, http.StatusOK, status)
	require.Len(t, decode[helpers.CartResponse](t, resp.Data).Lines, 1)

	status, _ = doRequest(t, router, http.MethodDelete, "/cart/prod-mug", nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = doRequest(t, router, http.MethodDelete, "/cart/prod-mug", nil)
	require.Equal(t, http.StatusNotFound, status)

	status, resp = doRequest(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, decode[helpers.CartResponse](t, resp.Data).Lines)
}

func TestCartHandler_ClearCart(t *testing.T) {
	t.Parallel()

	st := newTestStore(false)
	price := 3.0
	require.True(t, st.AddToCart(models.CartItem{ID: "a", Title: "A", OriginalPrice: &price}))

	router := cartRouter(NewCartHandler(nil, nil), withStore(st))
	status, resp := doRequest(t, router, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, decode[helpers.CartResponse](t, resp.Data).Count)
	require.Empty(t, st.Cart())
}

func TestCartHandler_Watchlist(t *testing.T) {
	t.Parallel()

	st := newTestStore(true)
	router := cartRouter(NewCartHandler(nil, nil), withStore(st))

	status, resp := doRequest(t, router, http.MethodPost, "/watchlist/auc-watch", nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, decode[helpers.WatchlistToggleResponse](t, resp.Data).InWatchlist)

	status, resp = doRequest(t, router, http.MethodGet, "/watchlist/auc-watch", nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, decode[helpers.WatchlistToggleResponse](t, resp.Data).InWatchlist)

	status, resp = doRequest(t, router, http.MethodGet, "/watchlist", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, decode[[]models.WatchlistEntry](t, resp.Data), 1)

	status, resp = doRequest(t, router, http.MethodPost, "/watchlist/auc-watch", nil)
	require.Equal(t, http.StatusOK, status)
	require.False(t, decode[helpers.WatchlistToggleResponse](t, resp.Data).InWatchlist)
	require.False(t, st.IsInWatchlist("auc-watch"))
}

func TestCartHandler_Mode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    any
		expectedStatus int
		expectedMode   models.Mode
	}{
		{name: "marketplace", requestBody: helpers.SetModeRequest{Mode: models.ModeMarketplace}, expectedStatus: http.StatusOK, expectedMode: models.ModeMarketplace},
		{name: "auction", requestBody: helpers.SetModeRequest{Mode: models.ModeAuction}, expectedStatus: http.StatusOK, expectedMode: models.ModeAuction},
		{name: "unknown_mode", requestBody: helpers.SetModeRequest{Mode: "wholesale"}, expectedStatus: http.StatusUnprocessableEntity},
		{name: "missing_mode", requestBody: `{}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := newTestStore(false)
			before := st.Mode()
			router := cartRouter(NewCartHandler(nil, nil), withStore(st))

			status, _ := doRequest(t, router, http.MethodPut, "/mode", tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)

			status, resp := doRequest(t, router, http.MethodGet, "/mode", nil)
			require.Equal(t, http.StatusOK, status)
			got := decode[helpers.ModeResponse](t, resp.Data).Mode
			if tc.expectedMode == "" {
				require.Equal(t, before, got)
				return
			}
			require.Equal(t, tc.expectedMode, got)
		})
	}
}

func TestCartHandler_Checkout(t *testing.T) {
	t.Parallel()

	form := checkout.Form{FirstName: "Ada", Email: "ada@example.com", CardNumber: "4242424242424242"}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockCheckoutServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "order_placed",
			requestBody: form,
			mockSetup: func(m *MockCheckoutServiceInterface) {
				m.EXPECT().Submit(gomock.Any(), form).Return(models.Order{ID: "ORD-1", Status: checkout.StatusProcessing}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "order placed",
		},
		{
			name:        "invalid_fields",
			requestBody: form,
			mockSetup: func(m *MockCheckoutServiceInterface) {
				m.EXPECT().Submit(gomock.Any(), form).Return(models.Order{}, checkout.FieldErrors{
					{Field: "phone", Reason: "must contain at least 10 digits"},
					{Field: "cvv", Reason: "is required"},
				})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "invalid input",
		},
		{
			name:        "empty_cart",
			requestBody: form,
			mockSetup: func(m *MockCheckoutServiceInterface) {
				m.EXPECT().Submit(gomock.Any(), form).Return(models.Order{}, storeerrors.ErrEmptyCart)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "cart is empty",
		},
		{
			name:        "not_signed_in",
			requestBody: form,
			mockSetup: func(m *MockCheckoutServiceInterface) {
				m.EXPECT().Submit(gomock.Any(), form).Return(models.Order{}, storeerrors.ErrNotAuthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "sign in required",
		},
		{
			name:           "invalid_json",
			requestBody:    `{"first_name":`,
			mockSetup:      func(m *MockCheckoutServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockCheckout := NewMockCheckoutServiceInterface(ctrl)
			tc.mockSetup(mockCheckout)

			router := cartRouter(NewCartHandler(nil, mockCheckout), withStore(newTestStore(true)))
			status, resp := doRequest(t, router, http.MethodPost, "/orders", tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp.Message, tc.expectedMsg)

			if tc.name == "invalid_fields" {
				details := decode[[]map[string]string](t, resp.Details)
				require.Len(t, details, 2)
				require.Equal(t, "phone", details[0]["field"])
			}
		})
	}
}

func TestCartHandler_Orders(t *testing.T) {
	t.Parallel()

	signedIn := newTestStore(true)
	signedIn.AddOrder(models.Order{ID: "ORD-1", Status: checkout.StatusProcessing})

	router := cartRouter(NewCartHandler(nil, nil), withStore(signedIn))
	status, resp := doRequest(t, router, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, status)
	orders := decode[[]models.Order](t, resp.Data)
	require.Len(t, orders, 1)
	require.Equal(t, "ORD-1", orders[0].ID)

	anonymous := cartRouter(NewCartHandler(nil, nil), withStore(newTestStore(false)))
	status, _ = doRequest(t, anonymous, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestCartHandler_NoClientStore(t *testing.T) {
	t.Parallel()

	router := cartRouter(NewCartHandler(nil, nil), withStore(nil))
	status, resp := doRequest(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, resp.Error, helpers.ClientIDHeader)
}

func TestCartHandler_SavedCart(t *testing.T) {
	t.Parallel()

	mug := models.ProductDetail{Product: models.Product{ProductID: "prod-mug", Title: "Mug", Price: 12.5}}
	watch := models.ProductDetail{Product: models.Product{ProductID: "prod-watch", Title: "Watch", Price: 90, IsAuction: true}}

	tests := []struct {
		name      string
		signedIn  bool
		product   models.ProductDetail
		mockSetup func(m *MockSavedCartServiceInterface)
		wantAdded bool
		wantSaved bool
	}{
		{
			name:     "signed_in_add_is_saved",
			signedIn: true,
			product:  mug,
			mockSetup: func(m *MockSavedCartServiceInterface) {
				m.EXPECT().Save(gomock.Any(), gomock.Any(), "prod-mug", 1).Return(nil)
			},
			wantAdded: true,
			wantSaved: true,
		},
		{
			name:      "anonymous_add_stays_local",
			product:   mug,
			mockSetup: func(*MockSavedCartServiceInterface) {},
			wantAdded: true,
		},
		{
			name:      "auction_item_is_not_saved",
			signedIn:  true,
			product:   watch,
			mockSetup: func(*MockSavedCartServiceInterface) {},
		},
		{
			name:     "backend_failure_keeps_local_line",
			signedIn: true,
			product:  mug,
			mockSetup: func(m *MockSavedCartServiceInterface) {
				m.EXPECT().Save(gomock.Any(), gomock.Any(), "prod-mug", 1).Return(errors.New("connection reset"))
			},
			wantAdded: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockCatalog := NewMockCatalogServiceInterface(ctrl)
			mockCatalog.EXPECT().ProductDetail(gomock.Any(), tc.product.Product.ProductID).Return(tc.product, nil)
			mockSaved := NewMockSavedCartServiceInterface(ctrl)
			tc.mockSetup(mockSaved)

			st := newTestStore(tc.signedIn)
			router := cartRouter(NewCartHandler(mockCatalog, nil).WithSavedCart(mockSaved), withStore(st))

			_, resp := doRequest(t, router, http.MethodPost, "/cart", helpers.AddToCartRequest{ProductID: tc.product.Product.ProductID})
			got := decode[helpers.AddToCartResponse](t, resp.Data)
			require.Equal(t, tc.wantAdded, got.Added)
			require.Equal(t, tc.wantSaved, got.Saved)
			require.Equal(t, tc.wantAdded, len(st.Cart()) == 1)
		})
	}
}

func TestCartHandler_GetSavedCart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockSaved := NewMockSavedCartServiceInterface(ctrl)
	mockSaved.EXPECT().Lines(gomock.Any(), gomock.Any()).
		Return([]models.SavedCartLine{{CartID: 1, ProfileID: "profile-1", Quantity: 2, Product: models.Product{ProductID: "prod-mug"}}}, nil)
	mockSaved.EXPECT().Lines(gomock.Any(), gomock.Any()).Return(nil, storeerrors.ErrNotAuthenticated)

	router := cartRouter(NewCartHandler(nil, nil).WithSavedCart(mockSaved), withStore(newTestStore(true)))
	status, resp := doRequest(t, router, http.MethodGet, "/me/cart", nil)
	require.Equal(t, http.StatusOK, status)
	lines := decode[[]models.SavedCartLine](t, resp.Data)
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)

	status, _ = doRequest(t, router, http.MethodGet, "/me/cart", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	disabled := cartRouter(NewCartHandler(nil, nil), withStore(newTestStore(true)))
	status, _ = doRequest(t, disabled, http.MethodGet, "/me/cart", nil)
	require.Equal(t, http.StatusNotFound, status)
}
