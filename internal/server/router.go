package server

import (
	"net/http"
	"time"

	"storefront/services/storefront/handler"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// Services groups what the router wires into its handlers
type Services struct {
	Stores   StoreProvider
	Sessions handler.SessionServiceInterface
	Bidding  handler.BiddingServiceInterface
	Catalog  handler.CatalogServiceInterface
	Checkout handler.CheckoutServiceInterface

	// SavedCarts is optional; without it carts stay client state only
	SavedCarts handler.SavedCartServiceInterface

	RequestTimeout time.Duration
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(s Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	sessionHandler := handler.NewSessionHandler(s.Sessions)
	cartHandler := handler.NewCartHandler(s.Catalog, s.Checkout).WithSavedCart(s.SavedCarts)
	biddingHandler := handler.NewBiddingHandler(s.Bidding)
	catalogHandler := handler.NewCatalogHandler(s.Catalog, s.Bidding).WithLookupTimeout(s.RequestTimeout)

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"ok": true}, "healthy")
	})

	// long-lived stream, ends with the auction or the client connection
	router.GET("/auctions/:auction_id/countdown", catalogHandler.CountdownHandler)

	bounded := router.Group("", RequestTimeoutMiddleware(s.RequestTimeout))

	// catalog reads work without a client id; with one the browsing mode
	// and watchlist are taken into account
	public := bounded.Group("", ClientStoreMiddleware(s.Stores, false))
	{
		public.POST("/auth/register", sessionHandler.RegisterHandler)

		public.GET("/auctions", catalogHandler.ListAuctionsHandler)
		public.GET("/auctions/ending-soon", catalogHandler.EndingSoonHandler)
		public.GET("/auctions/hot", catalogHandler.HotHandler)
		public.GET("/auctions/new", catalogHandler.NewArrivalsHandler)
		public.GET("/auctions/:auction_id", catalogHandler.GetAuctionHandler)
		public.GET("/auctions/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)

		public.GET("/products", catalogHandler.ListProductsHandler)
		public.GET("/products/:product_id", catalogHandler.GetProductHandler)
		public.GET("/categories", catalogHandler.CategoriesHandler)
		public.GET("/banners", catalogHandler.BannersHandler)
		public.GET("/flash-deals", catalogHandler.FlashDealsHandler)
		public.GET("/best-sellers", catalogHandler.BestSellersHandler)
	}

	client := bounded.Group("", ClientStoreMiddleware(s.Stores, true))
	verified := VerifiedSessionMiddleware(s.Sessions, true)
	{
		client.POST("/auth/login", sessionHandler.LoginHandler)
		client.POST("/auth/logout", sessionHandler.LogoutHandler)
		client.GET("/session", VerifiedSessionMiddleware(s.Sessions, false), sessionHandler.GetSessionHandler)

		client.GET("/cart", cartHandler.GetCartHandler)
		client.POST("/cart", cartHandler.AddToCartHandler)
		client.DELETE("/cart", cartHandler.ClearCartHandler)
		client.GET("/cart/totals", cartHandler.GetTotalsHandler)
		client.PATCH("/cart/:item_id", cartHandler.UpdateQuantityHandler)
		client.DELETE("/cart/:item_id", cartHandler.RemoveFromCartHandler)

		client.GET("/watchlist", cartHandler.GetWatchlistHandler)
		client.GET("/watchlist/:item_id", cartHandler.GetWatchlistItemHandler)
		client.POST("/watchlist/:item_id", cartHandler.ToggleWatchlistHandler)

		client.GET("/mode", cartHandler.GetModeHandler)
		client.PUT("/mode", cartHandler.SetModeHandler)

		client.GET("/orders", verified, cartHandler.GetOrdersHandler)
		client.POST("/orders", verified, cartHandler.CheckoutHandler)

		client.POST("/auctions/:auction_id/bids", verified, biddingHandler.PlaceBidHandler)
		client.DELETE("/bids/:bid_id", verified, biddingHandler.DeleteBidHandler)
		client.GET("/me/bids", verified, biddingHandler.GetMyBidsHandler)
		client.GET("/me/cart", verified, cartHandler.GetSavedCartHandler)
	}

	return router
}
