package handler

import (
	"net/http"
	"time"

	"storefront/internal/models"
	"storefront/internal/storeerrors"
	"storefront/services/storefront/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "PlaceBidHandler")
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	res, err := h.service.PlaceBid(c.Request.Context(), st, auctionID, req.Amount, req.KnownPrice)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{"auction_id": auctionID, "amount": req.Amount})
		return
	}

	resp := helpers.BidResponse{
		BidID:        res.Bid.BidID,
		AuctionID:    res.Bid.AuctionID,
		BidderID:     res.Bid.BidderID,
		Amount:       res.Bid.Amount,
		CurrentPrice: res.CurrentPrice,
		CreatedAt:    res.Bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     res.Bid.BidID,
		"auction_id": auctionID,
		"user_id":    res.Bid.BidderID,
		"amount":     res.Bid.Amount,
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetBidsByAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// DeleteBidHandler handles DELETE /bids/:bid_id
func (h *BiddingHandler) DeleteBidHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "DeleteBidHandler")
	if !ok {
		return
	}
	bidID := c.Param("bid_id")

	a, err := h.service.DeleteBid(c.Request.Context(), st, bidID)
	if err != nil {
		helpers.RespondError(c, "DeleteBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "bid withdrawn")
	helpers.LogSuccess("DeleteBidHandler", "bid withdrawn", map[string]any{"bid_id": bidID, "auction_id": a.AuctionID})
}

// GetMyBidsHandler handles GET /me/bids. The local bid history is returned
// unless ?source=backend asks for the bids the backend has on record.
func (h *BiddingHandler) GetMyBidsHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetMyBidsHandler")
	if !ok {
		return
	}

	if c.Query("source") != "backend" {
		if !st.IsAuthenticated() {
			helpers.RespondError(c, "GetMyBidsHandler", storeerrors.ErrNotAuthenticated, nil)
			return
		}
		utils.JSONResponse(c, http.StatusOK, st.Bids(), "bids retrieved successfully")
		return
	}

	bids, err := h.service.GetBidsForBidder(c.Request.Context(), st)
	if err != nil {
		helpers.RespondError(c, "GetMyBidsHandler", err, nil)
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}
