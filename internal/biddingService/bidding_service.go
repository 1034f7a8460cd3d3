package bidding

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/store"
	"storefront/internal/storeerrors"
	"storefront/utils"
)

// DefaultIncrement is the minimum raise over the current price
const DefaultIncrement = 10.0

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo      repository.AuctionDB
	increment float64
	now       func() time.Time
}

// NewBiddingService creates a new BiddingService instance. A non-positive
// increment uses DefaultIncrement.
func NewBiddingService(repo repository.AuctionDB, increment float64) *BiddingService {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	return &BiddingService{
		repo:      repo,
		increment: increment,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock. It is meant for tests.
func (s *BiddingService) WithClock(now func() time.Time) *BiddingService {
	s.now = now
	return s
}

// PlaceBidResult is an accepted bid and the authoritative price after it
type PlaceBidResult struct {
	Bid          models.Bid `json:"bid"`
	CurrentPrice float64    `json:"current_price"`
}

// PlaceBid validates a bid against the price the caller last saw and submits
// it as one atomic backend operation. knownPrice is the caller's copy of the
// current price; when nil it is read from the backend. A bid below the known
// price plus the increment is rejected before anything is written. On success
// the bid is appended to the client's local bid history.
func (s *BiddingService) PlaceBid(ctx context.Context, st *store.Store, auctionID string, amount float64, knownPrice *float64) (PlaceBidResult, error) {
	sess, ok := st.Session()
	if !ok {
		return PlaceBidResult{}, fmt.Errorf("service: place bid: %w", storeerrors.ErrNotAuthenticated)
	}
	if err := validateBid(auctionID, amount); err != nil {
		return PlaceBidResult{}, err
	}

	known, err := s.knownPrice(ctx, auctionID, knownPrice)
	if err != nil {
		return PlaceBidResult{}, err
	}
	if minimum := known + s.increment; amount < minimum {
		return PlaceBidResult{}, fmt.Errorf("service: %w: %w", storeerrors.ErrBidTooLow,
			storeerrors.NewValidationError("amount", fmt.Sprintf("minimum bid is %.2f", minimum)))
	}

	now := s.now()
	bid := models.Bid{
		BidID:      utils.GenerateID(),
		AuctionID:  auctionID,
		BidderID:   sess.ID,
		BidderName: sess.DisplayName,
		Amount:     amount,
		CreatedAt:  now,
	}

	price, err := s.repo.PlaceBid(ctx, bid, now)
	if err != nil {
		return PlaceBidResult{}, fmt.Errorf("service: failed to place bid on auction %s by user %s: %w", auctionID, sess.ID, err)
	}

	if err := st.PlaceBidLocally(bid); err != nil {
		// the backend accepted the bid; only the local history missed it
		utils.Warn("service: bid accepted but not recorded locally", map[string]any{
			"bid_id": bid.BidID, "auction_id": auctionID, "error": err.Error(),
		})
	}

	utils.Info("service: bid placed", map[string]any{
		"bid_id": bid.BidID, "auction_id": auctionID, "user_id": sess.ID, "price": price,
	})
	return PlaceBidResult{Bid: bid, CurrentPrice: price}, nil
}

func (s *BiddingService) knownPrice(ctx context.Context, auctionID string, knownPrice *float64) (float64, error) {
	if knownPrice != nil {
		return *knownPrice, nil
	}
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to read auction %s: %w", auctionID, err)
	}
	return a.EffectivePrice(), nil
}

// validateBid checks input validity before any backend call
func validateBid(auctionID string, amount float64) error {
	if strings.TrimSpace(auctionID) == "" {
		return fmt.Errorf("service: %w", storeerrors.NewValidationError("auction_id", "missing auction id"))
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("service: %w", storeerrors.NewValidationError("amount", "bid amount must be a positive number"))
	}
	return nil
}

// DeleteBid withdraws one of the signed-in user's bids. The backend
// recomputes the auction price in the same step; the bid then leaves the
// client's local history.
func (s *BiddingService) DeleteBid(ctx context.Context, st *store.Store, bidID string) (models.Auction, error) {
	sess, ok := st.Session()
	if !ok {
		return models.Auction{}, fmt.Errorf("service: delete bid: %w", storeerrors.ErrNotAuthenticated)
	}
	if strings.TrimSpace(bidID) == "" {
		return models.Auction{}, fmt.Errorf("service: %w", storeerrors.NewValidationError("bid_id", "missing bid id"))
	}

	a, err := s.repo.DeleteBid(ctx, bidID, sess.ID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}

	if !st.RemoveBidLocally(bidID) {
		utils.Debug("service: withdrawn bid was not in the local history", map[string]any{"bid_id": bidID})
	}
	utils.Info("service: bid withdrawn", map[string]any{
		"bid_id": bidID, "auction_id": a.AuctionID, "user_id": sess.ID, "price": a.EffectivePrice(),
	})
	return a, nil
}

// GetBidsForAuction returns all bids for an auction, newest first
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w", storeerrors.NewValidationError("auction_id", "missing auction id"))
	}

	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetBidsForBidder returns every bid the signed-in user placed, as the backend records them
func (s *BiddingService) GetBidsForBidder(ctx context.Context, st *store.Store) ([]models.Bid, error) {
	sess, ok := st.Session()
	if !ok {
		return nil, fmt.Errorf("service: bids for bidder: %w", storeerrors.ErrNotAuthenticated)
	}

	bids, err := s.repo.GetBidsByBidder(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", sess.ID, err)
	}
	return bids, nil
}

// MinimumNextBid is the lowest amount the next bid on an auction may carry
func (s *BiddingService) MinimumNextBid(ctx context.Context, auctionID string) (float64, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to read auction %s: %w", auctionID, err)
	}
	return a.EffectivePrice() + s.increment, nil
}

// Increment returns the configured minimum raise
func (s *BiddingService) Increment() float64 {
	return s.increment
}
