package store

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/storeerrors"
)

// PlaceBidLocally appends an accepted bid to the client's bid history.
// Bidder fields default to the signed-in user.
func (s *Store) PlaceBidLocally(bid models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return fmt.Errorf("store: place bid locally: %w", storeerrors.ErrNotAuthenticated)
	}
	if bid.BidderID == "" {
		bid.BidderID = s.session.ID
	}
	if bid.BidderName == "" {
		bid.BidderName = s.session.DisplayName
	}
	if bid.CreatedAt.IsZero() {
		bid.CreatedAt = s.opts.Now()
	}
	s.bids = append(s.bids, bid)
	s.persist(KeyBids)
	return nil
}

// RemoveBidLocally drops a withdrawn bid from the bid history and reports
// whether it was there
func (s *Store) RemoveBidLocally(bidID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bids {
		if b.BidID == bidID {
			s.bids = append(s.bids[:i:i], s.bids[i+1:]...)
			s.persist(KeyBids)
			return true
		}
	}
	return false
}

// Bids returns a copy of the bid history
func (s *Store) Bids() []models.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Bid{}, s.bids...)
}

// ToggleWatchlist flips membership of itemID and returns the new membership
func (s *Store) ToggleWatchlist(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.watchlist {
		if w.ItemID == itemID {
			s.watchlist = append(s.watchlist[:i:i], s.watchlist[i+1:]...)
			s.persist(KeyWatchlist)
			return false
		}
	}

	viewer := ""
	if s.session != nil {
		viewer = s.session.ID
	}
	s.watchlist = append(s.watchlist, models.WatchlistEntry{
		ViewerID: viewer,
		ItemID:   itemID,
		AddedAt:  s.opts.Now(),
	})
	s.persist(KeyWatchlist)
	return true
}

// IsInWatchlist reports membership of itemID
func (s *Store) IsInWatchlist(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.watchlist {
		if w.ItemID == itemID {
			return true
		}
	}
	return false
}

// Watchlist returns a copy of the watchlist
func (s *Store) Watchlist() []models.WatchlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WatchlistEntry{}, s.watchlist...)
}

// AddOrder appends to the order history. Orders are never updated or removed.
func (s *Store) AddOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.LineItems = append([]models.CartLine{}, order.LineItems...)
	s.orders = append(s.orders, order)
	s.persist(KeyOrders)
}

// Orders returns a copy of the order history
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order{}, s.orders...)
}

// SetMode switches the global browsing mode
func (s *Store) SetMode(mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("store: set mode: %w", storeerrors.NewValidationError("mode", fmt.Sprintf("unknown mode %q", mode)))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.persist(KeyMode)
	return nil
}

// Mode returns the current browsing mode
func (s *Store) Mode() models.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}
