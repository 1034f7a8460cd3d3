// Package store is the per-client state container: session, cart ledger,
// bid history, watchlist, order history and browsing mode. Every mutation
// is applied in memory first and then mirrored to a storage.KV so that a
// later Open over the same KV reproduces the same state.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/storage"
	"storefront/internal/storeerrors"
	"storefront/utils"
)

// Persisted keys, one per collection
const (
	KeyUser      = "user"
	KeyCart      = "cart"
	KeyBids      = "userBids"
	KeyWatchlist = "watchlist"
	KeyOrders    = "orders"
	KeyMode      = "currentMode"
)

// AllKeys lists every key a Store writes
var AllKeys = []string{KeyUser, KeyCart, KeyBids, KeyWatchlist, KeyOrders, KeyMode}

const (
	DefaultShippingFee    = 10.0
	DefaultTaxRate        = 0.08
	DefaultPersistTimeout = time.Second
	DefaultMode           = models.ModeAuction
)

// Options tunes pricing and persistence. Zero values take the defaults.
type Options struct {
	ShippingFee    float64
	TaxRate        float64
	PersistTimeout time.Duration
	Now            func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ShippingFee <= 0 {
		o.ShippingFee = DefaultShippingFee
	}
	if o.TaxRate <= 0 {
		o.TaxRate = DefaultTaxRate
	}
	if o.PersistTimeout <= 0 {
		o.PersistTimeout = DefaultPersistTimeout
	}
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC() }
	}
	return o
}

// State is a point-in-time copy of every collection
type State struct {
	Session   *models.Session         `json:"session"`
	Cart      []models.CartLine       `json:"cart"`
	Bids      []models.Bid            `json:"bids"`
	Watchlist []models.WatchlistEntry `json:"watchlist"`
	Orders    []models.Order          `json:"orders"`
	Mode      models.Mode             `json:"mode"`
}

// Store holds one client's state. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	kv   storage.KV
	opts Options

	session   *models.Session
	cart      []models.CartLine
	bids      []models.Bid
	watchlist []models.WatchlistEntry
	orders    []models.Order
	mode      models.Mode
}

// Open rehydrates a Store from kv. Each key is read independently; a missing,
// unreadable or malformed key leaves its collection empty and never fails Open.
func Open(ctx context.Context, kv storage.KV, opts Options) *Store {
	s := &Store{
		kv:        kv,
		opts:      opts.withDefaults(),
		cart:      []models.CartLine{},
		bids:      []models.Bid{},
		watchlist: []models.WatchlistEntry{},
		orders:    []models.Order{},
		mode:      DefaultMode,
	}
	s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	var session models.Session
	if s.load(ctx, KeyUser, &session) {
		if session.ID != "" {
			s.session = &session
		} else {
			s.reportCorrupt(KeyUser, errors.New("session without id"))
		}
	}

	var cart []models.CartLine
	if s.load(ctx, KeyCart, &cart) && cart != nil {
		for i := range cart {
			if cart[i].Quantity <= 0 {
				cart[i].Quantity = 1
			}
		}
		s.cart = cart
	}

	var bids []models.Bid
	if s.load(ctx, KeyBids, &bids) && bids != nil {
		s.bids = bids
	}

	var watchlist []models.WatchlistEntry
	if s.load(ctx, KeyWatchlist, &watchlist) && watchlist != nil {
		s.watchlist = watchlist
	}

	var orders []models.Order
	if s.load(ctx, KeyOrders, &orders) && orders != nil {
		s.orders = orders
	}

	// mode is stored as a bare string
	raw, ok, err := s.kv.Get(ctx, KeyMode)
	switch {
	case err != nil:
		s.reportUnreadable(KeyMode, err)
	case ok && models.Mode(raw).Valid():
		s.mode = models.Mode(raw)
	case ok:
		s.reportCorrupt(KeyMode, fmt.Errorf("unknown mode %q", raw))
	}
}

// load decodes key into dst and reports whether a usable value was found
func (s *Store) load(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.reportUnreadable(key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.reportCorrupt(key, err)
		return false
	}
	return true
}

func (s *Store) reportCorrupt(key string, cause error) {
	err := fmt.Errorf("store: key %s: %w: %v", key, storeerrors.ErrCorruptPersistedState, cause)
	utils.Warn("store: falling back to empty default", map[string]any{"key": key, "error": err.Error()})
}

func (s *Store) reportUnreadable(key string, cause error) {
	utils.Warn("store: persisted key unreadable, using default", map[string]any{"key": key, "error": cause.Error()})
}

// persist mirrors the named collections to kv. Callers hold s.mu so that
// writes reach kv in mutation order. Failures are logged and otherwise ignored.
func (s *Store) persist(keys ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.PersistTimeout)
	defer cancel()

	for _, key := range keys {
		if err := s.persistKey(ctx, key); err != nil {
			utils.Warn("store: persist failed", map[string]any{"key": key, "error": err.Error()})
		}
	}
}

func (s *Store) persistKey(ctx context.Context, key string) error {
	var value any
	switch key {
	case KeyUser:
		if s.session == nil {
			return s.kv.Delete(ctx, KeyUser)
		}
		value = s.session
	case KeyCart:
		value = s.cart
	case KeyBids:
		value = s.bids
	case KeyWatchlist:
		value = s.watchlist
	case KeyOrders:
		value = s.orders
	case KeyMode:
		return s.kv.Set(ctx, KeyMode, string(s.mode))
	default:
		return fmt.Errorf("unknown key %s", key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(data))
}

// Snapshot returns a copy of every collection
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Session:   s.sessionCopy(),
		Cart:      append([]models.CartLine{}, s.cart...),
		Bids:      append([]models.Bid{}, s.bids...),
		Watchlist: append([]models.WatchlistEntry{}, s.watchlist...),
		Orders:    append([]models.Order{}, s.orders...),
		Mode:      s.mode,
	}
}

// Reset empties every collection, restores the default mode and deletes
// every persisted key. Logout uses it, so logging out is destructive to all
// local state and not only to the session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.cart = []models.CartLine{}
	s.bids = []models.Bid{}
	s.watchlist = []models.WatchlistEntry{}
	s.orders = []models.Order{}
	s.mode = DefaultMode

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.PersistTimeout)
	defer cancel()
	if err := s.kv.Delete(ctx, AllKeys...); err != nil {
		utils.Warn("store: clearing persisted state failed", map[string]any{"error": err.Error()})
	}
}
