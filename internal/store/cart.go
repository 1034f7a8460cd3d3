package store

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/storeerrors"
)

// AddToCart adds a marketplace item. Items without an original price are
// auction items and are ignored. Adding an item already in the cart bumps
// its quantity. Reports whether the cart changed.
func (s *Store) AddToCart(item models.CartItem) bool {
	if item.OriginalPrice == nil || item.ID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.cartIndex(item.ID); i >= 0 {
		s.cart[i].Quantity++
	} else {
		s.cart = append(s.cart, models.CartLine{
			ID:           item.ID,
			Title:        item.Title,
			UnitPrice:    *item.OriginalPrice,
			ShippingCost: item.ShippingCost,
			ImageRef:     item.ImageRef,
			Quantity:     1,
		})
	}
	s.persist(KeyCart)
	return true
}

// RemoveFromCart drops the line with the given id
func (s *Store) RemoveFromCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(id)
}

func (s *Store) removeLocked(id string) bool {
	i := s.cartIndex(id)
	if i < 0 {
		return false
	}
	s.cart = append(s.cart[:i:i], s.cart[i+1:]...)
	s.persist(KeyCart)
	return true
}

// UpdateQuantity sets a line's quantity; qty <= 0 removes the line
func (s *Store) UpdateQuantity(id string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		return s.removeLocked(id)
	}
	i := s.cartIndex(id)
	if i < 0 {
		return false
	}
	s.cart[i].Quantity = qty
	s.persist(KeyCart)
	return true
}

// ClearCart empties the ledger
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []models.CartLine{}
	s.persist(KeyCart)
}

// Cart returns a copy of the cart lines
func (s *Store) Cart() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartLine{}, s.cart...)
}

// CartCount is the number of units in the cart
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked()
}

func (s *Store) countLocked() int {
	n := 0
	for _, l := range s.cart {
		n += l.Quantity
	}
	return n
}

// CartView is the cart lines with the count and totals derived from them
type CartView struct {
	Lines  []models.CartLine
	Count  int
	Totals models.Totals
}

// CartView returns lines, count and totals read under one lock
func (s *Store) CartView() CartView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CartView{
		Lines:  append([]models.CartLine{}, s.cart...),
		Count:  s.countLocked(),
		Totals: s.totalsLocked(),
	}
}

// CheckoutCart turns the cart into an order in one step: build receives the
// current lines and their totals, the order it returns is appended to the
// order history and the cart is cleared. Lines added concurrently either
// land in the order or stay in the cart. An empty cart returns ErrEmptyCart
// without calling build.
func (s *Store) CheckoutCart(build func(lines []models.CartLine, totals models.Totals) models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return models.Order{}, fmt.Errorf("store: checkout: %w", storeerrors.ErrEmptyCart)
	}

	order := build(append([]models.CartLine{}, s.cart...), s.totalsLocked())
	order.LineItems = append([]models.CartLine{}, order.LineItems...)
	s.orders = append(s.orders, order)
	s.cart = []models.CartLine{}
	s.persist(KeyOrders, KeyCart)
	return order, nil
}

// Total is the subtotal: unit price times quantity over every line
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalsLocked().Subtotal
}

// Shipping is the flat fee per line
func (s *Store) Shipping() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalsLocked().Shipping
}

// Tax is the fixed rate applied to the subtotal
func (s *Store) Tax() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalsLocked().Tax
}

// GrandTotal is subtotal + shipping + tax
func (s *Store) GrandTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalsLocked().GrandTotal
}

// Totals computes every figure from one consistent view of the cart.
// Nothing here is cached; totals are always derived from the lines.
func (s *Store) Totals() models.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalsLocked()
}

func (s *Store) totalsLocked() models.Totals {
	var subtotal float64
	for _, l := range s.cart {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}
	shipping := float64(len(s.cart)) * s.opts.ShippingFee
	tax := subtotal * s.opts.TaxRate
	return models.Totals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal + shipping + tax,
	}
}

func (s *Store) cartIndex(id string) int {
	for i, l := range s.cart {
		if l.ID == id {
			return i
		}
	}
	return -1
}
