package savedcart

//go:generate mockgen -source=saved_cart_service.go -destination=mock_saved_cart.go -package=savedcart

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/store"
	"storefront/internal/storeerrors"
	"storefront/utils"
)

// ProfileReader resolves an auth user to its user_profile row
type ProfileReader interface {
	GetProfileByUID(ctx context.Context, uid string) (models.Profile, error)
}

// Service mirrors the cart of a signed-in client into the backend cart
// table, keyed by the user's profile
type Service struct {
	carts    repository.CartDB
	profiles ProfileReader
}

// NewService creates a saved cart Service
func NewService(carts repository.CartDB, profiles ProfileReader) *Service {
	return &Service{carts: carts, profiles: profiles}
}

func (s *Service) profileOf(ctx context.Context, st *store.Store, op string) (models.Profile, error) {
	sess, ok := st.Session()
	if !ok {
		return models.Profile{}, fmt.Errorf("saved cart: %s: %w", op, storeerrors.ErrNotAuthenticated)
	}
	p, err := s.profiles.GetProfileByUID(ctx, sess.ID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("saved cart: %s: profile of %s: %w", op, sess.ID, err)
	}
	return p, nil
}

// Save adds quantity units of a product to the caller's saved cart.
// Anonymous clients have nothing to save and get ErrNotAuthenticated.
func (s *Service) Save(ctx context.Context, st *store.Store, productID string, quantity int) error {
	if strings.TrimSpace(productID) == "" {
		return fmt.Errorf("saved cart: %w", storeerrors.NewValidationError("product_id", "missing product id"))
	}
	p, err := s.profileOf(ctx, st, "save")
	if err != nil {
		return err
	}
	if err := s.carts.AddCartItem(ctx, p.ProfileID, productID, quantity); err != nil {
		return fmt.Errorf("saved cart: save: %w", err)
	}

	utils.Debug("saved cart: item saved", map[string]any{"profile_id": p.ProfileID, "product_id": productID, "quantity": quantity})
	return nil
}

// Lines returns the caller's saved cart rows
func (s *Service) Lines(ctx context.Context, st *store.Store) ([]models.SavedCartLine, error) {
	p, err := s.profileOf(ctx, st, "list")
	if err != nil {
		return nil, err
	}
	lines, err := s.carts.ListCart(ctx, p.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("saved cart: list: %w", err)
	}
	return lines, nil
}
