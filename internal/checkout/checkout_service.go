package checkout

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/storeerrors"
	"storefront/utils"

	"github.com/go-playground/validator/v10"
)

const (
	// StatusProcessing is the status of every order at creation
	StatusProcessing = "processing"
	// CardBrand is reported for every card; no payment gateway is involved
	CardBrand = "Visa"
)

// Service turns a client's cart into an order
type Service struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a checkout Service
func NewService() *Service {
	return &Service{
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock. It is meant for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit validates the form and records an order for the current cart. The
// order is appended to the order history and the cart is cleared. Nothing
// is charged.
func (s *Service) Submit(st *store.Store, form Form) (models.Order, error) {
	sess, ok := st.Session()
	if !ok {
		return models.Order{}, fmt.Errorf("checkout: %w", storeerrors.ErrNotAuthenticated)
	}

	if st.CartCount() == 0 {
		return models.Order{}, fmt.Errorf("checkout: %w", storeerrors.ErrEmptyCart)
	}

	form = normalize(form)
	if err := validate(s.validate, form); err != nil {
		return models.Order{}, fmt.Errorf("checkout: %w", err)
	}

	order, err := st.CheckoutCart(func(lines []models.CartLine, totals models.Totals) models.Order {
		return models.Order{
			ID:        utils.GeneratePrefixedID("ORD"),
			LineItems: lines,
			Totals:    totals,
			PaymentSummary: models.PaymentSummary{
				Type:  "card",
				Last4: last4(form.CardNumber),
				Brand: CardBrand,
			},
			ShippingAddress: models.Address{
				Street:  form.Street,
				City:    form.City,
				State:   form.State,
				ZipCode: form.ZipCode,
				Country: form.Country,
			},
			Status:    StatusProcessing,
			CreatedAt: s.now(),
		}
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("checkout: %w", err)
	}

	utils.Info("checkout: order placed", map[string]any{
		"order_id": order.ID, "user_id": sess.ID, "lines": len(order.LineItems), "grand_total": order.Totals.GrandTotal,
	})
	return order, nil
}

func normalize(f Form) Form {
	for _, field := range []*string{
		&f.FirstName, &f.LastName, &f.Email, &f.Phone,
		&f.Street, &f.City, &f.State, &f.ZipCode, &f.Country,
		&f.CardNumber, &f.ExpiryDate, &f.CVV, &f.CardholderName,
	} {
		*field = strings.TrimSpace(*field)
	}
	return f
}
