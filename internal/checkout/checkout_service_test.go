package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/storeerrors"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func validForm() Form {
	return Form{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		Phone:          "(555) 123-4567",
		Street:         "1 Analytical Way",
		City:           "London",
		State:          "LDN",
		ZipCode:        "N1 9GU",
		Country:        "UK",
		CardNumber:     "4242 4242 4242 1234",
		ExpiryDate:     "09/29",
		CVV:            "123",
		CardholderName: "Ada Lovelace",
	}
}

func storeWithCart(t *testing.T, signedIn bool, prices ...float64) *store.Store {
	t.Helper()
	st := store.Open(context.Background(), storage.NewMemoryKV(), store.Options{})
	if signedIn {
		st.SetSession(&models.Session{ID: "user1", Email: "ada@example.com", DisplayName: "Ada"})
	}
	for i, p := range prices {
		price := p
		require.True(t, st.AddToCart(models.CartItem{ID: string(rune('a' + i)), Title: "item", OriginalPrice: &price}))
	}
	return st
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	st := storeWithCart(t, true, 50, 25)
	require.True(t, st.UpdateQuantity("b", 2))
	totals := st.Totals()

	order, err := NewService().WithClock(func() time.Time { return fixedNow }).Submit(st, validForm())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(order.ID, "ORD-"))
	require.Equal(t, StatusProcessing, order.Status)
	require.Equal(t, fixedNow, order.CreatedAt)
	require.Len(t, order.LineItems, 2)
	require.Equal(t, totals, order.Totals)
	require.InDelta(t, 100.0, order.Totals.Subtotal, 1e-9)
	require.Equal(t, models.PaymentSummary{Type: "card", Last4: "1234", Brand: CardBrand}, order.PaymentSummary)
	require.Equal(t, "London", order.ShippingAddress.City)

	require.Empty(t, st.Cart())
	orders := st.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}

func TestService_SubmitRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		signedIn      bool
		prices        []float64
		mutate        func(f *Form)
		expectedError error
		field         string
	}{
		{name: "not_signed_in", prices: []float64{10}, expectedError: storeerrors.ErrNotAuthenticated},
		{name: "empty_cart", signedIn: true, expectedError: storeerrors.ErrEmptyCart},
		{name: "missing_first_name", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.FirstName = "  " }, expectedError: storeerrors.ErrValidation, field: "first_name"},
		{name: "missing_zip", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.ZipCode = "" }, expectedError: storeerrors.ErrValidation, field: "zip_code"},
		{name: "bad_email", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.Email = "ada.example.com" }, expectedError: storeerrors.ErrValidation, field: "email"},
		{name: "short_phone", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.Phone = "555-1234" }, expectedError: storeerrors.ErrValidation, field: "phone"},
		{name: "card_15_digits", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.CardNumber = "4242 4242 4242 123" }, expectedError: storeerrors.ErrValidation, field: "card_number"},
		{name: "card_letters", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.CardNumber = "4242 4242 4242 12ab" }, expectedError: storeerrors.ErrValidation, field: "card_number"},
		{name: "cvv_too_short", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.CVV = "12" }, expectedError: storeerrors.ErrValidation, field: "cvv"},
		{name: "cvv_too_long", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.CVV = "12345" }, expectedError: storeerrors.ErrValidation, field: "cvv"},
		{name: "expiry_month_13", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.ExpiryDate = "13/29" }, expectedError: storeerrors.ErrValidation, field: "expiry_date"},
		{name: "expiry_long_year", signedIn: true, prices: []float64{10}, mutate: func(f *Form) { f.ExpiryDate = "09/2029" }, expectedError: storeerrors.ErrValidation, field: "expiry_date"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := storeWithCart(t, tc.signedIn, tc.prices...)
			form := validForm()
			if tc.mutate != nil {
				tc.mutate(&form)
			}

			_, err := NewService().Submit(st, form)
			require.ErrorIs(t, err, tc.expectedError)
			require.Empty(t, st.Orders())
			require.Len(t, st.Cart(), len(tc.prices))

			if tc.field != "" {
				var fields FieldErrors
				require.True(t, errors.As(err, &fields))
				require.Len(t, fields, 1)
				require.Equal(t, tc.field, fields[0].Field)
			}
		})
	}
}

func TestService_SubmitReportsEveryField(t *testing.T) {
	t.Parallel()

	st := storeWithCart(t, true, 10)
	_, err := NewService().Submit(st, Form{Country: "UK"})

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Len(t, fields, 12)
	require.ErrorIs(t, err, storeerrors.ErrValidation)
}

func TestLast4(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1234", last4("4242 4242 4242 1234"))
	require.Equal(t, "12", last4("12"))
}

func TestService_SubmitTwiceAtOnceCreatesOneOrder(t *testing.T) {
	t.Parallel()

	st := storeWithCart(t, true, 50, 25, 10)
	totals := st.Totals()
	svc := NewService()

	const callers = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		placed []models.Order
		empty  int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := svc.Submit(st, validForm())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				placed = append(placed, order)
			case errors.Is(err, storeerrors.ErrEmptyCart):
				empty++
			}
		}()
	}
	wg.Wait()

	require.Len(t, placed, 1)
	require.Equal(t, callers-1, empty)
	require.Len(t, placed[0].LineItems, 3)
	require.Equal(t, totals, placed[0].Totals)
	require.Empty(t, st.Cart())
	require.Len(t, st.Orders(), 1)
}

func TestService_SubmitWhileCartChanges(t *testing.T) {
	t.Parallel()

	st := storeWithCart(t, true)
	svc := NewService()
	const items = 100

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < items; i++ {
			price := float64(i + 1)
			st.AddToCart(models.CartItem{ID: string(rune('A' + i)), Title: "item", OriginalPrice: &price})
		}
	}()

	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			if _, err := svc.Submit(st, validForm()); err != nil {
				require.ErrorIs(t, err, storeerrors.ErrEmptyCart)
			}
		}
	}

	lines := len(st.Cart())
	for _, order := range st.Orders() {
		subtotal := 0.0
		for _, l := range order.LineItems {
			subtotal += l.UnitPrice * float64(l.Quantity)
		}
		require.Equal(t, subtotal, order.Totals.Subtotal)
		lines += len(order.LineItems)
	}
	require.Equal(t, items, lines)
}
