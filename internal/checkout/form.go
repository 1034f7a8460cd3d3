package checkout

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"storefront/internal/storeerrors"

	"github.com/go-playground/validator/v10"
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// Form is the checkout form: contact details, shipping address and card
type Form struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`

	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country"`

	CardNumber     string `json:"card_number" validate:"required,card"`
	ExpiryDate     string `json:"expiry_date" validate:"required,expiry"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	CardholderName string `json:"cardholder_name" validate:"required"`
}

// FieldErrors lists every invalid form field
type FieldErrors []*storeerrors.ValidationError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() []error {
	out := make([]error, 0, len(e))
	for _, fe := range e {
		out = append(out, fe)
	}
	return out
}

var reasons = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"phone":    "must contain at least 10 digits",
	"card":     "must be a 16-digit card number",
	"expiry":   "must be in MM/YY format",
	"numeric":  "must contain digits only",
	"min":      "must be 3 or 4 digits",
	"max":      "must be 3 or 4 digits",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	// phone numbers may carry separators; only the digits count
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return len(nonDigits.ReplaceAllString(fl.Field().String(), "")) >= 10
	})
	_ = v.RegisterValidation("card", func(fl validator.FieldLevel) bool {
		digits := strings.ReplaceAll(fl.Field().String(), " ", "")
		return len(digits) == 16 && !nonDigits.MatchString(digits)
	})
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// validate runs the form rules and converts failures to FieldErrors
func validate(v *validator.Validate, f Form) error {
	err := v.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		reason, ok := reasons[fe.Tag()]
		if !ok {
			reason = "is invalid"
		}
		out = append(out, &storeerrors.ValidationError{Field: fe.Field(), Reason: reason})
	}
	return out
}

// last4 returns the last four digits of a card number
func last4(cardNumber string) string {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
