package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/store"
	"storefront/internal/storeerrors"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// ClientIDHeader identifies the client whose persisted store a request uses
const ClientIDHeader = "X-Client-ID"

const storeKey = "storefront.store"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload", nil)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, storeerrors.ErrAuthUnavailable):
		return http.StatusServiceUnavailable, "auth service unavailable, try again"
	case errors.Is(err, storeerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "sign in required"
	case errors.Is(err, storeerrors.ErrAuth):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, storeerrors.ErrBidTooLow):
		return http.StatusUnprocessableEntity, "bid amount too low"
	case errors.Is(err, storeerrors.ErrEmptyCart):
		return http.StatusUnprocessableEntity, "cart is empty"
	case errors.Is(err, storeerrors.ErrValidation):
		return http.StatusUnprocessableEntity, "invalid input"
	case errors.Is(err, storeerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, storeerrors.ErrConflict):
		return http.StatusConflict, "someone else bid first"
	case errors.Is(err, storeerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, storeerrors.ErrAuctionNotOpen):
		return http.StatusConflict, "auction has not started yet"
	case errors.Is(err, storeerrors.ErrProfileWrite):
		return http.StatusServiceUnavailable, "account could not be created, try again"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorDetails extracts the machine readable part of an error, if any
func ErrorDetails(err error) any {
	var conflict *storeerrors.ConflictError
	if errors.As(err, &conflict) {
		return gin.H{"auction_id": conflict.AuctionID, "current_price": conflict.CurrentPrice}
	}
	var fields checkout.FieldErrors
	if errors.As(err, &fields) {
		out := make([]gin.H, 0, len(fields))
		for _, f := range fields {
			out = append(out, gin.H{"field": f.Field, "reason": f.Reason})
		}
		return out
	}
	var invalid *storeerrors.ValidationError
	if errors.As(err, &invalid) {
		return gin.H{"field": invalid.Field, "reason": invalid.Reason}
	}
	return nil
}

// RespondError writes the mapped error envelope and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message, ErrorDetails(err))

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// SetStore attaches the client's store to the request
func SetStore(c *gin.Context, st *store.Store) {
	c.Set(storeKey, st)
}

// CurrentStore returns the client's store attached by the client middleware
func CurrentStore(c *gin.Context) (*store.Store, bool) {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil, false
	}
	st, ok := v.(*store.Store)
	return st, ok
}

// MustStore returns the client's store or writes a 400 and returns false
func MustStore(c *gin.Context, handlerName string) (*store.Store, bool) {
	st, ok := CurrentStore(c)
	if !ok {
		err := storeerrors.NewValidationError("client_id", "missing "+ClientIDHeader+" header")
		utils.JSONError(c, http.StatusBadRequest, err, "missing client id", nil)
		utils.Warn(handlerName+": no client store", map[string]any{"path": c.Request.URL.Path})
		return nil, false
	}
	return st, true
}
