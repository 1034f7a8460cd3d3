package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/storeerrors"
	"storefront/services/storefront/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// StoreProvider hands out the persisted store of a client
type StoreProvider interface {
	Get(ctx context.Context, clientID string) (*store.Store, error)
}

// SessionVerifier checks a client's session against the auth service
type SessionVerifier interface {
	Verify(ctx context.Context, st *store.Store) (models.Session, error)
}

// VerifiedSessionMiddleware re-checks the access token of a signed-in client
// before the handler runs. A rejected token has already ended the session, so
// the handler sees an anonymous client. When the auth service is unreachable
// a strict route answers 503; other routes go on with the stored session.
func VerifiedSessionMiddleware(verifier SessionVerifier, strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, ok := helpers.CurrentStore(c)
		if !ok || !st.IsAuthenticated() {
			c.Next()
			return
		}

		_, err := verifier.Verify(c.Request.Context(), st)
		switch {
		case err == nil, errors.Is(err, storeerrors.ErrNotAuthenticated):
		case strict:
			helpers.RespondError(c, "VerifiedSessionMiddleware", err, nil)
			c.Abort()
			return
		default:
			utils.Warn("VerifiedSessionMiddleware: session not verified", map[string]any{"error": err.Error()})
		}
		c.Next()
	}
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"status":    c.Writer.Status(),
		"latency":   time.Since(start).String(),
		"client_id": c.GetHeader(helpers.ClientIDHeader),
	})
}

// RequestTimeoutMiddleware bounds the context of every request so that a
// stalled backend call fails instead of hanging the client
func RequestTimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// ClientStoreMiddleware attaches the store named by the X-Client-ID header.
// When required is false a request without the header passes through
// without a store.
func ClientStoreMiddleware(provider StoreProvider, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := strings.TrimSpace(c.GetHeader(helpers.ClientIDHeader))
		if clientID == "" {
			if required {
				helpers.MustStore(c, "ClientStoreMiddleware")
				return
			}
			c.Next()
			return
		}

		st, err := provider.Get(c.Request.Context(), clientID)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err, "invalid client id", nil)
			utils.Warn("ClientStoreMiddleware: store unavailable", map[string]any{"client_id": clientID, "error": err.Error()})
			return
		}
		helpers.SetStore(c, st)
		c.Next()
	}
}
