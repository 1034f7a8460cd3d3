package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/models"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/services/storefront/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore(signedIn bool) *store.Store {
	st := store.Open(context.Background(), storage.NewMemoryKV(), store.Options{})
	if signedIn {
		st.SetSession(&models.Session{ID: "user1", Email: "user1@example.com", DisplayName: "User One", Token: "tok"})
	}
	return st
}

// withStore attaches st to every request, standing in for the client id middleware
func withStore(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st != nil {
			helpers.SetStore(c, st)
		}
		c.Next()
	}
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, w.Code, resp.Status)
	return w.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
