package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/auth"
	bidding "storefront/internal/biddingService"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/repository"
	"storefront/internal/savedcart"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/services/storefront/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv is a fully wired storefront over in-memory backends
type testEnv struct {
	router *gin.Engine
	repo   *repository.MemoryRepo
	kv     *storage.MemoryKV
	stores *store.Registry
	auth   *auth.MemoryService
}

// SetupTestRouter initializes the router over a seeded in-memory backend for integration testing.
func SetupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	repository.SeedDemo(repo, time.Now().UTC())

	kv := storage.NewMemoryKV()
	registry := store.NewRegistry(kv, store.Options{})
	authSvc := auth.NewMemoryService("integration-secret", time.Hour, bcrypt.MinCost)

	router := server.SetupRouter(server.Services{
		Stores:         registry,
		Sessions:       session.NewManager(authSvc, repo),
		Bidding:        bidding.NewBiddingService(repo, bidding.DefaultIncrement),
		Catalog:        catalog.NewService(repo, repo),
		Checkout:       checkout.NewService(),
		SavedCarts:     savedcart.NewService(repo, repo),
		RequestTimeout: 5 * time.Second,
	})
	return &testEnv{router: router, repo: repo, kv: kv, stores: registry, auth: authSvc}
}

// ExecuteRequest executes an HTTP request as clientID and parses the response envelope
func (e *testEnv) ExecuteRequest(t *testing.T, method, url, clientID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set(helpers.ClientIDHeader, clientID)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp, w
}

// SignUpAndLogin registers an account and signs clientID in with it
func (e *testEnv) SignUpAndLogin(t *testing.T, clientID, name, email string) {
	t.Helper()

	_, w := e.ExecuteRequest(t, "POST", "/auth/register", "", helpers.RegisterRequest{Name: name, Email: email, Password: "secret123"})
	require.Equal(t, 201, w.Code, w.Body.String())

	_, w = e.ExecuteRequest(t, "POST", "/auth/login", clientID, helpers.LoginRequest{Email: email, Password: "secret123"})
	require.Equal(t, 200, w.Code, w.Body.String())
}

func dataMap(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "data should be an object")
	return data
}

func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "data should be a list")
	return data
}
