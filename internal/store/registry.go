package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"storefront/internal/storage"
	"storefront/internal/storeerrors"
)

// Registry opens one Store per client id, each over its own key namespace
type Registry struct {
	mu     sync.Mutex
	kv     storage.KV
	opts   Options
	stores map[string]*Store
}

// NewRegistry creates a Registry over a shared KV
func NewRegistry(kv storage.KV, opts Options) *Registry {
	return &Registry{
		kv:     kv,
		opts:   opts,
		stores: make(map[string]*Store),
	}
}

// Get returns the client's Store, rehydrating it on first use
func (r *Registry) Get(ctx context.Context, clientID string) (*Store, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, fmt.Errorf("registry: %w", storeerrors.NewValidationError("client_id", "missing client id"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[clientID]; ok {
		return s, nil
	}
	s := Open(ctx, storage.Prefixed(r.kv, namespace(clientID)), r.opts)
	r.stores[clientID] = s
	return s, nil
}

// Forget drops the in-memory Store of a client. Its persisted keys stay, so
// the next Get rehydrates from them.
func (r *Registry) Forget(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, clientID)
}

func namespace(clientID string) string {
	return "storefront:" + clientID + ":"
}
