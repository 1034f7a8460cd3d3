// Package storage provides the string key-value stores that back a client's
// persisted state.
package storage

import "context"

// KV is a string key-value store. A missing key is reported with ok == false
// and a nil error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type prefixed struct {
	kv     KV
	prefix string
}

// Prefixed scopes every key of kv under prefix
func Prefixed(kv KV, prefix string) KV {
	return &prefixed{kv: kv, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.kv.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.kv.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = p.prefix + k
	}
	return p.kv.Delete(ctx, full...)
}
