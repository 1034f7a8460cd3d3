package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupRedisKV(t *testing.T) (*RedisKV, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisKV(client), mr
}

func TestKV_Implementations(t *testing.T) {
	redisKV, _ := setupRedisKV(t)

	impls := map[string]KV{
		"memory":   NewMemoryKV(),
		"redis":    redisKV,
		"prefixed": Prefixed(NewMemoryKV(), "client-1:"),
	}

	for name, kv := range impls {
		kv := kv
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := kv.Get(ctx, "cart")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, kv.Set(ctx, "cart", `[]`))
			require.NoError(t, kv.Set(ctx, "currentMode", "auction"))

			v, ok, err := kv.Get(ctx, "cart")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `[]`, v)

			require.NoError(t, kv.Delete(ctx, "cart", "currentMode", "missing"))
			_, ok, err = kv.Get(ctx, "currentMode")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, kv.Delete(ctx))
		})
	}
}

func TestPrefixed_IsolatesClients(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryKV()
	a := Prefixed(base, "a:")
	b := Prefixed(base, "b:")

	require.NoError(t, a.Set(ctx, "cart", "A"))
	require.NoError(t, b.Set(ctx, "cart", "B"))
	require.Equal(t, 2, base.Len())

	require.NoError(t, a.Delete(ctx, "cart"))

	_, ok, _ := a.Get(ctx, "cart")
	require.False(t, ok)
	v, ok, _ := b.Get(ctx, "cart")
	require.True(t, ok)
	require.Equal(t, "B", v)
}

func TestRedisKV_StoresRawKeys(t *testing.T) {
	kv, mr := setupRedisKV(t)
	ctx := context.Background()

	require.NoError(t, Prefixed(kv, "storefront:c1:").Set(ctx, "watchlist", `[]`))

	got, err := mr.Get("storefront:c1:watchlist")
	require.NoError(t, err)
	require.Equal(t, `[]`, got)
}

func TestRedisKV_ServerDown(t *testing.T) {
	kv, mr := setupRedisKV(t)
	mr.Close()

	_, _, err := kv.Get(context.Background(), "cart")
	require.Error(t, err)
}
