package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client, ttl), mr
}

func TestIdempotencyStore_RememberThenLookup(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if _, found, err := store.Lookup(ctx, "1", "k"); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	if err := store.Remember(ctx, "1", "k", "swap-a"); err != nil {
		t.Fatalf("remember: %v", err)
	}
	id, found, err := store.Lookup(ctx, "1", "k")
	if err != nil || !found || id != "swap-a" {
		t.Fatalf("expected swap-a, got %q found=%v err=%v", id, found, err)
	}

	// keys are scoped per actor
	if _, found, _ := store.Lookup(ctx, "2", "k"); found {
		t.Fatal("key leaked across actors")
	}
}

func TestIdempotencyStore_ReserveIsExclusive(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	won, err := store.Reserve(ctx, "1", "k")
	if err != nil || !won {
		t.Fatalf("first reserve: won=%v err=%v", won, err)
	}
	if won, _ := store.Reserve(ctx, "1", "k"); won {
		t.Fatal("second reserve must lose")
	}

	// reserved but unfinished: found, no id yet
	id, found, err := store.Lookup(ctx, "1", "k")
	if err != nil || !found || id != "" {
		t.Fatalf("expected pending reservation, got %q found=%v err=%v", id, found, err)
	}

	if err := store.Remember(ctx, "1", "k", "swap-a"); err != nil {
		t.Fatalf("remember: %v", err)
	}
	if id, _, _ := store.Lookup(ctx, "1", "k"); id != "swap-a" {
		t.Fatalf("expected swap-a, got %q", id)
	}
}

func TestIdempotencyStore_ConcurrentReserve(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if won, err := store.Reserve(ctx, "1", "k"); err == nil && won {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("expected exactly one reservation, got %d", wins)
	}
}

func TestIdempotencyStore_Release(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	_, _ = store.Reserve(ctx, "1", "k")
	if err := store.Release(ctx, "1", "k"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, found, _ := store.Lookup(ctx, "1", "k"); found {
		t.Fatal("expected key to be gone")
	}
	if won, _ := store.Reserve(ctx, "1", "k"); !won {
		t.Fatal("expected key to be reusable after release")
	}
}

func TestIdempotencyStore_Expires(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	_, _ = store.Reserve(ctx, "1", "k")
	_ = store.Remember(ctx, "1", "k", "swap-a")
	if ttl := mr.TTL("swap:idem:1:k"); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, found, _ := store.Lookup(ctx, "1", "k"); found {
		t.Fatal("expected key to expire")
	}
}

func TestIdempotencyStore_LookupError(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	mr.Close()

	if _, _, err := store.Lookup(context.Background(), "1", "k"); err == nil {
		t.Fatal("expected error with redis down")
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), Timeout: time.Second})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_ = client.Close()

	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without an address")
	}
}
