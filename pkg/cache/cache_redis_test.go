package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRedisCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	c, err := NewCache(server.Addr(), true)
	if err != nil {
		t.Fatalf("failed to connect to in-process redis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, server
}

func TestNavbarRoundTrip(t *testing.T) {
	c, server := newRedisCache(t)
	ctx := context.Background()
	key := NavbarKey("abc", true, "/posts")

	if _, err := c.GetCachedNavbar(ctx, key); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss before store, got %v", err)
	}

	if err := c.CacheNavbar(ctx, key, `<aside class="navbar"></aside>`, time.Minute); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	html, err := c.GetCachedNavbar(ctx, key)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if html != `<aside class="navbar"></aside>` {
		t.Fatalf("unexpected cached html %q", html)
	}
	if ttl := server.TTL(key); ttl != time.Minute {
		t.Fatalf("expected ttl of one minute, got %s", ttl)
	}

	server.FastForward(2 * time.Minute)
	if _, err := c.GetCachedNavbar(ctx, key); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected expired entry to miss, got %v", err)
	}
}

func TestInvalidateNavbarKeepsOtherKeys(t *testing.T) {
	c, server := newRedisCache(t)
	ctx := context.Background()

	for _, key := range []string{NavbarKey("old", true, "/"), NavbarKey("new", false, "")} {
		if err := c.CacheNavbar(ctx, key, "<aside></aside>", time.Minute); err != nil {
			t.Fatalf("store failed: %v", err)
		}
	}
	if err := server.Set("session:1", "keep"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := c.InvalidateNavbar(ctx); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	keys := server.Keys()
	if len(keys) != 1 || keys[0] != "session:1" {
		t.Fatalf("expected only the unrelated key to survive, got %v", keys)
	}
}

func TestDeleteRemovesSingleKey(t *testing.T) {
	c, server := newRedisCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "a", 1, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := c.Set(ctx, "b", 2, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if server.Exists("a") || !server.Exists("b") {
		t.Fatalf("expected only a to be deleted, keys: %v", server.Keys())
	}
}

func TestNewCacheUnreachable(t *testing.T) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start redis: %v", err)
	}
	addr := server.Addr()
	server.Close()

	if _, err := NewCache(addr, true); err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
}
