// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workspace

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "workspace:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestValkeyKVRoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	kv := NewValkeyKV(client, time.Minute)
	ctx := context.Background()

	if err := kv.Set(ctx, "workspace:test:draft", []byte(`{"context":"hi"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := kv.Get(ctx, "workspace:test:draft")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"context":"hi"}` {
		t.Errorf("Get: got %q", got)
	}
}

func TestValkeyKVMissingKey(t *testing.T) {
	client := testValkeyClient(t)
	kv := NewValkeyKV(client, time.Minute)

	_, err := kv.Get(context.Background(), "workspace:test:absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing key: got err %v, want ErrNotFound", err)
	}
}

func TestValkeyKVDelete(t *testing.T) {
	client := testValkeyClient(t)
	kv := NewValkeyKV(client, time.Minute)
	ctx := context.Background()

	if err := kv.Set(ctx, "workspace:test:theme", []byte(`{"theme":"light"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Delete(ctx, "workspace:test:theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := kv.Get(ctx, "workspace:test:theme"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: got err %v, want ErrNotFound", err)
	}
}

func TestStoreOverValkey(t *testing.T) {
	client := testValkeyClient(t)
	s := NewStore(NewValkeyKV(client, time.Minute), DefaultDailyLimit)
	ctx := context.Background()

	if err := s.SaveTheme(ctx, "integration", "light"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	theme, err := s.Theme(ctx, "integration")
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if theme != "light" {
		t.Errorf("Theme: got %q, want %q", theme, "light")
	}
}
