// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return client, nil
}

// DefaultTTL is how long an untouched workspace survives in Valkey.
// Every write refreshes it, so active users never lose state.
const DefaultTTL = 90 * 24 * time.Hour

// ValkeyKV stores workspace records in Valkey (Redis-compatible).
type ValkeyKV struct {
	client *redis.Client
	ttl    time.Duration
}

// NewValkeyKV creates a Valkey-backed KV. A zero ttl applies DefaultTTL.
func NewValkeyKV(client *redis.Client, ttl time.Duration) *ValkeyKV {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ValkeyKV{client: client, ttl: ttl}
}

func (v *ValkeyKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := v.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("valkey get %s: %w", key, err)
	}
	return val, nil
}

func (v *ValkeyKV) Set(ctx context.Context, key string, value []byte) error {
	if err := v.client.Set(ctx, key, value, v.ttl).Err(); err != nil {
		return fmt.Errorf("valkey set %s: %w", key, err)
	}
	return nil
}

func (v *ValkeyKV) Delete(ctx context.Context, key string) error {
	if err := v.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("valkey delete %s: %w", key, err)
	}
	return nil
}
