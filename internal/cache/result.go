// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// result.go provides a Valkey-backed cache of remote enhancement results.
// When the AI provider returns an enhanced prompt for a given input, the
// text is stored in Valkey so a repeat request for the same idea skips the
// LLM round-trip entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// resultKeyPrefix is the Valkey key prefix for cached enhancements.
	resultKeyPrefix = "enhance:"

	// DefaultResultTTL is how long an enhancement stays cached.
	DefaultResultTTL = 1 * time.Hour
)

// ResultCache manages caching of remote enhancement results in Valkey.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache backed by the given Valkey client.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl == 0 {
		ttl = DefaultResultTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

// resultKey hashes the prompt type and input into a fixed-size key. Inputs
// can be up to 10k characters, so they are never embedded in the key itself.
func resultKey(promptType, input string) string {
	sum := sha256.Sum256([]byte(promptType + "\x00" + input))
	return resultKeyPrefix + hex.EncodeToString(sum[:])
}

// Get retrieves a cached enhancement. Returns false on miss.
func (rc *ResultCache) Get(ctx context.Context, promptType, input string) (string, bool) {
	val, err := rc.client.Get(ctx, resultKey(promptType, input)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("result cache get error", "error", err)
		return "", false
	}
	slog.Debug("result cache hit", "prompt_type", promptType)
	return val, true
}

// Set stores an enhancement with the configured TTL.
func (rc *ResultCache) Set(ctx context.Context, promptType, input, enhanced string) {
	if err := rc.client.Set(ctx, resultKey(promptType, input), enhanced, rc.ttl).Err(); err != nil {
		slog.Warn("result cache set error", "error", err)
	}
}
