package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"edufund.backend/internal/domain/entities"
	"github.com/redis/go-redis/v9"
)

const (
	identityKeyPrefix = "idcache:"
	// DefaultIdentityTTL bounds how stale a cached verification may be.
	DefaultIdentityTTL = 60 * time.Second
)

// IdentityCache caches verified external identities keyed by a token hash,
// so repeated requests within the TTL skip the identity-provider round trip.
// Only the provider's identity payload is cached, never local user rows:
// the local sync still runs on every request.
type IdentityCache struct {
	ttl time.Duration
}

// NewIdentityCache creates a new identity cache
func NewIdentityCache(ttl time.Duration) *IdentityCache {
	if ttl <= 0 {
		ttl = DefaultIdentityTTL
	}
	return &IdentityCache{ttl: ttl}
}

// Get returns the cached identity for a token, or (nil, nil) on a miss.
func (c *IdentityCache) Get(ctx context.Context, token string) (*entities.ExternalIdentity, error) {
	if client == nil {
		return nil, nil
	}

	data, err := client.Get(ctx, identityKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var identity entities.ExternalIdentity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Set stores a verified identity under the token's hash.
func (c *IdentityCache) Set(ctx context.Context, token string, identity *entities.ExternalIdentity) error {
	if client == nil {
		return nil
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return client.Set(ctx, identityKey(token), data, c.ttl).Err()
}

// Raw tokens never touch redis; only their hash does.
func identityKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return identityKeyPrefix + hex.EncodeToString(sum[:])
}
