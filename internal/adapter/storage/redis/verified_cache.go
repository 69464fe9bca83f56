package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// VerifiedCache implements ports.VerifiedFlagCache. It caches only the
// positive outcome: the KYC flag is monotonic, so a cached "verified"
// can never go stale. Unverified wallets are simply absent.
type VerifiedCache struct {
	client *goredis.Client
	prefix string
}

// NewVerifiedCache creates a Redis-backed verified-flag cache.
func NewVerifiedCache(client *goredis.Client) *VerifiedCache {
	return &VerifiedCache{
		client: client,
		prefix: "kyc:verified:",
	}
}

// IsVerified reports whether the wallet has a cached verified flag.
func (c *VerifiedCache) IsVerified(ctx context.Context, walletAddress string) (bool, error) {
	err := c.client.Get(ctx, c.prefix+walletAddress).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis verified-flag get: %w", err)
	}
	return true, nil
}

// SetVerified records the wallet as verified. No TTL: the flag never
// flips back in this flow.
func (c *VerifiedCache) SetVerified(ctx context.Context, walletAddress string) error {
	if err := c.client.Set(ctx, c.prefix+walletAddress, "1", 0).Err(); err != nil {
		return fmt.Errorf("redis verified-flag set: %w", err)
	}
	return nil
}
