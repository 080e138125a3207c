package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedTokenKeyPrefix = "gymtrack||revoked-jti||"

// RevocationStore keeps signed-out token IDs until the tokens would expire anyway.
type RevocationStore struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRevocationStore(redisClient *redis.Client) *RevocationStore {
	return &RevocationStore{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now()).Truncate(time.Second)
	if ttl <= 0 {
		// expired tokens are rejected by verification
		return nil
	}
	if err := s.redisClient.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check token revoked: %w", err)
	}
	return n > 0, nil
}
