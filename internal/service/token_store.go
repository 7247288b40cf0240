package service

import (
	"context"
	"fmt"
	"time"

	"hospital-management-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefixes for the token allow-list
const (
	accessTokenKeyPrefix  = "access_token"
	refreshTokenKeyPrefix = "refresh_token"
)

// TokenStore is a Redis-backed allow-list of issued token IDs. A token that
// is not present in the store is treated as revoked, so logout takes effect
// immediately regardless of the JWT expiry.
type TokenStore interface {
	Store(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	Exists(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType) (bool, error)
	Delete(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType) error
	RevokeAll(ctx context.Context, userID string) error
}

type redisTokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewTokenStore(client *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{
		client: client,
		log:    log,
	}
}

func tokenKey(userID, tokenID string, tokenType jwt.TokenType) string {
	prefix := accessTokenKeyPrefix
	if tokenType == jwt.RefreshToken {
		prefix = refreshTokenKeyPrefix
	}
	return fmt.Sprintf("%s:%s:%s", prefix, userID, tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKey(userID, tokenID, tokenType), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store %s token in Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

func (s *redisTokenStore) Exists(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(userID, tokenID, tokenType)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, userID, tokenID string, tokenType jwt.TokenType) error {
	if err := s.client.Del(ctx, tokenKey(userID, tokenID, tokenType)).Err(); err != nil {
		s.log.Warnf("Failed to delete token from Redis: %+v", err)
		return err
	}
	return nil
}

// RevokeAll drops every token for a user. Used when an account is
// deactivated or a password changes.
func (s *redisTokenStore) RevokeAll(ctx context.Context, userID string) error {
	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s:%s:*", prefix, userID)

		var cursor uint64
		for {
			keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
			if err != nil {
				s.log.Warnf("Failed to scan token keys: %+v", err)
				return err
			}
			if len(keys) > 0 {
				if err := s.client.Del(ctx, keys...).Err(); err != nil {
					s.log.Warnf("Failed to delete token keys: %+v", err)
					return err
				}
			}
			cursor = next
			if cursor == 0 {
				break
			}
		}
	}
	return nil
}
