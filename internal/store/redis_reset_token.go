package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

const resetTokenKeyPrefix = "reset_token:"

// consumeResetTokenScript deletes the key only when the stored token equals
// ARGV[1]. Returns 1 on delete and 0 otherwise.
const consumeResetTokenScript = `local v = redis.call('GET', KEYS[1])
if not v then
	return 0
end
local t = cjson.decode(v)
if t.token ~= ARGV[1] then
	return 0
end
redis.call('DEL', KEYS[1])
return 1`

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// redisResetTokenStore keeps each user's reset token as a JSON value under
// "reset_token:<user id>". Entries outlive the token by retention so that a
// late redemption is still seen as expired.
type redisResetTokenStore struct {
	client    redis.Cmdable
	retention time.Duration
	logger    *logger.Logger
}

// NewRedisResetTokenStore constructs the Redis-backed [ResetTokenStore].
func NewRedisResetTokenStore(client redis.Cmdable, retention time.Duration, logger *logger.Logger) ResetTokenStore {
	logger.Debug().Msg("creating redis reset token store")
	return &redisResetTokenStore{client: client, retention: retention, logger: logger}
}

func resetTokenKey(userID string) string {
	return resetTokenKeyPrefix + userID
}

// SaveResetToken overwrites the user's key, which replaces any previous
// token atomically.
func (s *redisResetTokenStore) SaveResetToken(ctx context.Context, token models.ResetToken) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	ttl := token.ExpiresAt.Sub(token.CreatedAt) + s.retention
	if ttl <= 0 {
		ttl = s.retention
	}

	if err = s.client.Set(ctx, resetTokenKey(token.UserID), string(data), ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisResetTokenStore.SaveResetToken").Msg("error saving reset token")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (s *redisResetTokenStore) FindResetToken(ctx context.Context, userID string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	data, err := s.client.Get(ctx, resetTokenKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ResetToken{}, ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*redisResetTokenStore.FindResetToken").Msg("error reading reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var token models.ResetToken
	if err = json.Unmarshal(data, &token); err != nil {
		log.Err(err).Str("func", "*redisResetTokenStore.FindResetToken").Msg("error decoding reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}

	return token, nil
}

func (s *redisResetTokenStore) ConsumeResetToken(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	deleted, err := s.client.Eval(ctx, consumeResetTokenScript, []string{resetTokenKey(userID)}, token).Int()
	if err != nil {
		log.Err(err).Str("func", "*redisResetTokenStore.ConsumeResetToken").Msg("error consuming reset token")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if deleted == 0 {
		return ErrResetTokenNotFound
	}

	return nil
}
