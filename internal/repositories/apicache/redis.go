package apicache

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	redisclient "github.com/KirkDiggler/pokedex-api/internal/redis"
)

const (
	keyPrefix = "pokeapi:"
	scanBatch = 200
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis response cache
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed response cache. Expiry is delegated to
// Redis key TTLs.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.URL == "" {
		return nil, errors.InvalidArgument(errURLEmpty)
	}

	body, err := r.client.Get(ctx, keyPrefix+input.URL).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no cached response for %s", input.URL)
		}
		return nil, errors.Wrapf(err, "failed to read cached response for %s", input.URL)
	}

	return &GetOutput{Body: body}, nil
}

func (r *redisRepository) Set(ctx context.Context, input *SetInput) (*SetOutput, error) {
	if err := validateSet(input); err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, keyPrefix+input.URL, input.Body, input.TTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache response for %s", input.URL)
	}

	return &SetOutput{}, nil
}

// Purge walks the key space with SCAN so a large cache never blocks Redis
func (r *redisRepository) Purge(ctx context.Context, _ *PurgeInput) (*PurgeOutput, error) {
	removed := 0
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan cached responses")
		}

		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return nil, errors.Wrap(err, "failed to delete cached responses")
			}
			removed += int(n)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return &PurgeOutput{Removed: removed}, nil
}
