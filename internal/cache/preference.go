package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/authflow/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultPreferenceTimeToLive is how long cached preference stays in redis
const DefaultPreferenceTimeToLive = 10 * time.Minute

// PreferenceCache keeps recently read preferences in front of durable repository
type PreferenceCache interface {
	Find(context.Context, string) (*model.Preference, error)
	Cache(context.Context, *model.Preference) error
	Evict(context.Context, string) error
}

type redisPreferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPreferenceCache(client *redis.Client, ttl time.Duration) PreferenceCache {
	return &redisPreferenceCache{client: client, ttl: ttl}
}

func (r *redisPreferenceCache) Find(ctx context.Context, profile string) (*model.Preference, error) {
	res, err := r.client.Get(ctx, r.key(profile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var p model.Preference
	if err := msgpack.Unmarshal(res, &p); err != nil {
		return nil, err
	}

	// entries written by other schema versions are treated as a miss
	if p.Version != model.PreferenceSchemaVersion {
		return nil, nil
	}
	return &p, nil
}

func (r *redisPreferenceCache) Cache(ctx context.Context, p *model.Preference) error {
	encoded, err := msgpack.Marshal(p)
	if err != nil {
		return err
	}

	if _, err := r.client.Set(ctx, r.key(p.Profile), encoded, r.ttl).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisPreferenceCache) Evict(ctx context.Context, profile string) error {
	if _, err := r.client.Del(ctx, r.key(profile)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisPreferenceCache) key(profile string) string {
	return fmt.Sprintf("preference:%s", profile)
}

type nopPreferenceCache struct{}

// NewNopPreferenceCache is used when redis cache is disabled
func NewNopPreferenceCache() PreferenceCache {
	return nopPreferenceCache{}
}

func (nopPreferenceCache) Find(context.Context, string) (*model.Preference, error) {
	return nil, nil
}

func (nopPreferenceCache) Cache(context.Context, *model.Preference) error {
	return nil
}

func (nopPreferenceCache) Evict(context.Context, string) error {
	return nil
}
