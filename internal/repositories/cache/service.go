// Package cache implements the Redis-backed read cache for property listings.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Get decodes the cached value into dest and reports whether the key existed.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Property caching
//
// Every property has a version counter next to its cached row. Invalidation
// bumps the counter before deleting the row, and a refill only lands when the
// counter still holds the value the reader saw before querying the database.

// setIfVersion writes ARGV[2] to KEYS[2] when KEYS[1] still equals ARGV[1].
// ARGV[3] is the TTL in milliseconds, 0 meaning no expiry.
var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

func (s *CacheService) propertyKey(id uuid.UUID) string {
	return s.GenerateKey("property", "id", id)
}

func (s *CacheService) propertyVersionKey(id uuid.UUID) string {
	return s.GenerateKey("property", "version", id)
}

// PropertyVersion returns the current version of the property's cache entry.
// A property that was never invalidated is at version 0.
func (s *CacheService) PropertyVersion(ctx context.Context, id uuid.UUID) (int64, error) {
	version, err := s.client.Get(ctx, s.propertyVersionKey(id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get property version: %w", err)
	}
	return version, nil
}

// SetProperty caches property if its version is still version. It reports
// whether the row was stored.
func (s *CacheService) SetProperty(ctx context.Context, property *models.Property, version int64) (bool, error) {
	if property == nil {
		return false, errors.New("cannot cache nil property")
	}

	data, err := json.Marshal(property)
	if err != nil {
		return false, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	keys := []string{s.propertyVersionKey(property.ID), s.propertyKey(property.ID)}
	stored, err := setIfVersion.Run(ctx, s.client, keys, version, data, s.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to cache property: %w", err)
	}
	return stored == 1, nil
}

func (s *CacheService) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	found, err := s.Get(ctx, s.propertyKey(id), &property)
	if err != nil || !found {
		return nil, err
	}
	return &property, nil
}

// InvalidateProperty bumps the version and drops the cached row, so reads
// that started before the call cannot repopulate it.
func (s *CacheService) InvalidateProperty(ctx context.Context, id uuid.UUID) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, s.propertyVersionKey(id))
		pipe.Del(ctx, s.propertyKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate property: %w", err)
	}
	return nil
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
