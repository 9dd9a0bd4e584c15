package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment-portal/models"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// Cache is the subset of the redis client used by the pricing cache
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedPricingRepository serves pricing tables from redis and falls back to the
// wrapped repository on a miss or a redis failure.
type CachedPricingRepository struct {
	next  PricingRepositoryInterface
	cache Cache
	ttl   time.Duration
}

// NewCachedPricingRepository wraps next with a redis cache
func NewCachedPricingRepository(next PricingRepositoryInterface, cache Cache, ttl time.Duration) *CachedPricingRepository {
	return &CachedPricingRepository{next: next, cache: cache, ttl: ttl}
}

var _ PricingRepositoryInterface = (*CachedPricingRepository)(nil)

// PricingCacheKey is the redis key of one user's pricing collection
func PricingCacheKey(userID, collection string) string {
	return fmt.Sprintf("pricing:%s:%s", userID, collection)
}

func (r *CachedPricingRepository) GetPrepRules(ctx context.Context, userID string) ([]models.PricingRule, error) {
	var rules []models.PricingRule
	err := r.cached(ctx, PricingCacheKey(userID, CollectionPrepRules), &rules, func() (interface{}, error) {
		return r.next.GetPrepRules(ctx, userID)
	})
	return rules, err
}

func (r *CachedPricingRepository) GetBoxForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	var prices []models.DatedPrice
	err := r.cached(ctx, PricingCacheKey(userID, CollectionBoxForwarding), &prices, func() (interface{}, error) {
		return r.next.GetBoxForwardingPrices(ctx, userID)
	})
	return prices, err
}

func (r *CachedPricingRepository) GetPalletForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	var prices []models.DatedPrice
	err := r.cached(ctx, PricingCacheKey(userID, CollectionPalletForwarding), &prices, func() (interface{}, error) {
		return r.next.GetPalletForwardingPrices(ctx, userID)
	})
	return prices, err
}

func (r *CachedPricingRepository) GetPalletExistingInventoryPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	var prices []models.DatedPrice
	err := r.cached(ctx, PricingCacheKey(userID, CollectionPalletExistingInventory), &prices, func() (interface{}, error) {
		return r.next.GetPalletExistingInventoryPrices(ctx, userID)
	})
	return prices, err
}

// cached decodes key into dest, or loads it and stores the result
func (r *CachedPricingRepository) cached(ctx context.Context, key string, dest interface{}, load func() (interface{}, error)) error {
	data, err := r.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, dest); jsonErr == nil {
			log.Debugf("🔍 Pricing cache hit: %s", key)
			return nil
		}
		log.Printf("⚠️  Pricing cache entry %s is corrupt, reloading", key)
	case err != redis.Nil:
		log.Printf("⚠️  Pricing cache read failed for %s: %v", key, err)
	}

	value, err := load()
	if err != nil {
		return err
	}

	data, err = json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.cache.Set(ctx, key, data, r.ttl).Err(); err != nil {
		log.Printf("⚠️  Pricing cache write failed for %s: %v", key, err)
	}
	return json.Unmarshal(data, dest)
}
