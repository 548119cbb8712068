package products

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
)

const versionKey = "catalog:products:ver"

// CachedRepository decorates a Repository with a Redis read-through cache.
// The storefront re-reads the catalog on every page view; cached reads are
// invalidated by bumping a version counter after any mutation, which is the
// explicit fetch-and-invalidate replacement for the original reactive
// subscriptions. Cache failures fall through to the database.
type CachedRepository struct {
	Repository

	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewCachedRepository wraps repo with a Redis cache.
func NewCachedRepository(repo Repository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{Repository: repo, client: client, ttl: ttl}
}

type cachedList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

func (r *CachedRepository) List(ctx context.Context, filters catalog.ListFilters) ([]Product, int, error) {
	key := r.listKey(ctx, filters)
	if key == "" {
		// Redis is unreachable; no shared key distinguishes the filters,
		// so every call goes straight to the database.
		return r.Repository.List(ctx, filters)
	}
	if data, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var cached cachedList
		if json.Unmarshal(data, &cached) == nil {
			return cached.Products, cached.Total, nil
		}
	}

	value, err, _ := r.group.Do(key, func() (interface{}, error) {
		result, total, err := r.Repository.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		cached := cachedList{Products: result, Total: total}
		if data, err := json.Marshal(cached); err == nil {
			_ = r.client.Set(ctx, key, data, r.ttl).Err()
		}
		return cached, nil
	})
	if err != nil {
		return nil, 0, err
	}
	cached := value.(cachedList)
	return cached.Products, cached.Total, nil
}

func (r *CachedRepository) Create(ctx context.Context, product Product) (Product, error) {
	created, err := r.Repository.Create(ctx, product)
	if err == nil {
		r.invalidate(ctx)
	}
	return created, err
}

func (r *CachedRepository) Update(ctx context.Context, id string, product Product) error {
	err := r.Repository.Update(ctx, id, product)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	err := r.Repository.Delete(ctx, id)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *CachedRepository) CreateVariation(ctx context.Context, variation Variation) (Variation, error) {
	created, err := r.Repository.CreateVariation(ctx, variation)
	if err == nil {
		r.invalidate(ctx)
	}
	return created, err
}

func (r *CachedRepository) UpdateVariation(ctx context.Context, id string, variation Variation) error {
	err := r.Repository.UpdateVariation(ctx, id, variation)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *CachedRepository) DeleteVariation(ctx context.Context, id string) error {
	err := r.Repository.DeleteVariation(ctx, id)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	_ = r.client.Incr(ctx, versionKey).Err()
}

func (r *CachedRepository) listKey(ctx context.Context, filters catalog.ListFilters) string {
	version, err := r.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		return ""
	}
	available, featured := "-", "-"
	if filters.Available != nil {
		available = strconv.FormatBool(*filters.Available)
	}
	if filters.Featured != nil {
		featured = strconv.FormatBool(*filters.Featured)
	}
	return fmt.Sprintf("catalog:products:v%d:list:%s:%s:%s:%s:%d:%d:%s:%s",
		version, filters.Category, filters.Search, available, featured,
		filters.Page, filters.Limit, filters.SortBy, filters.SortDir)
}
