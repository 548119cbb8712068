package products

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
)

type countingRepository struct {
	*mockRepository

	listCalls atomic.Int64
	listDelay time.Duration
}

func (c *countingRepository) List(ctx context.Context, filters catalog.ListFilters) ([]Product, int, error) {
	c.listCalls.Add(1)
	if c.listDelay > 0 {
		time.Sleep(c.listDelay)
	}
	return c.mockRepository.List(ctx, filters)
}

func newCacheFixture(t *testing.T) (*CachedRepository, *countingRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &countingRepository{mockRepository: newMockRepository()}
	repo.products["p1"] = Product{ID: "p1", Name: "Semaglutide", Category: "vials", BasePrice: money.FromPesos(1000)}
	repo.products["p2"] = Product{ID: "p2", Name: "BPC-157 Capsules", Category: "capsules", BasePrice: money.FromPesos(1500)}
	return NewCachedRepository(repo, client, time.Minute), repo, mr
}

func TestCachedListServesRepeatReadsFromCache(t *testing.T) {
	cached, repo, _ := newCacheFixture(t)
	ctx := context.Background()
	filters := catalog.ListFilters{Category: "vials", Page: 1, Limit: 20}

	first, total, err := cached.List(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	second, _, err := cached.List(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, repo.listCalls.Load())
}

func TestCachedListInvalidatedByMutation(t *testing.T) {
	cached, repo, _ := newCacheFixture(t)
	ctx := context.Background()
	filters := catalog.ListFilters{Page: 1, Limit: 20}

	_, total, err := cached.List(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, err = cached.Create(ctx, Product{ID: "p3", Name: "TB-500", Category: "vials", BasePrice: money.FromPesos(2000)})
	require.NoError(t, err)

	_, total, err = cached.List(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.EqualValues(t, 2, repo.listCalls.Load())
}

func TestCachedListRedisDownKeepsFiltersApart(t *testing.T) {
	cached, repo, mr := newCacheFixture(t)
	repo.listDelay = 20 * time.Millisecond
	mr.Close()

	// With the cache unreachable both reads hit the database and each must
	// get its own filter's rows, even when they overlap in flight.
	results := make(map[string][]Product, 2)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, category := range []string{"vials", "capsules"} {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			items, _, err := cached.List(context.Background(), catalog.ListFilters{Category: category})
			assert.NoError(t, err)
			mu.Lock()
			results[category] = items
			mu.Unlock()
		}(category)
	}
	wg.Wait()

	require.Len(t, results["vials"], 1)
	require.Len(t, results["capsules"], 1)
	assert.Equal(t, "p1", results["vials"][0].ID)
	assert.Equal(t, "p2", results["capsules"][0].ID)
	assert.EqualValues(t, 2, repo.listCalls.Load())
}
