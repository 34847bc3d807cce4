package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

func TestCollection_Lazy(t *testing.T) {
	store := NewStore()

	first := store.Collection("orders")
	second := store.Collection("orders")
	require.Same(t, first, second)
	require.NotSame(t, first, store.Collection("customers"))
}

func TestAddAssignsDistinctIDs(t *testing.T) {
	coll := NewStore().Collection("orders")
	ctx := context.Background()

	first, err := coll.Add(ctx, domain.Document{"quantity": 1})
	require.NoError(t, err)
	second, err := coll.Add(ctx, domain.Document{"quantity": 2})
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestWithIDFunc(t *testing.T) {
	store := NewStore()
	store.WithIDFunc(func() string { return "fixed" })

	id, err := store.Collection("orders").Add(context.Background(), domain.Document{})
	require.NoError(t, err)
	require.Equal(t, "fixed", id)
}

func TestGet_ReturnsClone(t *testing.T) {
	coll := NewStore().Collection("orders")
	ctx := context.Background()

	id, err := coll.Add(ctx, domain.Document{"quantity": 1})
	require.NoError(t, err)

	doc, err := coll.Get(ctx, id)
	require.NoError(t, err)
	doc["quantity"] = 99

	again, err := coll.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 1, again["quantity"])
}

func TestGet_Missing(t *testing.T) {
	coll := NewStore().Collection("orders")

	_, err := coll.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMerge_CreatesAndOverlays(t *testing.T) {
	coll := NewStore().Collection("orders")
	ctx := context.Background()

	require.NoError(t, coll.Merge(ctx, "o1", domain.Document{"quantity": 5}))
	doc, err := coll.Get(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, domain.Document{"quantity": 5}, doc)

	require.NoError(t, coll.Merge(ctx, "o1", domain.Document{"productId": "p1"}))
	doc, err = coll.Get(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, domain.Document{"quantity": 5, "productId": "p1"}, doc)
}

func TestDelete_AbsentIsSuccess(t *testing.T) {
	coll := NewStore().Collection("orders")

	require.NoError(t, coll.Delete(context.Background(), "never-existed"))
}

func TestConcurrentAccess(t *testing.T) {
	coll := NewStore().Collection("orders")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id, err := coll.Add(ctx, domain.Document{"n": n})
			require.NoError(t, err)
			require.NoError(t, coll.Merge(ctx, id, domain.Document{"seen": true}))
			if n%2 == 0 {
				require.NoError(t, coll.Delete(ctx, id))
			}
		}(i)
	}
	wg.Wait()

	entries, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 16)
	for _, entry := range entries {
		require.Equal(t, true, entry.Data["seen"], fmt.Sprintf("entry %s missing merge", entry.ID))
	}
}
