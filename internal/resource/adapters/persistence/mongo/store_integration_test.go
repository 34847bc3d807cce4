//go:build integration
// +build integration

package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	documentstore "github.com/commercekit/commerce-api/internal/resource/adapters/persistence/mongo"
	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

func setupMongoContainer(t *testing.T) (*mongodrv.Database, func()) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:6",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForLog("Waiting for connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	endpoint, err := container.PortEndpoint(ctx, "27017/tcp", "")
	require.NoError(t, err)

	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI("mongodb://"+endpoint))
	require.NoError(t, err)

	cleanup := func() {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
	}

	return client.Database("commerce_test"), cleanup
}

func TestMongoStore_AddAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMongoContainer(t)
	defer cleanup()

	coll := documentstore.NewStore(db).Collection("customers")
	ctx := context.Background()

	id, err := coll.Add(ctx, domain.Document{"firstName": "Ada", "email": "ada@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := coll.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", doc["firstName"])
	assert.Equal(t, "ada@example.com", doc["email"])
	_, hasRawID := doc["_id"]
	assert.False(t, hasRawID)
}

func TestMongoStore_GetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMongoContainer(t)
	defer cleanup()

	coll := documentstore.NewStore(db).Collection("customers")
	ctx := context.Background()

	_, err := coll.Get(ctx, "65f000000000000000000000")
	require.ErrorIs(t, err, ports.ErrNotFound)

	// Unparseable ids are also absent documents.
	_, err = coll.Get(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMongoStore_MergeUpserts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMongoContainer(t)
	defer cleanup()

	coll := documentstore.NewStore(db).Collection("orders")
	ctx := context.Background()

	id, err := coll.Add(ctx, domain.Document{"customerId": "c1", "quantity": int32(1)})
	require.NoError(t, err)

	require.NoError(t, coll.Merge(ctx, id, domain.Document{"quantity": int32(7)}))
	doc, err := coll.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "c1", doc["customerId"])
	assert.Equal(t, int32(7), doc["quantity"])

	// Merge on an id that was never created upserts a fresh document.
	phantom := "65f111111111111111111111"
	require.NoError(t, coll.Merge(ctx, phantom, domain.Document{"quantity": int32(5)}))
	doc, err = coll.Get(ctx, phantom)
	require.NoError(t, err)
	assert.Equal(t, int32(5), doc["quantity"])
}

func TestMongoStore_DeleteAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupMongoContainer(t)
	defer cleanup()

	coll := documentstore.NewStore(db).Collection("warehouses")
	ctx := context.Background()

	first, err := coll.Add(ctx, domain.Document{"city": "Hamburg"})
	require.NoError(t, err)
	second, err := coll.Add(ctx, domain.Document{"city": "Lyon"})
	require.NoError(t, err)

	require.NoError(t, coll.Delete(ctx, first))
	require.NoError(t, coll.Delete(ctx, first))

	entries, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second, entries[0].ID)
	assert.Equal(t, "Lyon", entries[0].Data["city"])
}
