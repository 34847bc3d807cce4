// Package mongo dials the MongoDB deployment backing the document store.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultDatabase is used when MONGO_DATABASE is not set.
const DefaultDatabase = "commerce"

// Connect dials MongoDB and verifies connectivity with a bounded ping.
func Connect(ctx context.Context, uri string) (*mongodrv.Client, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// ConnectFromEnv dials MongoDB using MONGO_URI and returns the database plus
// a cleanup function. When MONGO_URI is missing or the connection fails, it
// logs and returns nil with a no-op cleanup so the caller can fall back.
func ConnectFromEnv(ctx context.Context, logger *slog.Logger) (*mongodrv.Database, func()) {
	uri := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if uri == "" {
		if logger != nil {
			logger.Warn("MONGO_URI not set")
		}
		return nil, func() {}
	}
	client, err := Connect(ctx, uri)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to mongo", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	name := strings.TrimSpace(os.Getenv("MONGO_DATABASE"))
	if name == "" {
		name = DefaultDatabase
	}
	if logger != nil {
		logger.Info("mongo connection established", slog.String("database", name))
	}
	cleanup := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}
	return client.Database(name), cleanup
}
