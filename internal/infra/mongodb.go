package infra

import (
	"context"
	"fmt"

	"github.com/umalmyha/authflow/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func Mongodb(ctx context.Context, cfg config.MongoCfg) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%d/?maxPoolSize=%d", cfg.Host, cfg.Port, cfg.MaxPoolSize)
	if cfg.User != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%d/?maxPoolSize=%d", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb - %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("didn't get response from mongodb after sending ping request - %w", err)
	}
	return client, nil
}
