// Package mongo contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"roster/config"
	"roster/internal/domain/lifecycle"
	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database handle.
func New(params Params) (*mongo.Database, error) {
	client, err := Connect(params.Config.Mongo)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			if !params.Config.Mongo.Transactions {
				params.Logger.WarnContext(ctx, "MongoDB transactions disabled, multi-document writes are best-effort")
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}

// Connect builds a client for cfg. The driver dials lazily, so callers should ping before use.
func Connect(cfg *config.MongoConfig) (*mongo.Client, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database must be provided")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		model.AccountCollection: {
			{
				Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_phone_number"),
			},
		},
		model.ProfileCollection: {
			{
				Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_phone_number"),
			},
			{
				Keys:    bson.D{{Key: "role", Value: 1}},
				Options: options.Index().SetName("idx_role"),
			},
			{
				Keys:    bson.D{{Key: "listSuperProfile", Value: 1}},
				Options: options.Index().SetName("idx_list_super_profile"),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
