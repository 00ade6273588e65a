package mongo

import (
	"context"
	"fmt"

	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const collectionName = "contents"

type Mongo struct {
	client   *mongo.Client
	contents *mongo.Collection
}

var _ storage.Storage = (*Mongo)(nil)

// New connects to the MongoDB deployment at uri and uses the given database
func New(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Mongo{
		client:   client,
		contents: client.Database(database).Collection(collectionName),
	}, nil
}

// Init creates the indexes used by listings
func (m *Mongo) Init(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "language", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	names, err := m.contents.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Errorw("failed to create indexes", zap.Error(err))
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Debugw("ensured indexes", "collection", collectionName, "indexes", names)
	return nil
}

// Close disconnects the client
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
