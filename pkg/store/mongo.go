package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plotspec/plotspec/pkg/config"
)

// MongoStore keeps figure envelopes as documents in a mongo collection,
// keyed by figure name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to mongo and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg config.MongoConfig) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Put stores fig, replacing any previous version (upsert by name).
func (s *MongoStore) Put(ctx context.Context, fig Figure) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": fig.Name},
		fig,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Get retrieves the figure stored under name.
func (s *MongoStore) Get(ctx context.Context, name string) (Figure, error) {
	var fig Figure
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&fig)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Figure{}, ErrNotFound
	}
	if err != nil {
		return Figure{}, err
	}
	return fig, nil
}

// List returns all stored figures sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]Figure, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var figs []Figure
	if err := cursor.All(ctx, &figs); err != nil {
		return nil, err
	}
	return figs, nil
}

// Delete removes the figure stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from mongo.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
