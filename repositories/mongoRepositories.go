package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository is a wrapper for the mongo Collection struct
// it is required since the mongo library does not
// provide any tools for testing
type MongoRepository interface {
	Name() string

	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// DatabaseRepository gives read access to every collection of the database
type DatabaseRepository interface {
	Name() string

	ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error)
	FindAll(ctx context.Context, collection string, opts ...*options.FindOptions) (*mongo.Cursor, error)
}
