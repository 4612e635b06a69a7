package repositories

import (
	"context"

	"github.com/pawtel/pawtel_api/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDatabaseRepository struct {
	*mongo.Database
}

// NewDatabaseRepository creates a DatabaseRepository for the connection's database
func NewDatabaseRepository(conn *database.Connection) DatabaseRepository {
	return &mongoDatabaseRepository{
		Database: conn.Database(),
	}
}

// FindAll runs an unfiltered find on the named collection
func (r *mongoDatabaseRepository) FindAll(ctx context.Context, collection string, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return r.Collection(collection).Find(ctx, bson.D{}, opts...)
}
