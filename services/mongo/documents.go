package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// decodeDocuments reads every document of the cursor and closes it.
// An empty cursor yields an empty, non-nil slice.
func decodeDocuments(ctx context.Context, cur *mongo.Cursor) ([]bson.M, error) {
	defer cur.Close(ctx)

	documents := []bson.M{}
	for cur.Next(ctx) {
		var document bson.M
		err := cur.Decode(&document)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode document")
		}
		documents = append(documents, document)
	}

	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "could not iterate cursor")
	}

	return documents, nil
}

func decodeDocumentResult(res *mongo.SingleResult) (bson.M, error) {
	err := res.Err()
	if err != nil {
		return nil, err
	}

	var document bson.M
	err = res.Decode(&document)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode document")
	}

	return document, nil
}
