package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// UserService is the service for read access to the users collection.
// Returned documents never contain the password field.
type UserService interface {
	GetUsers(ctx context.Context) ([]bson.M, error)
	GetUserWithID(ctx context.Context, userID string) (bson.M, error)
}
