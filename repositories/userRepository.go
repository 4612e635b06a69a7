package repositories

import (
	"github.com/pawtel/pawtel_api/database"
)

const (
	userModel      = "User"
	userCollection = "users"
)

// UserRepository is the repository for user documents
type UserRepository struct {
	MongoRepository
}

// NewUserRepository creates a new UserRepository and registers the User model on the connection
func NewUserRepository(conn *database.Connection) *UserRepository {
	conn.RegisterModel(userModel)

	return &UserRepository{
		MongoRepository: conn.Database().Collection(userCollection),
	}
}
