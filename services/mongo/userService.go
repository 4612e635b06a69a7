package mongo

import (
	"context"

	"github.com/pawtel/pawtel_api/entities"
	"github.com/pawtel/pawtel_api/repositories"
	"github.com/pawtel/pawtel_api/services"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var userProjection = bson.M{
	string(entities.UserPassword): 0,
}

type mongoUserService struct {
	logger         *zap.Logger
	userRepository *repositories.UserRepository
}

// NewMongoUserService creates a new UserService that uses MongoDB as the storage technology
func NewMongoUserService(logger *zap.Logger, userRepository *repositories.UserRepository) services.UserService {
	return &mongoUserService{
		logger:         logger,
		userRepository: userRepository,
	}
}

func (s *mongoUserService) GetUsers(ctx context.Context) ([]bson.M, error) {
	cur, err := s.userRepository.Find(ctx, bson.M{}, options.Find().SetProjection(userProjection))
	if err != nil {
		return nil, errors.Wrap(err, "could not query for users")
	}

	users, err := decodeDocuments(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return users, nil
}

func (s *mongoUserService) GetUserWithID(ctx context.Context, userID string) (bson.M, error) {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserID): mongoID,
	}, options.FindOne().SetProjection(userProjection))

	user, err := decodeDocumentResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for user with ID")
	}

	return user, nil
}
