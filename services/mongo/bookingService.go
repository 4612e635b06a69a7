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
	"go.uber.org/zap"
)

type mongoBookingService struct {
	logger            *zap.Logger
	bookingRepository *repositories.BookingRepository
}

// NewMongoBookingService creates a new BookingService that uses MongoDB as the storage technology
func NewMongoBookingService(logger *zap.Logger, bookingRepository *repositories.BookingRepository) services.BookingService {
	return &mongoBookingService{
		logger:            logger,
		bookingRepository: bookingRepository,
	}
}

func (s *mongoBookingService) GetBookings(ctx context.Context) ([]bson.M, error) {
	cur, err := s.bookingRepository.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for bookings")
	}

	bookings, err := decodeDocuments(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return bookings, nil
}

func (s *mongoBookingService) GetBookingWithID(ctx context.Context, bookingID string) (bson.M, error) {
	mongoID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.bookingRepository.FindOne(ctx, bson.M{
		string(entities.BookingID): mongoID,
	})

	booking, err := decodeDocumentResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for booking with ID")
	}

	return booking, nil
}
