package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingService is the service for read access to the bookings collection
type BookingService interface {
	GetBookings(ctx context.Context) ([]bson.M, error)
	GetBookingWithID(ctx context.Context, bookingID string) (bson.M, error)
}
