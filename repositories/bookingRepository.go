package repositories

import (
	"github.com/pawtel/pawtel_api/database"
)

const (
	bookingModel      = "Booking"
	bookingCollection = "bookings"
)

// BookingRepository is the repository for booking documents
type BookingRepository struct {
	MongoRepository
}

// NewBookingRepository creates a new BookingRepository and registers the Booking model on the connection
func NewBookingRepository(conn *database.Connection) *BookingRepository {
	conn.RegisterModel(bookingModel)

	return &BookingRepository{
		MongoRepository: conn.Database().Collection(bookingCollection),
	}
}
