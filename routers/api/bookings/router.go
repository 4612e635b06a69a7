package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/routers/api/models"
	"github.com/pawtel/pawtel_api/services"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Router serves read access to bookings, mounted on /bookings
type Router interface {
	models.Router
	GetBookings(ctx *gin.Context)
	GetBooking(ctx *gin.Context)
}

type bookingsRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	bookingService services.BookingService
}

type getBookingsRes struct {
	Bookings []bson.M `json:"bookings"`
}

type getBookingRes struct {
	Booking bson.M `json:"booking"`
}

func NewRouter(logger *zap.Logger, bookingService services.BookingService) Router {
	return &bookingsRouter{
		logger:         logger,
		bookingService: bookingService,
	}
}

func (r *bookingsRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.GetBookings)
	routerGroup.GET("/:id", r.GetBooking)
}

// GET: /bookings
// Response: bookings []object
func (r *bookingsRouter) GetBookings(ctx *gin.Context) {
	bookings, err := r.bookingService.GetBookings(ctx)
	if err != nil {
		r.logger.Error("could not fetch bookings", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, models.InternalErrorMessage)
		return
	}

	ctx.JSON(http.StatusOK, getBookingsRes{
		Bookings: bookings,
	})
}

// GET: /bookings/:id
// Response: booking object
func (r *bookingsRouter) GetBooking(ctx *gin.Context) {
	id := ctx.Param("id")

	booking, err := r.bookingService.GetBookingWithID(ctx, id)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid booking id", zap.String("id", id))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid booking id provided")
		case services.ErrNotFound:
			r.logger.Debug("booking not found", zap.String("id", id))
			models.SendAPIError(ctx, http.StatusNotFound, "booking not found")
		default:
			r.logger.Error("could not fetch booking", zap.String("id", id), zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, models.InternalErrorMessage)
		}
		return
	}

	ctx.JSON(http.StatusOK, getBookingRes{
		Booking: booking,
	})
}
