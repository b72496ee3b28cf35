package booking

import (
	"context"

	"github.com/handykonnect/handykonnect-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	GetBookingForClient(
		ctx context.Context,
		bookingID uint,
		clientID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
		limit int,
	) ([]models.Booking, error)
}
