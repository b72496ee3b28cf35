package payment

import (
	"context"

	"github.com/handykonnect/handykonnect-api/internal/models"
)

type Repository interface {
	// Transact runs fn inside a database transaction; the Repository handed
	// to fn issues its statements on that transaction.
	Transact(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPayment(
		ctx context.Context,
		paymentID uint,
	) (*models.Payment, error)

	// GetPaymentByRefForUpdate locks the row (SELECT ... FOR UPDATE) when
	// called inside Transact.
	GetPaymentByRefForUpdate(
		ctx context.Context,
		processorRef string,
	) (*models.Payment, error)

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	HasCompletedPayment(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	ListPaymentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Payment, error)

	ListPayments(
		ctx context.Context,
		limit int,
	) ([]models.Payment, error)

	// -------- Booking (kept consistent with payment state) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
