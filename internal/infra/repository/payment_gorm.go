package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB

	// inTx marks a repository handed to a Transact callback, so row locks
	// are only taken where they can actually be held.
	inTx bool
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *PaymentGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PaymentGormRepository{db: tx, inTx: true})
	})
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentGormRepository) GetPayment(
	ctx context.Context,
	paymentID uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, paymentID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) GetPaymentByRefForUpdate(
	ctx context.Context,
	processorRef string,
) (*models.Payment, error) {

	q := r.db.WithContext(ctx)
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var p models.Payment
	if err := q.
		Where("processor_ref = ?", processorRef).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentGormRepository) HasCompletedPayment(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("booking_id = ? AND status = 'completed'", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PaymentGormRepository) ListPaymentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.client_id = ?", clientID).
		Preload("Booking").
		Preload("Booking.Service").
		Order("payments.created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentGormRepository) ListPayments(
	ctx context.Context,
	limit int,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Client").
		Preload("Booking.Service").
		Order("created_at DESC").
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *PaymentGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PaymentGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
