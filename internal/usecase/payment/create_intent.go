package payment

import (
	"context"
	"math"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/audit"
	bookingdomain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
	"github.com/handykonnect/handykonnect-api/internal/processor"
)

const currency = "usd"

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateIntentInput struct {
	Actor actor.Actor

	BookingID uint
	// Amount is advisory: the charge is always derived from the service
	// price, and a caller amount that disagrees is rejected.
	Amount float64
}

type CreateIntentOutput struct {
	Payment      *models.Payment
	ClientSecret string
}

// ======================================================
// USE CASE
// ======================================================

type CreateIntent struct {
	repo      domain.Repository
	processor processor.PaymentProcessor
	audit     *audit.Dispatcher
	events    events.Publisher
}

func NewCreateIntent(
	repo domain.Repository,
	proc processor.PaymentProcessor,
	audit *audit.Dispatcher,
	pub events.Publisher,
) *CreateIntent {
	return &CreateIntent{
		repo:      repo,
		processor: proc,
		audit:     audit,
		events:    pub,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateIntent) Execute(
	ctx context.Context,
	in CreateIntentInput,
) (*CreateIntentOutput, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil || b.ClientID != in.Actor.ID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if bookingdomain.Status(b.Status) != bookingdomain.StatusPending {
		return nil, httperr.ErrBusiness("booking_not_payable")
	}

	paid, err := uc.repo.HasCompletedPayment(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if paid {
		return nil, httperr.ErrBusiness("already_paid")
	}

	amount := b.Service.Price
	if in.Amount != 0 && in.Amount != amount {
		return nil, httperr.ErrBusiness("amount_mismatch")
	}

	intent, err := uc.processor.CreateIntent(ctx, toCents(amount), currency)
	if err != nil {
		return nil, httperr.ErrBusiness("processor_error")
	}

	p := &models.Payment{
		BookingID:    b.ID,
		Amount:       amount,
		Method:       string(domain.MethodCard),
		Status:       string(domain.InitialStatus()),
		ProcessorRef: intent.ID,
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.Actor.ID,
		Action:   "payment_intent_created",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	uc.events.Publish(events.Change{
		Table:    events.TablePayments,
		Action:   events.ActionInsert,
		RowID:    p.ID,
		ClientID: b.ClientID,
		Status:   p.Status,
	})

	return &CreateIntentOutput{
		Payment:      p,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
