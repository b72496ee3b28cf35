package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/audit"
	bookingdomain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

type RecordManualInput struct {
	Actor actor.Actor

	BookingID uint
	Method    domain.Method
}

type RecordManualPayment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer mailer.Mailer
	events events.Publisher
}

func NewRecordManualPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	mail mailer.Mailer,
	pub events.Publisher,
) *RecordManualPayment {
	return &RecordManualPayment{
		repo:   repo,
		audit:  audit,
		mailer: mail,
		events: pub,
	}
}

// Execute records a bank-transfer or bitcoin payment. The client
// self-attests that funds were sent; there is no independent verification
// before the booking is confirmed. Pending manual review by an admin.
func (uc *RecordManualPayment) Execute(
	ctx context.Context,
	in RecordManualInput,
) (*models.Payment, error) {

	if !domain.IsManualMethod(in.Method) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

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

	p := &models.Payment{
		BookingID:    b.ID,
		Amount:       b.Service.Price,
		Method:       string(in.Method),
		Status:       string(domain.StatusCompleted),
		ProcessorRef: "manual_" + uuid.NewString(),
	}

	err = uc.repo.Transact(ctx, func(r domain.Repository) error {
		if err := r.CreatePayment(ctx, p); err != nil {
			return err
		}

		if err := bookingdomain.Transition(b, bookingdomain.StatusConfirmed, time.Now()); err != nil {
			return err
		}
		return r.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.Actor.ID,
		Action:   "payment_manual_recorded",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	uc.mailer.SendPaymentReceipt(p, b)
	uc.mailer.SendTransactionAlert(mailer.TransactionAlert{
		Type:          "payment",
		Status:        p.Status,
		Amount:        p.Amount,
		CustomerName:  b.Client.FullName,
		CustomerEmail: b.Client.Email,
		TransactionID: fmt.Sprintf("%d", p.ID),
	})

	uc.events.Publish(events.Change{
		Table:    events.TablePayments,
		Action:   events.ActionInsert,
		RowID:    p.ID,
		ClientID: b.ClientID,
		Status:   p.Status,
	})
	uc.events.Publish(events.Change{
		Table:    events.TableBookings,
		Action:   events.ActionUpdate,
		RowID:    b.ID,
		ClientID: b.ClientID,
		Status:   b.Status,
	})

	return p, nil
}
