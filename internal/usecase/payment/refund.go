package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/audit"
	bookingdomain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
	"github.com/handykonnect/handykonnect-api/internal/processor"
)

type RefundOutput struct {
	Payment  *models.Payment
	RefundID string
	Status   string
}

type RefundPayment struct {
	repo      domain.Repository
	processor processor.PaymentProcessor
	audit     *audit.Dispatcher
	mailer    mailer.Mailer
	events    events.Publisher
}

func NewRefundPayment(
	repo domain.Repository,
	proc processor.PaymentProcessor,
	audit *audit.Dispatcher,
	mail mailer.Mailer,
	pub events.Publisher,
) *RefundPayment {
	return &RefundPayment{
		repo:      repo,
		processor: proc,
		audit:     audit,
		mailer:    mail,
		events:    pub,
	}
}

// Execute refunds a completed card payment. If the processor call fails,
// nothing changes locally. On success the payment becomes refunded and the
// booking is cancelled no matter where its lifecycle stood.
func (uc *RefundPayment) Execute(
	ctx context.Context,
	paymentID uint,
	act actor.Actor,
) (*RefundOutput, error) {

	if !act.IsAdmin() {
		return nil, httperr.ErrBusiness("admin_access_required")
	}

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	if err := domain.CanRefund(domain.Status(p.Status)); err != nil {
		return nil, err
	}

	if p.ProcessorRef == "" || strings.HasPrefix(p.ProcessorRef, "manual_") {
		return nil, httperr.ErrBusiness("no_processor_reference")
	}

	ref, err := uc.processor.Refund(ctx, p.ProcessorRef)
	if err != nil {
		return nil, httperr.ErrBusiness("processor_error")
	}

	var b *models.Booking
	err = uc.repo.Transact(ctx, func(r domain.Repository) error {
		if err := domain.Refund(p); err != nil {
			return err
		}
		if err := r.UpdatePayment(ctx, p); err != nil {
			return err
		}

		b, err = r.GetBooking(ctx, p.BookingID)
		if err != nil {
			return err
		}
		bookingdomain.ForceCancel(b, time.Now())
		return r.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &act.ID,
		Action:   "payment_refunded",
		Entity:   "payment",
		EntityID: &p.ID,
	})

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
		Action:   events.ActionUpdate,
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

	return &RefundOutput{
		Payment:  p,
		RefundID: ref.ID,
		Status:   ref.Status,
	}, nil
}
