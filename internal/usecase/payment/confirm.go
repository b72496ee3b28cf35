package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/handykonnect/handykonnect-api/internal/audit"
	bookingdomain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
	"github.com/handykonnect/handykonnect-api/internal/processor"
)

type ConfirmPayment struct {
	repo      domain.Repository
	processor processor.PaymentProcessor
	audit     *audit.Dispatcher
	mailer    mailer.Mailer
	events    events.Publisher
}

func NewConfirmPayment(
	repo domain.Repository,
	proc processor.PaymentProcessor,
	audit *audit.Dispatcher,
	mail mailer.Mailer,
	pub events.Publisher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:      repo,
		processor: proc,
		audit:     audit,
		mailer:    mail,
		events:    pub,
	}
}

// Execute settles a card payment from the processor's point of view. A
// second call for an already-settled intent is a no-op: the row is locked
// while its status is checked, so side effects fire exactly once.
func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	intentID string,
) (*models.Payment, error) {

	status, err := uc.processor.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, httperr.ErrBusiness("processor_error")
	}

	var (
		result         *models.Payment
		booking        *models.Booking
		firstSettle    bool
		bookingUpdated bool
	)

	err = uc.repo.Transact(ctx, func(r domain.Repository) error {
		p, err := r.GetPaymentByRefForUpdate(ctx, intentID)
		if err != nil {
			return httperr.ErrBusiness("payment_not_found")
		}

		// Already settled: nothing to apply, nothing to re-trigger.
		if domain.Status(p.Status) != domain.StatusPending {
			result = p
			return nil
		}

		if status == processor.IntentSucceeded {
			if err := domain.Complete(p); err != nil {
				return err
			}

			b, err := r.GetBooking(ctx, p.BookingID)
			if err == nil && bookingdomain.Status(b.Status) == bookingdomain.StatusPending {
				if err := bookingdomain.Transition(b, bookingdomain.StatusConfirmed, time.Now()); err == nil {
					if err := r.UpdateBooking(ctx, b); err != nil {
						return err
					}
					bookingUpdated = true
				}
			}
			booking = b
			firstSettle = true
		} else {
			if err := domain.Fail(p); err != nil {
				return err
			}
		}

		if err := r.UpdatePayment(ctx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if firstSettle {
		uc.audit.Dispatch(audit.Event{
			Action:   "payment_completed",
			Entity:   "payment",
			EntityID: &result.ID,
		})

		if booking != nil {
			uc.mailer.SendPaymentReceipt(result, booking)
			uc.mailer.SendTransactionAlert(mailer.TransactionAlert{
				Type:          "payment",
				Status:        result.Status,
				Amount:        result.Amount,
				CustomerName:  booking.Client.FullName,
				CustomerEmail: booking.Client.Email,
				TransactionID: fmt.Sprintf("%d", result.ID),
			})

			uc.events.Publish(events.Change{
				Table:    events.TablePayments,
				Action:   events.ActionUpdate,
				RowID:    result.ID,
				ClientID: booking.ClientID,
				Status:   result.Status,
			})

			if bookingUpdated {
				uc.events.Publish(events.Change{
					Table:    events.TableBookings,
					Action:   events.ActionUpdate,
					RowID:    booking.ID,
					ClientID: booking.ClientID,
					Status:   booking.Status,
				})
			}
		}
	}

	return result, nil
}
