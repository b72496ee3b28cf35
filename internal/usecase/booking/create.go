package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/audit"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor actor.Actor

	ServiceID   uint
	ScheduledAt time.Time
	Address     string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer mailer.Mailer
	events events.Publisher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	mail mailer.Mailer,
	pub events.Publisher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  audit,
		mailer: mail,
		events: pub,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	if !in.ScheduledAt.After(time.Now()) {
		return nil, httperr.ErrBusiness("invalid_schedule")
	}

	b := &models.Booking{
		ClientID:    in.Actor.ID,
		ServiceID:   svc.ID,
		ScheduledAt: in.ScheduledAt,
		Address:     in.Address,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.Actor.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	// Reload with associations so notifications have names and addresses.
	if full, err := uc.repo.GetBooking(ctx, b.ID); err == nil {
		b = full
		uc.mailer.SendBookingConfirmation(b)
		uc.mailer.SendTransactionAlert(mailer.TransactionAlert{
			Type:          "booking",
			Status:        b.Status,
			ServiceName:   b.Service.Name,
			BookingDate:   b.ScheduledAt.Format("Jan 2, 2006 3:04 PM"),
			CustomerName:  b.Client.FullName,
			CustomerEmail: b.Client.Email,
			TransactionID: fmt.Sprintf("%d", b.ID),
		})
	}

	uc.events.Publish(events.Change{
		Table:    events.TableBookings,
		Action:   events.ActionInsert,
		RowID:    b.ID,
		ClientID: b.ClientID,
		Status:   b.Status,
	})

	return b, nil
}
