package booking

import (
	"context"
	"time"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/audit"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/mailer"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

type TransitionBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mailer mailer.Mailer
	events events.Publisher
}

func NewTransitionBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	mail mailer.Mailer,
	pub events.Publisher,
) *TransitionBooking {
	return &TransitionBooking{
		repo:   repo,
		audit:  audit,
		mailer: mail,
		events: pub,
	}
}

// Execute applies a manual status change. Only admins drive these edges;
// payment completion and refunds move bookings through their own paths.
func (uc *TransitionBooking) Execute(
	ctx context.Context,
	bookingID uint,
	target domain.Status,
	act actor.Actor,
) (*models.Booking, error) {

	if !act.IsAdmin() {
		return nil, httperr.ErrBusiness("admin_access_required")
	}

	if !domain.IsValid(target) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Transition(b, target, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &act.ID,
		Action:   "booking_" + string(target),
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.mailer.SendBookingStatusUpdate(b)

	uc.events.Publish(events.Change{
		Table:    events.TableBookings,
		Action:   events.ActionUpdate,
		RowID:    b.ID,
		ClientID: b.ClientID,
		Status:   b.Status,
	})

	return b, nil
}
