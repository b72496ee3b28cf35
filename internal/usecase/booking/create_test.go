package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	bookingdomain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
	ucBooking "github.com/handykonnect/handykonnect-api/internal/usecase/booking"
)

func TestCreateBooking(t *testing.T) {
	client := actor.Actor{ID: 7, Role: actor.RoleClient}

	setup := func() (*ucBooking.CreateBooking, *repoMock, *mailerMock, *publisherMock) {
		repo := newRepoMock()
		mail := &mailerMock{}
		pub := &publisherMock{}
		uc := ucBooking.NewCreateBooking(repo, newTestDispatcher(), mail, pub)
		return uc, repo, mail, pub
	}

	t.Run("Given an active service and a future slot Then the booking starts pending", func(t *testing.T) {
		uc, repo, mail, pub := setup()
		repo.addService(&models.Service{ID: 1, Name: "Electrical Inspection", Price: 120.00, Active: true})

		b, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
			Actor:       client,
			ServiceID:   1,
			ScheduledAt: time.Now().Add(72 * time.Hour),
			Address:     "12 Main St",
			Notes:       "gate code 4411",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}

		if b.Status != string(bookingdomain.StatusPending) {
			t.Errorf("status %s", b.Status)
		}
		if b.ClientID != client.ID {
			t.Errorf("client id %d", b.ClientID)
		}
		if mail.confirmations != 1 {
			t.Errorf("confirmations %d", mail.confirmations)
		}
		if len(mail.alerts) != 1 || mail.alerts[0].Type != "booking" {
			t.Errorf("alerts %+v", mail.alerts)
		}
		if len(pub.changes) != 1 || pub.changes[0].Table != events.TableBookings || pub.changes[0].Action != events.ActionInsert {
			t.Errorf("events %+v", pub.changes)
		}
	})

	t.Run("Given an unknown service Then the booking is rejected", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
			Actor:       client,
			ServiceID:   99,
			ScheduledAt: time.Now().Add(time.Hour),
			Address:     "12 Main St",
		})
		if !httperr.IsBusiness(err, "service_not_found") {
			t.Fatalf("expected service_not_found, got %v", err)
		}
	})

	t.Run("Given a deactivated service Then the booking is rejected", func(t *testing.T) {
		uc, repo, _, _ := setup()
		repo.addService(&models.Service{ID: 1, Name: "Retired Service", Active: false})

		_, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
			Actor:       client,
			ServiceID:   1,
			ScheduledAt: time.Now().Add(time.Hour),
			Address:     "12 Main St",
		})
		if !httperr.IsBusiness(err, "service_inactive") {
			t.Fatalf("expected service_inactive, got %v", err)
		}
	})

	t.Run("Given a slot in the past Then the booking is rejected", func(t *testing.T) {
		uc, repo, _, pub := setup()
		repo.addService(&models.Service{ID: 1, Name: "Electrical Inspection", Active: true})

		_, err := uc.Execute(context.Background(), ucBooking.CreateBookingInput{
			Actor:       client,
			ServiceID:   1,
			ScheduledAt: time.Now().Add(-time.Minute),
			Address:     "12 Main St",
		})
		if !httperr.IsBusiness(err, "invalid_schedule") {
			t.Fatalf("expected invalid_schedule, got %v", err)
		}
		if len(pub.changes) != 0 {
			t.Error("event published for a rejected booking")
		}
	})
}
