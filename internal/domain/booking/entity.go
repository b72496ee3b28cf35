package booking

import (
	"time"

	"github.com/handykonnect/handykonnect-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Transition(b *models.Booking, target Status, now time.Time) error {
	if err := CanTransition(Status(b.Status), target); err != nil {
		return err
	}

	b.Status = string(target)
	switch target {
	case StatusCancelled:
		b.CancelledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}
	return nil
}

// ForceCancel overrides the transition table. Used by the refund path, which
// cancels the booking regardless of how far its lifecycle has advanced.
func ForceCancel(b *models.Booking, now time.Time) {
	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
}
