package booking

import (
	"context"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/booking"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

const adminListLimit = 200

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) ForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForClient(ctx, clientID)
}

func (uc *ListBookings) All(
	ctx context.Context,
	act actor.Actor,
) ([]models.Booking, error) {
	if !act.IsAdmin() {
		return nil, httperr.ErrBusiness("admin_access_required")
	}
	return uc.repo.ListBookings(ctx, adminListLimit)
}
