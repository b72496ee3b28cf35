package payment

import (
	"context"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

const adminListLimit = 200

type ListPayments struct {
	repo domain.Repository
}

func NewListPayments(repo domain.Repository) *ListPayments {
	return &ListPayments{repo: repo}
}

func (uc *ListPayments) ForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Payment, error) {
	return uc.repo.ListPaymentsForClient(ctx, clientID)
}

func (uc *ListPayments) All(
	ctx context.Context,
	act actor.Actor,
) ([]models.Payment, error) {
	if !act.IsAdmin() {
		return nil, httperr.ErrBusiness("admin_access_required")
	}
	return uc.repo.ListPayments(ctx, adminListLimit)
}
