package payment

import "github.com/handykonnect/handykonnect-api/internal/models"

// ===============================
// Domain Actions
// ===============================

func Complete(p *models.Payment) error {
	if err := CanComplete(Status(p.Status)); err != nil {
		return err
	}
	p.Status = string(StatusCompleted)
	return nil
}

func Fail(p *models.Payment) error {
	if err := CanFail(Status(p.Status)); err != nil {
		return err
	}
	p.Status = string(StatusFailed)
	return nil
}

func Refund(p *models.Payment) error {
	if err := CanRefund(Status(p.Status)); err != nil {
		return err
	}
	p.Status = string(StatusRefunded)
	return nil
}
