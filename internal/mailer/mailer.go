package mailer

import "github.com/handykonnect/handykonnect-api/internal/models"

// ===============================
// Email Dispatch
// ===============================

type TransactionAlert struct {
	Type          string  // "payment" or "booking"
	Status        string
	Amount        float64
	ServiceName   string
	BookingDate   string
	CustomerName  string
	CustomerEmail string
	TransactionID string
}

// Mailer delivers transactional email. Every send is fire-and-forget: a
// delivery failure is logged by the implementation and never reaches the
// flow that triggered it.
type Mailer interface {
	// Booking must have Client and Service preloaded.
	SendBookingConfirmation(b *models.Booking)
	SendBookingStatusUpdate(b *models.Booking)
	SendPaymentReceipt(p *models.Payment, b *models.Booking)
	SendTransactionAlert(alert TransactionAlert)
	SendAdminInvitation(email, invitedBy string)
}
