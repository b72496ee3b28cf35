package payment

import "github.com/handykonnect/handykonnect-api/internal/httperr"

// ===============================
// Payment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// ===============================
// Methods
// ===============================

type Method string

const (
	MethodCard    Method = "card"
	MethodBank    Method = "bank"
	MethodBitcoin Method = "bitcoin"
)

func IsManualMethod(m Method) bool {
	return m == MethodBank || m == MethodBitcoin
}

// ===============================
// Validations
// ===============================

// CanComplete: only a pending payment can be settled.
func CanComplete(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanFail: only a pending payment can fail.
func CanFail(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanRefund: a refund is only legal from completed. failed and refunded are
// terminal.
func CanRefund(current Status) error {
	if current != StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
