package processor

import "context"

// ===============================
// Payment Processor
// ===============================

type Intent struct {
	ID           string
	ClientSecret string
}

type IntentStatus string

const (
	IntentSucceeded IntentStatus = "succeeded"
	IntentFailed    IntentStatus = "failed"
)

type RefundResult struct {
	ID     string
	Status string
}

// PaymentProcessor is the external gateway contract: mint an intent with a
// client-usable secret, read back its final status, refund by intent id.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (IntentStatus, error)
	Refund(ctx context.Context, intentID string) (*RefundResult, error)
}
