package payment_test

import (
	"testing"

	domain "github.com/handykonnect/handykonnect-api/internal/domain/payment"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/models"
)

func TestStatusGuards(t *testing.T) {
	cases := []struct {
		name  string
		check func(domain.Status) error
		from  domain.Status
		ok    bool
	}{
		{"complete from pending", domain.CanComplete, domain.StatusPending, true},
		{"complete from completed", domain.CanComplete, domain.StatusCompleted, false},
		{"complete from failed", domain.CanComplete, domain.StatusFailed, false},
		{"fail from pending", domain.CanFail, domain.StatusPending, true},
		{"fail from refunded", domain.CanFail, domain.StatusRefunded, false},
		{"refund from completed", domain.CanRefund, domain.StatusCompleted, true},
		{"refund from pending", domain.CanRefund, domain.StatusPending, false},
		{"refund from failed", domain.CanRefund, domain.StatusFailed, false},
		{"refund twice", domain.CanRefund, domain.StatusRefunded, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.ok && err != nil {
				t.Fatalf("expected legal, got %v", err)
			}
			if !tc.ok && !httperr.IsBusiness(err, "invalid_state") {
				t.Fatalf("expected invalid_state, got %v", err)
			}
		})
	}
}

func TestDomainActions(t *testing.T) {
	t.Run("complete then refund", func(t *testing.T) {
		p := &models.Payment{Status: string(domain.StatusPending)}
		if err := domain.Complete(p); err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if p.Status != string(domain.StatusCompleted) {
			t.Fatalf("status %s", p.Status)
		}
		if err := domain.Refund(p); err != nil {
			t.Fatalf("Refund: %v", err)
		}
		if p.Status != string(domain.StatusRefunded) {
			t.Fatalf("status %s", p.Status)
		}
	})

	t.Run("fail leaves a terminal payment", func(t *testing.T) {
		p := &models.Payment{Status: string(domain.StatusPending)}
		if err := domain.Fail(p); err != nil {
			t.Fatalf("Fail: %v", err)
		}
		if err := domain.Complete(p); err == nil {
			t.Fatal("completed a failed payment")
		}
		if err := domain.Refund(p); err == nil {
			t.Fatal("refunded a failed payment")
		}
	})
}

func TestIsManualMethod(t *testing.T) {
	if domain.IsManualMethod(domain.MethodCard) {
		t.Error("card is not a manual method")
	}
	if !domain.IsManualMethod(domain.MethodBank) {
		t.Error("bank is a manual method")
	}
	if !domain.IsManualMethod(domain.MethodBitcoin) {
		t.Error("bitcoin is a manual method")
	}
}
