package message_test

import (
	"testing"

	domain "github.com/handykonnect/handykonnect-api/internal/domain/message"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
)

func TestSupportConversationID(t *testing.T) {
	if got := domain.SupportConversationID(42); got != "support_42" {
		t.Errorf("got %q", got)
	}

	if !domain.IsSupportConversationOf("support_42", 42) {
		t.Error("client should own their own thread")
	}
	if domain.IsSupportConversationOf("support_42", 7) {
		t.Error("client must not own another client's thread")
	}
	if domain.IsSupportConversationOf("support_420", 42) {
		t.Error("prefix match is not ownership")
	}
}

func TestValidateContent(t *testing.T) {
	if err := domain.ValidateContent("hello"); err != nil {
		t.Fatalf("ValidateContent: %v", err)
	}

	for _, body := range []string{"", "   ", "\n\t  "} {
		err := domain.ValidateContent(body)
		if !httperr.IsBusiness(err, "empty_message") {
			t.Errorf("body %q: expected empty_message, got %v", body, err)
		}
	}
}
