package message

import (
	"fmt"
	"strings"

	"github.com/handykonnect/handykonnect-api/internal/httperr"
)

// SupportConversationID derives the support-chat key for a client. One
// support thread per client, addressable without a lookup.
func SupportConversationID(clientID uint) string {
	return fmt.Sprintf("support_%d", clientID)
}

// IsSupportConversationOf reports whether convID is the support thread owned
// by clientID.
func IsSupportConversationOf(convID string, clientID uint) bool {
	return convID == SupportConversationID(clientID)
}

// ValidateContent rejects empty or whitespace-only message bodies before
// anything is persisted.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return httperr.ErrBusiness("empty_message")
	}
	return nil
}
