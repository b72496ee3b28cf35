package events

// ===============================
// Change Stream
// ===============================

const (
	TableBookings = "bookings"
	TablePayments = "payments"
	TableMessages = "messages"

	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
)

// Change is one row-level event on the stream. ClientID scopes delivery to
// the affected user; ConversationID is set for message events only.
type Change struct {
	Table          string `json:"table"`
	Action         string `json:"action"`
	RowID          uint   `json:"row_id"`
	ClientID       uint   `json:"client_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	Status         string `json:"status,omitempty"`
}

func channelFor(table string) string {
	return "events:" + table
}

// Publisher is what the lifecycle usecases see. Publishing must never fail
// the triggering operation.
type Publisher interface {
	Publish(change Change)
}
