package realtime

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	domainmsg "github.com/handykonnect/handykonnect-api/internal/domain/message"
	"github.com/handykonnect/handykonnect-api/internal/events"
)

// Notification is what a connected browser receives for one change-stream
// event: the raw change plus a toast-ready description.
type Notification struct {
	Table       string `json:"table"`
	Action      string `json:"action"`
	RowID       uint   `json:"row_id"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description"`
}

// Hub fans change events out to websocket connections. Admins see every
// event; clients only see rows scoped to them. Delivery is at-most-once: a
// slow consumer's connection is dropped rather than buffered without bound.
type Hub struct {
	clients    map[*Client]bool
	notify     chan events.Change
	register   chan *Client
	unregister chan *Client
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		notify:     make(chan events.Change, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("realtime client connected",
				zap.Uint("user_id", client.userID),
				zap.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("realtime client disconnected",
					zap.Uint("user_id", client.userID),
					zap.Int("clients", len(h.clients)))
			}

		case change := <-h.notify:
			h.dispatch(change)
		}
	}
}

// Notify queues a change for fan-out. Never blocks the caller.
func (h *Hub) Notify(change events.Change) {
	select {
	case h.notify <- change:
	default:
		h.log.Warn("realtime queue full, dropping event", zap.String("table", change.Table))
	}
}

func (h *Hub) dispatch(change events.Change) {
	payload, err := json.Marshal(buildNotification(change))
	if err != nil {
		h.log.Warn("notification marshal failed", zap.Error(err))
		return
	}

	for client := range h.clients {
		if !client.canSee(change) {
			continue
		}
		select {
		case client.send <- payload:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func buildNotification(change events.Change) Notification {
	n := Notification{
		Table:  change.Table,
		Action: change.Action,
		RowID:  change.RowID,
		Status: change.Status,
	}

	switch {
	case change.Table == events.TableBookings && change.Action == events.ActionInsert:
		n.Description = "Your booking has been created successfully!"
	case change.Table == events.TableBookings:
		n.Description = fmt.Sprintf("Your booking status has been updated to: %s", change.Status)
	case change.Table == events.TablePayments:
		n.Description = fmt.Sprintf("Payment status: %s", change.Status)
	case change.Table == events.TableMessages:
		n.Description = "New message received"
	}

	return n
}

func canSeeChange(userID uint, role string, change events.Change) bool {
	if role == actor.RoleAdmin {
		return true
	}

	switch change.Table {
	case events.TableMessages:
		return domainmsg.IsSupportConversationOf(change.ConversationID, userID)
	default:
		return change.ClientID == userID
	}
}
