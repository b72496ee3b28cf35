package realtime

import (
	"strings"
	"testing"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/events"
)

func TestCanSeeChange(t *testing.T) {
	cases := []struct {
		name   string
		userID uint
		role   string
		change events.Change
		want   bool
	}{
		{
			"admin sees any booking",
			1, actor.RoleAdmin,
			events.Change{Table: events.TableBookings, ClientID: 99},
			true,
		},
		{
			"admin sees any message",
			1, actor.RoleAdmin,
			events.Change{Table: events.TableMessages, ConversationID: "support_99"},
			true,
		},
		{
			"client sees own booking",
			7, actor.RoleClient,
			events.Change{Table: events.TableBookings, ClientID: 7},
			true,
		},
		{
			"client does not see another client's booking",
			7, actor.RoleClient,
			events.Change{Table: events.TableBookings, ClientID: 8},
			false,
		},
		{
			"client sees own payment",
			7, actor.RoleClient,
			events.Change{Table: events.TablePayments, ClientID: 7},
			true,
		},
		{
			"client sees own support thread",
			7, actor.RoleClient,
			events.Change{Table: events.TableMessages, ConversationID: "support_7"},
			true,
		},
		{
			"client does not see another support thread",
			7, actor.RoleClient,
			events.Change{Table: events.TableMessages, ConversationID: "support_8"},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canSeeChange(tc.userID, tc.role, tc.change); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuildNotification(t *testing.T) {
	t.Run("new booking", func(t *testing.T) {
		n := buildNotification(events.Change{
			Table:  events.TableBookings,
			Action: events.ActionInsert,
			RowID:  10,
		})
		if n.Description != "Your booking has been created successfully!" {
			t.Errorf("description %q", n.Description)
		}
	})

	t.Run("booking status change carries the new status", func(t *testing.T) {
		n := buildNotification(events.Change{
			Table:  events.TableBookings,
			Action: events.ActionUpdate,
			RowID:  10,
			Status: "confirmed",
		})
		if !strings.Contains(n.Description, "confirmed") {
			t.Errorf("description %q", n.Description)
		}
	})

	t.Run("payment change carries the payment status", func(t *testing.T) {
		n := buildNotification(events.Change{
			Table:  events.TablePayments,
			Action: events.ActionUpdate,
			Status: "refunded",
		})
		if !strings.Contains(n.Description, "refunded") {
			t.Errorf("description %q", n.Description)
		}
	})

	t.Run("message change", func(t *testing.T) {
		n := buildNotification(events.Change{
			Table:  events.TableMessages,
			Action: events.ActionInsert,
		})
		if n.Description != "New message received" {
			t.Errorf("description %q", n.Description)
		}
	})
}
