// Package event defines the wire shape of the inbox notification queue.
package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/itseyans/ruric/internal/model"
)

type Meta struct {
	EventID   string    `json:"event_id"`
	EmittedAt time.Time `json:"emitted_at"`
}

// InboxNotification tells an employee's inbox that a new message landed.
type InboxNotification struct {
	Meta       Meta           `json:"meta"`
	EmployeeID uint           `json:"employee_id"`
	SenderID   uint           `json:"sender_id"`
	Channel    model.ChatType `json:"channel"`
}

func NewInboxNotification(employeeID, senderID uint, channel model.ChatType) InboxNotification {
	return InboxNotification{
		Meta: Meta{
			EventID:   uuid.NewString(),
			EmittedAt: time.Now().UTC(),
		},
		EmployeeID: employeeID,
		SenderID:   senderID,
		Channel:    channel,
	}
}
