package model

import "time"

// ChatType tags which pair of roles a ledger row flows between. The services
// writing the row supply the tag; the store never infers it.
type ChatType string

const (
	ChatTypeClientAI       ChatType = "client_ai"
	ChatTypeClientEmployee ChatType = "client_employee"
	ChatTypeEmployeeClient ChatType = "employee_client"
	ChatTypeAdminEmployee  ChatType = "admin_employee"
	ChatTypeSystem         ChatType = "system"
)

// ChatMessage is one row of the append-only chat ledger. Rows are never
// updated or deleted.
type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index:idx_chat_pair" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index:idx_chat_pair" json:"receiver_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	ChatType   ChatType  `gorm:"size:32;not null;index" json:"chat_type"`
	CreatedAt  time.Time `json:"created_at"`
}
