package model

import "time"

// Assignment maps a client to the employee handling their escalated
// conversation. At most one live row per client; a new escalation for the
// same client overwrites the employee and refreshes the timestamp.
type Assignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClientID   uint      `gorm:"not null;uniqueIndex" json:"client_id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	AssignedAt time.Time `gorm:"not null" json:"assigned_at"`
}
