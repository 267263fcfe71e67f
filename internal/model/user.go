package model

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"user_id"`
	FullName     string    `gorm:"size:128;not null" json:"full_name"`
	Email        string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Phone        string    `gorm:"size:32" json:"phone"`
	Address      string    `gorm:"size:256" json:"address"`
	Role         string    `gorm:"size:16;not null;index;default:client" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
