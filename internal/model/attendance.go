package model

import "time"

type Attendance struct {
	ID         uint       `gorm:"primaryKey" json:"attendance_id"`
	EmployeeID uint       `gorm:"not null;index" json:"employee_id"`
	Date       time.Time  `gorm:"type:date;not null" json:"date"`
	TimeIn     *time.Time `json:"time_in"`
	TimeOut    *time.Time `json:"time_out"`
	Status     string     `gorm:"size:16;not null" json:"status"`
}
