package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/itseyans/ruric/internal/model"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(record *model.Attendance) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("create attendance record failed: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) ListByEmployee(employeeID uint) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.Where("employee_id = ?", employeeID).Order("date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list attendance records failed: %w", err)
	}
	return records, nil
}

func (r *AttendanceRepository) CountPresentToday() (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("date = CURDATE() AND status = ?", "Present").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count present today failed: %w", err)
	}
	return count, nil
}
