package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/itseyans/ruric/internal/model"
)

type AssignmentRepository struct {
	db *gorm.DB
}

// AssignmentView is the assignment joined with the employee's name.
type AssignmentView struct {
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
}

// AssignedClient is one row of an employee's roster.
type AssignedClient struct {
	UserID     uint      `json:"user_id"`
	FullName   string    `json:"full_name"`
	AssignedAt time.Time `json:"assigned_at"`
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// UpsertWithTrace writes the assignment and its system trace row in one
// transaction. The upsert is keyed on client_id: an existing row gets the
// new employee and a refreshed timestamp, never a second row.
func (r *AssignmentRepository) UpsertWithTrace(clientID, employeeID uint, trace *model.ChatMessage) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		assignment := model.Assignment{
			ClientID:   clientID,
			EmployeeID: employeeID,
			AssignedAt: time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "client_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"employee_id": employeeID,
				"assigned_at": time.Now(),
			}),
		}).Create(&assignment).Error; err != nil {
			return err
		}
		return tx.Create(trace).Error
	})
	if err != nil {
		return fmt.Errorf("upsert assignment failed: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) GetByClient(clientID uint) (*AssignmentView, error) {
	var view AssignmentView
	err := r.db.Model(&model.Assignment{}).
		Select("assignments.employee_id, users.full_name AS employee_name").
		Joins("JOIN users ON users.id = assignments.employee_id").
		Where("assignments.client_id = ?", clientID).
		First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query assignment failed: %w", err)
	}
	return &view, nil
}

func (r *AssignmentRepository) ListClientsByEmployee(employeeID uint) ([]AssignedClient, error) {
	var rows []AssignedClient
	err := r.db.Model(&model.Assignment{}).
		Select("assignments.client_id AS user_id, users.full_name, assignments.assigned_at").
		Joins("JOIN users ON users.id = assignments.client_id").
		Where("assignments.employee_id = ?", employeeID).
		Order("assignments.assigned_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list assigned clients failed: %w", err)
	}
	return rows, nil
}
