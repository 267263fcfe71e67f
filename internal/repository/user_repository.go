package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/itseyans/ruric/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

// ListEmployeesByIDs returns employees whose ids are in the allow-list.
// Non-employee rows and unknown ids are silently dropped.
func (r *UserRepository) ListEmployeesByIDs(ids []uint) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	if err := r.db.Where("role = ? AND id IN ?", model.RoleEmployee, ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list employees by ids failed: %w", err)
	}
	return users, nil
}

func (r *UserRepository) ListByRole(role string) ([]model.User, error) {
	var users []model.User
	if err := r.db.Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users by role failed: %w", err)
	}
	return users, nil
}

func (r *UserRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count users by role failed: %w", err)
	}
	return count, nil
}
