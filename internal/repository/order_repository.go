package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/itseyans/ruric/internal/model"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count orders failed: %w", err)
	}
	return count, nil
}
