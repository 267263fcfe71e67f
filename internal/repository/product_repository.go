package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/itseyans/ruric/internal/model"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListNewestFirst() ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products failed: %w", err)
	}
	return products, nil
}
