package repository

import (
	"time"

	"go-pharmacy-dashboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindBetween(start, end time.Time) ([]model.Sale, error)
	Create(sale *model.Sale) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Items").Preload("Items.Medicine").Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Items").Preload("Items.Medicine").First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// FindBetween returns sales with start <= date < end, oldest first
func (r *saleRepo) FindBetween(start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Where("date >= ? AND date < ?", start, end).Order("date ASC").Find(&sales).Error
	return sales, err
}

// Create saves the sale and its items in one transaction
func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(sale).Error
	})
}
