package repository

import (
	"go-pharmacy-dashboard/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindAll() ([]model.InventoryItem, error)
	FindLowStock() ([]model.InventoryItem, error)
	GetStats() (*InventoryStats, error)
	Create(item *model.InventoryItem) error
}

// InventoryStats untuk overview cards
type InventoryStats struct {
	TotalItems     int64           `json:"total_items"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindAll() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Medicine").Preload("Medicine.Supplier").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindLowStock() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Medicine").
		Where("current_stock <= reorder_level").
		Order("current_stock ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) GetStats() (*InventoryStats, error) {
	var stats InventoryStats

	if err := r.db.Model(&model.InventoryItem{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.InventoryItem{}).
		Where("current_stock <= reorder_level").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	// SUM(stock * price), joined on the medicine price
	err := r.db.Model(&model.InventoryItem{}).
		Joins("JOIN medicines ON medicines.id = inventory_items.medicine_id AND medicines.deleted_at IS NULL").
		Select("COALESCE(SUM(inventory_items.current_stock * medicines.price), 0)").
		Row().
		Scan(&stats.TotalValuation)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *inventoryRepo) Create(item *model.InventoryItem) error {
	return r.db.Create(item).Error
}
