package model

import "github.com/google/uuid"

// DefaultReorderLevel is used when an item is created without one.
const DefaultReorderLevel = 10

// InventoryItem tracks stock for exactly one medicine.
type InventoryItem struct {
	BaseModel
	MedicineID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"medicine_id" validate:"uuid_required"`
	Medicine     Medicine  `json:"medicine" validate:"-"`
	CurrentStock int       `gorm:"not null;default:0" json:"current_stock" validate:"gte=0"`
	ReorderLevel int       `gorm:"not null;default:10" json:"reorder_level" validate:"gte=0"`
}

// IsLowStock reports whether stock is at or below the reorder level.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.ReorderLevel
}
