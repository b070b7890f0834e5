package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Medicine struct {
	BaseModel
	Name           string          `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Category       string          `gorm:"type:varchar(50);not null;index" json:"category" validate:"required"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity       int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	BatchNumber    string          `gorm:"type:varchar(50)" json:"batch_number,omitempty"`
	ExpirationDate time.Time       `gorm:"type:date;not null;index" json:"expiration_date" validate:"required"`

	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// IsExpired compares the expiration date with the calendar day of now.
func (m *Medicine) IsExpired(now time.Time) bool {
	y, mo, d := now.Date()
	today := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	ey, emo, ed := m.ExpirationDate.Date()
	return time.Date(ey, emo, ed, 0, 0, 0, 0, time.UTC).Before(today)
}

func (m *Medicine) SupplierName() string {
	if m.Supplier == nil {
		return ""
	}
	return m.Supplier.Name
}
