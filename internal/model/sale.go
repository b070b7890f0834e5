package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCard      PaymentMethod = "card"
	PaymentInsurance PaymentMethod = "insurance"
	PaymentTransfer  PaymentMethod = "transfer"
	PaymentLumicash  PaymentMethod = "lumicash"
)

var paymentMethodNames = map[PaymentMethod]string{
	PaymentCash:      "Espèces",
	PaymentCard:      "Carte Bancaire",
	PaymentInsurance: "Assurance",
	PaymentTransfer:  "Virement",
	PaymentLumicash:  "Lumicash",
}

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentInsurance, PaymentTransfer, PaymentLumicash}

// DisplayName returns the label printed on reports and invoices.
func (p PaymentMethod) DisplayName() string {
	if name, ok := paymentMethodNames[p]; ok {
		return name
	}
	return string(p)
}

type Sale struct {
	BaseModel
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Discount      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"discount"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null;default:cash" json:"payment_method" validate:"required,oneof=cash card insurance transfer lumicash"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Items         []SaleItem      `json:"items,omitempty"`
}

// FinalAmount is the total after discount.
func (s *Sale) FinalAmount() decimal.Decimal {
	return s.TotalAmount.Sub(s.Discount)
}

// ItemsTotal sums the line totals of the loaded items.
func (s *Sale) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for i := range s.Items {
		sum = sum.Add(s.Items[i].Total())
	}
	return sum
}

type SaleItem struct {
	BaseModel
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	MedicineID uuid.UUID       `gorm:"type:uuid;not null" json:"medicine_id" validate:"uuid_required"`
	Medicine   Medicine        `json:"medicine" validate:"-"`
	Quantity   int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}

// Total is quantity times unit price.
func (i *SaleItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
