package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLowStockPriority(t *testing.T) {
	tests := []struct {
		stock, reorder int
		want           Priority
	}{
		{0, 10, PriorityCritical},
		{5, 10, PriorityHigh},
		{3, 7, PriorityHigh},
		{4, 7, PriorityMedium},
		{10, 10, PriorityMedium},
	}
	for _, tt := range tests {
		if got := LowStockPriority(tt.stock, tt.reorder); got != tt.want {
			t.Errorf("LowStockPriority(%d, %d) = %s, want %s", tt.stock, tt.reorder, got, tt.want)
		}
	}
}

func TestInventoryItemIsLowStock(t *testing.T) {
	item := InventoryItem{CurrentStock: 10, ReorderLevel: 10}
	if !item.IsLowStock() {
		t.Error("stock equal to the reorder level is low")
	}
	item.CurrentStock = 11
	if item.IsLowStock() {
		t.Error("stock above the reorder level is not low")
	}
}

func TestMedicineIsExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		exp  time.Time
		want bool
	}{
		{time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		m := Medicine{ExpirationDate: tt.exp}
		if got := m.IsExpired(now); got != tt.want {
			t.Errorf("IsExpired(%s) = %v, want %v", tt.exp.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestSaleAmounts(t *testing.T) {
	sale := Sale{
		TotalAmount: decimal.RequireFromString("25.50"),
		Discount:    decimal.RequireFromString("2.25"),
		Items: []SaleItem{
			{Quantity: 3, Price: decimal.RequireFromString("4.10")},
			{Quantity: 1, Price: decimal.RequireFromString("13.20")},
		},
	}
	if got := sale.FinalAmount().StringFixed(2); got != "23.25" {
		t.Errorf("FinalAmount = %s, want 23.25", got)
	}
	if got := sale.ItemsTotal().StringFixed(2); got != "25.50" {
		t.Errorf("ItemsTotal = %s, want 25.50", got)
	}
}

func TestPaymentMethodDisplayName(t *testing.T) {
	if got := PaymentCard.DisplayName(); got != "Carte Bancaire" {
		t.Errorf("card = %q", got)
	}
	if got := PaymentMethod("crypto").DisplayName(); got != "crypto" {
		t.Errorf("unknown method = %q", got)
	}
}

func TestUserPassword(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "L", Role: RoleAdmin}
	if err := u.SetPassword("secret1"); err != nil {
		t.Fatal(err)
	}
	if !u.CheckPassword("secret1") || u.CheckPassword("nope") {
		t.Error("password check mismatch")
	}
	if u.FullName() != "Ada L" || !u.IsAdmin() || u.IsPharmacist() {
		t.Errorf("unexpected user helpers: %q", u.FullName())
	}
}
