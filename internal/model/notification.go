package model

import "github.com/google/uuid"

type NotificationType string

const (
	NotificationLowStock NotificationType = "low_stock"
	NotificationSale     NotificationType = "sale"
	NotificationSystem   NotificationType = "system"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// LowStockPriority grades how urgent a reorder is: empty shelves are
// critical, half the reorder level or less is high.
func LowStockPriority(stock, reorderLevel int) Priority {
	switch {
	case stock == 0:
		return PriorityCritical
	case float64(stock) <= float64(reorderLevel)/2:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Notification is pushed to connected dashboards. It is not persisted by
// this service.
type Notification struct {
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Priority   Priority         `json:"priority"`
	MedicineID uuid.UUID        `json:"medicine_id"`
}
