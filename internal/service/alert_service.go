package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"go-pharmacy-dashboard/internal/model"
	"go-pharmacy-dashboard/internal/repository"

	"github.com/google/uuid"
)

// Publisher delivers a serialized event to connected dashboards.
type Publisher interface {
	Publish(msg []byte)
}

type AlertService interface {
	// Scan returns a notification for every low-stock item.
	Scan() ([]model.Notification, error)
	// Check publishes notifications that were not already sent for the
	// same stock level and returns how many went out.
	Check() (int, error)
	// Run calls Check every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}

type alertService struct {
	inventoryRepo repository.InventoryRepository
	publisher     Publisher

	mu   sync.Mutex
	sent map[uuid.UUID]int // medicine -> stock level already announced
}

func NewAlertService(inventoryRepo repository.InventoryRepository, publisher Publisher) AlertService {
	return &alertService{
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
		sent:          make(map[uuid.UUID]int),
	}
}

func lowStockNotification(item *model.InventoryItem) model.Notification {
	name := item.Medicine.Name
	return model.Notification{
		Type:  model.NotificationLowStock,
		Title: fmt.Sprintf("Low Stock Alert: %s", name),
		Message: fmt.Sprintf("The stock for %s has fallen to %d units (reorder level: %d). Please reorder soon.",
			name, item.CurrentStock, item.ReorderLevel),
		Priority:   model.LowStockPriority(item.CurrentStock, item.ReorderLevel),
		MedicineID: item.MedicineID,
	}
}

func (s *alertService) Scan() ([]model.Notification, error) {
	items, err := s.inventoryRepo.FindLowStock()
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	notifications := make([]model.Notification, 0, len(items))
	for i := range items {
		notifications = append(notifications, lowStockNotification(&items[i]))
	}
	return notifications, nil
}

func (s *alertService) Check() (int, error) {
	items, err := s.inventoryRepo.FindLowStock()
	if err != nil {
		return 0, fmt.Errorf("low stock items: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	low := make(map[uuid.UUID]bool, len(items))
	published := 0
	for i := range items {
		item := &items[i]
		low[item.MedicineID] = true
		if stock, ok := s.sent[item.MedicineID]; ok && stock == item.CurrentStock {
			continue
		}

		payload := map[string]interface{}{
			"type":         "notification",
			"notification": lowStockNotification(item),
		}
		msg, err := json.Marshal(payload)
		if err != nil {
			return published, err
		}
		s.publisher.Publish(msg)
		s.sent[item.MedicineID] = item.CurrentStock
		published++
	}

	// restocked items may alert again later
	for id := range s.sent {
		if !low[id] {
			delete(s.sent, id)
		}
	}
	return published, nil
}

func (s *alertService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if n, err := s.Check(); err != nil {
			log.Printf("Warning: low stock check failed: %v", err)
		} else if n > 0 {
			log.Printf("Published %d low stock alerts", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
