package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-pharmacy-dashboard/internal/model"
)

func TestAlertScan(t *testing.T) {
	far := time.Now().AddDate(1, 0, 0)
	empty := medicine("Empty", "c", "1", far)
	half := medicine("Half", "c", "1", far)
	near := medicine("Near", "c", "1", far)
	fine := medicine("Fine", "c", "1", far)
	inv := &fakeInventoryRepo{items: []model.InventoryItem{
		stockItem(empty, 0, 10),
		stockItem(half, 5, 10),
		stockItem(near, 9, 10),
		stockItem(fine, 50, 10),
	}}

	notifications, err := NewAlertService(inv, &fakePublisher{}).Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(notifications) != 3 {
		t.Fatalf("got %d notifications, want 3", len(notifications))
	}
	want := []model.Priority{model.PriorityCritical, model.PriorityHigh, model.PriorityMedium}
	for i, n := range notifications {
		if n.Type != model.NotificationLowStock {
			t.Errorf("%d: type = %q", i, n.Type)
		}
		if n.Priority != want[i] {
			t.Errorf("%d: priority = %q, want %q", i, n.Priority, want[i])
		}
	}
	if notifications[1].Title != "Low Stock Alert: Half" {
		t.Errorf("title = %q", notifications[1].Title)
	}
}

func TestAlertCheckDedupes(t *testing.T) {
	far := time.Now().AddDate(1, 0, 0)
	m := medicine("Insulin", "Hormone", "40", far)
	inv := &fakeInventoryRepo{items: []model.InventoryItem{stockItem(m, 4, 10)}}
	pub := &fakePublisher{}
	svc := NewAlertService(inv, pub)

	if n, err := svc.Check(); err != nil || n != 1 {
		t.Fatalf("first Check = %d, %v", n, err)
	}
	if n, _ := svc.Check(); n != 0 {
		t.Errorf("repeat Check published %d", n)
	}

	inv.setStock(m.ID, 2)
	if n, _ := svc.Check(); n != 1 {
		t.Errorf("Check after stock change published %d, want 1", n)
	}

	// restock then drop again: alerts anew
	inv.setStock(m.ID, 40)
	if n, _ := svc.Check(); n != 0 {
		t.Errorf("Check after restock published %d", n)
	}
	inv.setStock(m.ID, 2)
	if n, _ := svc.Check(); n != 1 {
		t.Errorf("Check after second drop published %d, want 1", n)
	}

	if pub.count() != 3 {
		t.Fatalf("publisher got %d messages, want 3", pub.count())
	}
	var payload struct {
		Type         string             `json:"type"`
		Notification model.Notification `json:"notification"`
	}
	if err := json.Unmarshal(pub.msgs[0], &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Type != "notification" || payload.Notification.MedicineID != m.ID {
		t.Errorf("payload = %+v", payload)
	}
}

func TestAlertRunStopsOnCancel(t *testing.T) {
	far := time.Now().AddDate(1, 0, 0)
	inv := &fakeInventoryRepo{items: []model.InventoryItem{stockItem(medicine("X", "c", "1", far), 1, 10)}}
	pub := &fakePublisher{}
	svc := NewAlertService(inv, pub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, time.Hour)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for pub.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("no alert published by the first check")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
