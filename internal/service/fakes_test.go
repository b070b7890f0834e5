package service

import (
	"sync"
	"time"

	"go-pharmacy-dashboard/internal/model"
	"go-pharmacy-dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeSaleRepo struct {
	sales []model.Sale
	err   error
}

func (r *fakeSaleRepo) FindAll() ([]model.Sale, error) { return r.sales, r.err }

func (r *fakeSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSaleRepo) FindBetween(start, end time.Time) ([]model.Sale, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Sale
	for _, s := range r.sales {
		if !s.Date.Before(start) && s.Date.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Create(sale *model.Sale) error {
	r.sales = append(r.sales, *sale)
	return nil
}

type fakeInventoryRepo struct {
	mu    sync.Mutex
	items []model.InventoryItem
	err   error
}

func (r *fakeInventoryRepo) FindAll() ([]model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.InventoryItem(nil), r.items...), r.err
}

func (r *fakeInventoryRepo) FindLowStock() ([]model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InventoryItem
	for _, it := range r.items {
		if it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out, r.err
}

func (r *fakeInventoryRepo) GetStats() (*repository.InventoryStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	stats := &repository.InventoryStats{TotalValuation: decimal.Zero}
	for _, it := range r.items {
		stats.TotalItems++
		if it.IsLowStock() {
			stats.LowStockCount++
		}
		stats.TotalValuation = stats.TotalValuation.Add(it.Medicine.Price.Mul(decimal.NewFromInt(int64(it.CurrentStock))))
	}
	return stats, nil
}

func (r *fakeInventoryRepo) Create(item *model.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeInventoryRepo) setStock(medicineID uuid.UUID, stock int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].MedicineID == medicineID {
			r.items[i].CurrentStock = stock
		}
	}
}

type fakeMedicineRepo struct {
	medicines []model.Medicine
	err       error
}

func (r *fakeMedicineRepo) FindAll() ([]model.Medicine, error) { return r.medicines, r.err }

func (r *fakeMedicineRepo) FindExpired(asOf time.Time) ([]model.Medicine, error) {
	var out []model.Medicine
	for _, m := range r.medicines {
		if m.IsExpired(asOf) {
			out = append(out, m)
		}
	}
	return out, r.err
}

func (r *fakeMedicineRepo) FindByName(name string) (*model.Medicine, error) {
	for i := range r.medicines {
		if r.medicines[i].Name == name {
			return &r.medicines[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMedicineRepo) Create(m *model.Medicine) error {
	r.medicines = append(r.medicines, *m)
	return nil
}

type fakeUserRepo struct {
	users []model.User
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByRole(role string) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Role == role && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(u *model.User) error {
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) UpdatePassword(uuid.UUID, string) error { return nil }
func (r *fakeUserRepo) UpdateLastSeen(uuid.UUID) error         { return nil }

type fakePublisher struct {
	mu   sync.Mutex
	msgs [][]byte
}

func (p *fakePublisher) Publish(msg []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.msgs)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func medicine(name, category, price string, expires time.Time) model.Medicine {
	m := model.Medicine{
		Name:           name,
		Category:       category,
		Price:          dec(price),
		Quantity:       100,
		ExpirationDate: expires,
	}
	m.ID = uuid.New()
	return m
}

func stockItem(m model.Medicine, stock, reorder int) model.InventoryItem {
	it := model.InventoryItem{MedicineID: m.ID, Medicine: m, CurrentStock: stock, ReorderLevel: reorder}
	it.ID = uuid.New()
	return it
}

func sale(date time.Time, total, discount string, method model.PaymentMethod) model.Sale {
	s := model.Sale{
		CustomerName:  "Client",
		TotalAmount:   dec(total),
		Discount:      dec(discount),
		PaymentMethod: method,
		Date:          date,
	}
	s.ID = uuid.New()
	return s
}

func pharmacist(first string) model.User {
	u := model.User{Email: first + "@pharmacy.com", FirstName: first, Role: model.RolePharmacist, IsActive: true}
	u.ID = uuid.New()
	return u
}
