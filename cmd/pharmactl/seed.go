package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"go-pharmacy-dashboard/internal/model"
	"go-pharmacy-dashboard/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type seedUser struct {
	email, first, last, role string
}

var seedUsers = []seedUser{
	{"admin@pharmacy.com", "Admin", "", model.RoleAdmin},
	{"marie.dubois@pharmacy.com", "Marie", "Dubois", model.RolePharmacist},
	{"jean.martin@pharmacy.com", "Jean", "Martin", model.RolePharmacist},
	{"sophie.bernard@pharmacy.com", "Sophie", "Bernard", model.RolePharmacist},
}

var seedSuppliers = []model.Supplier{
	{Name: "PharmaCorp Ltd", ContactInfo: "+1-555-0123", Address: "123 Medical Street, New York, NY 10001", Email: "contact@pharmacorp.com", IsActive: true},
	{Name: "MediSupply Inc", ContactInfo: "+1-555-0456", Address: "456 Health Avenue, Los Angeles, CA 90210", Email: "orders@medisupply.com", IsActive: true},
	{Name: "Global Pharma Solutions", ContactInfo: "+1-555-0789", Address: "789 Wellness Blvd, Chicago, IL 60601", Email: "info@globalpharma.com", IsActive: true},
}

type seedMedicine struct {
	name, category, price, batch string
	expiresInDays                int
	supplier                     int // index into seedSuppliers
}

var seedMedicines = []seedMedicine{
	{"Paracetamol 500mg", "Analgesic", "4.50", "PAR-2401", 540, 0},
	{"Ibuprofen 400mg", "Anti-inflammatory", "6.20", "IBU-2402", 420, 0},
	{"Amoxicillin 1g", "Antibiotic", "12.80", "AMX-2311", 200, 1},
	{"Insulin Glargine", "Hormone", "38.00", "INS-2405", 90, 2},
	{"Cetirizine 10mg", "Antihistamine", "5.10", "CET-2209", -30, 1},
	{"Omeprazole 20mg", "Gastric", "7.40", "OME-2212", -5, 2},
}

// seeder mirrors the bootstrap scripts: it only creates what is missing.
type seeder struct {
	users     repository.UserRepository
	suppliers repository.SupplierRepository
	medicines repository.MedicineRepository
	inventory repository.InventoryRepository
	sales     repository.SaleRepository
	rng       *rand.Rand
	now       time.Time
	password  string
}

func newSeeder(db *gorm.DB, password string) *seeder {
	return &seeder{
		users:     repository.NewUserRepo(db),
		suppliers: repository.NewSupplierRepo(db),
		medicines: repository.NewMedicineRepo(db),
		inventory: repository.NewInventoryRepo(db),
		sales:     repository.NewSaleRepo(db),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:       time.Now(),
		password:  password,
	}
}

func (s *seeder) Run() error {
	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"users", s.seedUsers},
		{"suppliers", s.seedSuppliers},
		{"medicines", s.seedMedicines},
		{"inventory items", s.seedInventory},
		{"sales", s.seedSales},
	}
	for _, step := range steps {
		n, err := step.fn()
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		log.Printf("Created %d %s", n, step.name)
	}
	return nil
}

func (s *seeder) seedUsers() (int, error) {
	created := 0
	for _, su := range seedUsers {
		if _, err := s.users.FindByEmail(su.email); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		user := &model.User{Email: su.email, FirstName: su.first, LastName: su.last, Role: su.role, IsActive: true}
		user.CreatedBy = "system"
		if err := user.SetPassword(s.password); err != nil {
			return created, err
		}
		if err := s.users.Create(user); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *seeder) seedSuppliers() (int, error) {
	created := 0
	for _, sup := range seedSuppliers {
		if _, err := s.suppliers.FindByName(sup.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		sup := sup
		if err := s.suppliers.Create(&sup); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *seeder) seedMedicines() (int, error) {
	created := 0
	for _, sm := range seedMedicines {
		if _, err := s.medicines.FindByName(sm.name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		m := &model.Medicine{
			Name:           sm.name,
			Category:       sm.category,
			Price:          decimal.RequireFromString(sm.price),
			Quantity:       s.rng.IntN(96) + 5,
			BatchNumber:    sm.batch,
			ExpirationDate: s.now.AddDate(0, 0, sm.expiresInDays),
		}
		if sup, err := s.suppliers.FindByName(seedSuppliers[sm.supplier].Name); err == nil {
			m.SupplierID = &sup.ID
		}
		if err := s.medicines.Create(m); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedInventory adds an item with random stock for medicines that have none
func (s *seeder) seedInventory() (int, error) {
	medicines, err := s.medicines.FindAll()
	if err != nil {
		return 0, err
	}
	items, err := s.inventory.FindAll()
	if err != nil {
		return 0, err
	}
	stocked := make(map[string]bool, len(items))
	for _, it := range items {
		stocked[it.MedicineID.String()] = true
	}

	created := 0
	for _, m := range medicines {
		if stocked[m.ID.String()] {
			continue
		}
		item := &model.InventoryItem{
			MedicineID:   m.ID,
			CurrentStock: s.rng.IntN(96) + 5,  // 5..100
			ReorderLevel: s.rng.IntN(21) + 10, // 10..30
		}
		if err := s.inventory.Create(item); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedSales records the two sample sales once, using the first three medicines
func (s *seeder) seedSales() (int, error) {
	existing, err := s.sales.FindAll()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	medicines, err := s.medicines.FindAll()
	if err != nil {
		return 0, err
	}
	if len(medicines) == 0 {
		log.Println("No medicines found. Please add medicines first.")
		return 0, nil
	}

	line := func(i, qty int) []model.SaleItem {
		if i >= len(medicines) {
			return nil
		}
		return []model.SaleItem{{MedicineID: medicines[i].ID, Quantity: qty, Price: medicines[i].Price}}
	}

	first := &model.Sale{
		CustomerName:  "John Doe",
		TotalAmount:   decimal.RequireFromString("45.50"),
		Discount:      decimal.RequireFromString("5.00"),
		PaymentMethod: model.PaymentCash,
		Date:          s.now,
		Items:         append(line(0, 2), line(1, 1)...),
	}
	second := &model.Sale{
		CustomerName:  "Jane Smith",
		TotalAmount:   decimal.RequireFromString("28.75"),
		Discount:      decimal.Zero,
		PaymentMethod: model.PaymentCard,
		Date:          s.now,
		Items:         line(2, 3),
	}

	created := 0
	for _, sale := range []*model.Sale{first, second} {
		if err := s.sales.Create(sale); err != nil {
			return created, err
		}
		log.Printf("Created sale %s for %s, final %s", sale.ID, sale.CustomerName, sale.FinalAmount().StringFixed(2))
		created++
	}
	return created, nil
}

func newSeedCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create sample users, suppliers, medicines, inventory and sales",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("database: %w", err)
			}
			return newSeeder(db, password).Run()
		},
	}
	cmd.Flags().StringVar(&password, "password", "admin123", "Password for every seeded account")
	return cmd
}
