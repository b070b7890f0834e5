package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"go-pharmacy-dashboard/internal/model"
	"go-pharmacy-dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

type ReportService interface {
	DailySales(date time.Time) (*DailySalesReport, error)
	MonthlySales(year, month int, loc *time.Location) (*MonthlySalesReport, error)
	Inventory() (*InventoryReport, error)
	ExpiredMedicines(now time.Time) (*ExpiredReport, error)
	PharmacistPerformance(period string) (*PerformanceReport, error)
}

// SalesSummary aggregates a group of sales (per payment method or per day).
type SalesSummary struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type DailySalesReport struct {
	Date           string                   `json:"date"`
	TotalSales     int                      `json:"total_sales"`
	TotalAmount    decimal.Decimal          `json:"total_amount"`
	TotalDiscount  decimal.Decimal          `json:"total_discount"`
	PaymentMethods map[string]*SalesSummary `json:"payment_methods"`
}

type MonthlySalesReport struct {
	Month          string                   `json:"month"`
	TotalSales     int                      `json:"total_sales"`
	TotalAmount    decimal.Decimal          `json:"total_amount"`
	TotalDiscount  decimal.Decimal          `json:"total_discount"`
	DailyBreakdown map[string]*SalesSummary `json:"daily_breakdown"`
}

type LowStockRow struct {
	MedicineID   uuid.UUID `json:"medicine_id"`
	Medicine     string    `json:"medicine"`
	Category     string    `json:"category"`
	CurrentStock int       `json:"current_stock"`
	ReorderLevel int       `json:"reorder_level"`
}

type InventoryReport struct {
	TotalItems     int64           `json:"total_items"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
	LowStockItems  []LowStockRow   `json:"low_stock_items"`
}

type ExpiredMedicineRow struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	ExpirationDate string    `json:"expiration_date"`
	BatchNumber    string    `json:"batch_number,omitempty"`
	Quantity       int       `json:"quantity"`
	Supplier       string    `json:"supplier,omitempty"`
}

type ExpiredReport struct {
	Count            int                  `json:"count"`
	ExpiredMedicines []ExpiredMedicineRow `json:"expired_medicines"`
}

// PharmacistStats are simulated: sales are not attributed to staff yet.
type PharmacistStats struct {
	Pharmacist       model.UserResponse `json:"pharmacist"`
	TotalSales       int                `json:"total_sales"`
	TotalRevenue     int                `json:"total_revenue"`
	AvgSaleValue     float64            `json:"avg_sale_value"`
	MedicinesHandled int                `json:"medicines_handled"`
	Efficiency       int                `json:"efficiency"`
}

type PerformanceReport struct {
	Period             string            `json:"period"`
	PeriodLabel        string            `json:"period_label"`
	TotalPharmacists   int               `json:"total_pharmacists"`
	AverageEfficiency  int               `json:"average_efficiency"`
	TopPerformer       *PharmacistStats  `json:"top_performer"`
	MedicinesAvailable int               `json:"medicines_available"`
	Pharmacists        []PharmacistStats `json:"pharmacists"`
}

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// PeriodLabel maps a report period to its heading; unknown periods read as month.
func PeriodLabel(period string) (string, string) {
	switch period {
	case PeriodWeek:
		return PeriodWeek, "This Week"
	case PeriodYear:
		return PeriodYear, "This Year"
	}
	return PeriodMonth, "This Month"
}

type reportService struct {
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
	medicineRepo  repository.MedicineRepository
	userRepo      repository.UserRepository

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func NewReportService(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
	medicineRepo repository.MedicineRepository,
	userRepo repository.UserRepository,
	rng *rand.Rand,
) ReportService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &reportService{
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
		medicineRepo:  medicineRepo,
		userRepo:      userRepo,
		rng:           rng,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addSale(groups map[string]*SalesSummary, key string, amount decimal.Decimal) {
	g, ok := groups[key]
	if !ok {
		g = &SalesSummary{Amount: decimal.Zero}
		groups[key] = g
	}
	g.Count++
	g.Amount = g.Amount.Add(amount)
}

func (s *reportService) DailySales(date time.Time) (*DailySalesReport, error) {
	start := startOfDay(date)
	sales, err := s.saleRepo.FindBetween(start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}

	report := &DailySalesReport{
		Date:           start.Format("2006-01-02"),
		TotalSales:     len(sales),
		TotalAmount:    decimal.Zero,
		TotalDiscount:  decimal.Zero,
		PaymentMethods: make(map[string]*SalesSummary),
	}
	for i := range sales {
		final := sales[i].FinalAmount()
		report.TotalAmount = report.TotalAmount.Add(final)
		report.TotalDiscount = report.TotalDiscount.Add(sales[i].Discount)
		addSale(report.PaymentMethods, sales[i].PaymentMethod.DisplayName(), final)
	}
	return report, nil
}

func (s *reportService) MonthlySales(year, month int, loc *time.Location) (*MonthlySalesReport, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	sales, err := s.saleRepo.FindBetween(start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}

	report := &MonthlySalesReport{
		Month:          fmt.Sprintf("%d-%02d", year, month),
		TotalSales:     len(sales),
		TotalAmount:    decimal.Zero,
		TotalDiscount:  decimal.Zero,
		DailyBreakdown: make(map[string]*SalesSummary),
	}
	for i := range sales {
		final := sales[i].FinalAmount()
		report.TotalAmount = report.TotalAmount.Add(final)
		report.TotalDiscount = report.TotalDiscount.Add(sales[i].Discount)
		addSale(report.DailyBreakdown, sales[i].Date.In(loc).Format("2006-01-02"), final)
	}
	return report, nil
}

func (s *reportService) Inventory() (*InventoryReport, error) {
	stats, err := s.inventoryRepo.GetStats()
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	low, err := s.inventoryRepo.FindLowStock()
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}

	rows := make([]LowStockRow, 0, len(low))
	for _, item := range low {
		rows = append(rows, LowStockRow{
			MedicineID:   item.MedicineID,
			Medicine:     item.Medicine.Name,
			Category:     item.Medicine.Category,
			CurrentStock: item.CurrentStock,
			ReorderLevel: item.ReorderLevel,
		})
	}
	return &InventoryReport{
		TotalItems:     stats.TotalItems,
		LowStockCount:  stats.LowStockCount,
		TotalValuation: stats.TotalValuation,
		LowStockItems:  rows,
	}, nil
}

func (s *reportService) ExpiredMedicines(now time.Time) (*ExpiredReport, error) {
	medicines, err := s.medicineRepo.FindExpired(now)
	if err != nil {
		return nil, fmt.Errorf("expired medicines: %w", err)
	}

	rows := make([]ExpiredMedicineRow, 0, len(medicines))
	for i := range medicines {
		m := &medicines[i]
		rows = append(rows, ExpiredMedicineRow{
			ID:             m.ID,
			Name:           m.Name,
			Category:       m.Category,
			ExpirationDate: m.ExpirationDate.Format("2006-01-02"),
			BatchNumber:    m.BatchNumber,
			Quantity:       m.Quantity,
			Supplier:       m.SupplierName(),
		})
	}
	return &ExpiredReport{Count: len(rows), ExpiredMedicines: rows}, nil
}

func (s *reportService) simulate(u *model.User) PharmacistStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalSales := s.rng.IntN(50) + 10
	totalRevenue := s.rng.IntN(5000) + 1000
	return PharmacistStats{
		Pharmacist:       u.ToResponse(),
		TotalSales:       totalSales,
		TotalRevenue:     totalRevenue,
		AvgSaleValue:     math.Round(float64(totalRevenue)/float64(totalSales)*100) / 100,
		MedicinesHandled: s.rng.IntN(20) + 5,
		Efficiency:       s.rng.IntN(30) + 70,
	}
}

func (s *reportService) PharmacistPerformance(period string) (*PerformanceReport, error) {
	pharmacists, err := s.userRepo.FindByRole(model.RolePharmacist)
	if err != nil {
		return nil, fmt.Errorf("pharmacists: %w", err)
	}
	medicines, err := s.medicineRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("medicines: %w", err)
	}

	period, label := PeriodLabel(period)
	report := &PerformanceReport{
		Period:             period,
		PeriodLabel:        label,
		TotalPharmacists:   len(pharmacists),
		MedicinesAvailable: len(medicines),
		Pharmacists:        make([]PharmacistStats, 0, len(pharmacists)),
	}

	efficiency := 0
	for i := range pharmacists {
		stats := s.simulate(&pharmacists[i])
		efficiency += stats.Efficiency
		report.Pharmacists = append(report.Pharmacists, stats)
	}
	if n := len(report.Pharmacists); n > 0 {
		report.AverageEfficiency = int(math.Round(float64(efficiency) / float64(n)))
		top := &report.Pharmacists[0]
		for i := 1; i < n; i++ {
			if report.Pharmacists[i].TotalRevenue > top.TotalRevenue {
				top = &report.Pharmacists[i]
			}
		}
		topCopy := *top
		report.TopPerformer = &topCopy
	}
	return report, nil
}
