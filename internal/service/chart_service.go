package service

import (
	"errors"
	"fmt"
	"time"

	"go-pharmacy-dashboard/internal/chart"
	"go-pharmacy-dashboard/internal/repository"
)

var (
	ErrUnknownChart = errors.New("unknown chart")
)

// Dashboard chart names, as used in /charts/:name
const (
	ChartSalesVolume           = "sales-volume"
	ChartRevenue               = "revenue"
	ChartInventoryStatus       = "inventory-status"
	ChartMedicineStatus        = "medicine-status"
	ChartStockLevels           = "stock-levels"
	ChartPharmacistPerformance = "pharmacist-performance"
)

// ChartNames lists every dashboard chart.
var ChartNames = []string{
	ChartSalesVolume,
	ChartRevenue,
	ChartInventoryStatus,
	ChartMedicineStatus,
	ChartStockLevels,
	ChartPharmacistPerformance,
}

const (
	colorBlue   = "#3498db"
	colorGreen  = "#2ecc71"
	colorRed    = "#e74c3c"
	colorOrange = "#f39c12"
)

// ChartOptions carries the request context a dashboard chart depends on.
type ChartOptions struct {
	Now      time.Time
	Period   string
	Geometry chart.Geometry
}

type ChartService interface {
	Chart(name string, opts ChartOptions) (chart.Document, error)
	Custom(kind chart.Kind, title string, in chart.Input, g chart.Geometry) (chart.Document, error)
}

type chartService struct {
	reports       ReportService
	inventoryRepo repository.InventoryRepository
	medicineRepo  repository.MedicineRepository
}

func NewChartService(reports ReportService, inventoryRepo repository.InventoryRepository, medicineRepo repository.MedicineRepository) ChartService {
	return &chartService{
		reports:       reports,
		inventoryRepo: inventoryRepo,
		medicineRepo:  medicineRepo,
	}
}

func (s *chartService) Chart(name string, opts ChartOptions) (chart.Document, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Geometry == (chart.Geometry{}) {
		opts.Geometry = chart.DefaultGeometry()
	}

	var (
		kind  chart.Kind
		title string
		in    chart.Input
		err   error
	)
	switch name {
	case ChartSalesVolume, ChartRevenue:
		kind = chart.KindBar
		title, in, err = s.salesInput(name, opts.Now)
	case ChartInventoryStatus:
		kind, title = chart.KindPie, "Inventory Stock Status"
		in, err = s.inventoryStatusInput()
	case ChartMedicineStatus:
		kind, title = chart.KindPie, "Medicine Status"
		in, err = s.medicineStatusInput(opts.Now)
	case ChartStockLevels:
		kind, title = chart.KindProgress, "Stock Levels"
		in, err = s.stockLevelsInput()
	case ChartPharmacistPerformance:
		kind = chart.KindBar
		title, in, err = s.performanceInput(opts.Period)
	default:
		return chart.Document{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	if err != nil {
		return chart.Document{}, err
	}
	return chart.Render(kind, title, in, opts.Geometry)
}

func (s *chartService) Custom(kind chart.Kind, title string, in chart.Input, g chart.Geometry) (chart.Document, error) {
	if err := chart.Validate(kind, in); err != nil {
		return chart.Document{}, err
	}
	if g == (chart.Geometry{}) {
		g = chart.DefaultGeometry()
	}
	return chart.Render(kind, title, in, g)
}

func (s *chartService) salesInput(name string, now time.Time) (string, chart.Input, error) {
	daily, err := s.reports.DailySales(now)
	if err != nil {
		return "", chart.Input{}, err
	}
	monthly, err := s.reports.MonthlySales(now.Year(), int(now.Month()), now.Location())
	if err != nil {
		return "", chart.Input{}, err
	}

	labels := []string{"Today", "This Month"}
	if name == ChartSalesVolume {
		return "Sales Volume", chart.Input{
			Values: []float64{float64(daily.TotalSales), float64(monthly.TotalSales)},
			Labels: labels,
			Colors: []string{colorBlue, colorGreen},
		}, nil
	}
	return "Revenue Comparison", chart.Input{
		Values: []float64{daily.TotalAmount.InexactFloat64(), monthly.TotalAmount.InexactFloat64()},
		Labels: labels,
		Colors: []string{colorRed, colorOrange},
	}, nil
}

func (s *chartService) inventoryStatusInput() (chart.Input, error) {
	stats, err := s.inventoryRepo.GetStats()
	if err != nil {
		return chart.Input{}, fmt.Errorf("inventory stats: %w", err)
	}
	normal := stats.TotalItems - stats.LowStockCount
	if normal < 0 {
		normal = 0
	}
	return chart.Input{
		Values: []float64{float64(normal), float64(stats.LowStockCount)},
		Labels: []string{"Normal Stock", "Low Stock"},
		Colors: []string{colorGreen, colorRed},
	}, nil
}

func (s *chartService) medicineStatusInput(now time.Time) (chart.Input, error) {
	medicines, err := s.medicineRepo.FindAll()
	if err != nil {
		return chart.Input{}, fmt.Errorf("medicines: %w", err)
	}
	var expired int
	for i := range medicines {
		if medicines[i].IsExpired(now) {
			expired++
		}
	}
	return chart.Input{
		Values: []float64{float64(len(medicines) - expired), float64(expired)},
		Labels: []string{"Active", "Expired"},
		Colors: []string{colorBlue, colorRed},
	}, nil
}

// stockLevelsInput draws each item against twice its reorder level, so an
// item sitting exactly at the reorder level shows half full.
func (s *chartService) stockLevelsInput() (chart.Input, error) {
	items, err := s.inventoryRepo.FindAll()
	if err != nil {
		return chart.Input{}, fmt.Errorf("inventory: %w", err)
	}
	in := chart.Input{
		Values: make([]float64, len(items)),
		Max:    make([]float64, len(items)),
		Labels: make([]string, len(items)),
		Colors: make([]string, len(items)),
	}
	for i := range items {
		in.Values[i] = float64(items[i].CurrentStock)
		in.Max[i] = float64(2 * items[i].ReorderLevel)
		in.Labels[i] = items[i].Medicine.Name
		in.Colors[i] = colorGreen
		if items[i].IsLowStock() {
			in.Colors[i] = colorRed
		}
	}
	return in, nil
}

func (s *chartService) performanceInput(period string) (string, chart.Input, error) {
	report, err := s.reports.PharmacistPerformance(period)
	if err != nil {
		return "", chart.Input{}, err
	}
	in := chart.Input{
		Values: make([]float64, len(report.Pharmacists)),
		Labels: make([]string, len(report.Pharmacists)),
		Colors: []string{colorBlue},
	}
	for i, p := range report.Pharmacists {
		in.Values[i] = float64(p.TotalRevenue)
		in.Labels[i] = p.Pharmacist.FirstName
	}
	return "Pharmacist Performance - " + report.PeriodLabel, in, nil
}
