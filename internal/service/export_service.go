package service

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	sheetInventory = "Inventory"
	sheetDaily     = "Daily Sales"
	sheetMonthly   = "Monthly Sales"
	sheetExpired   = "Expired"
)

type ExportService interface {
	// WriteXLSX writes the reports for the day of now as a workbook.
	WriteXLSX(w io.Writer, now time.Time) error
}

type exportService struct {
	reports ReportService
}

func NewExportService(reports ReportService) ExportService {
	return &exportService{reports: reports}
}

func (s *exportService) WriteXLSX(w io.Writer, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetInventory); err != nil {
		return err
	}
	for _, name := range []string{sheetDaily, sheetMonthly, sheetExpired} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := s.inventorySheet(f); err != nil {
		return err
	}
	if err := s.dailySheet(f, now); err != nil {
		return err
	}
	if err := s.monthlySheet(f, now); err != nil {
		return err
	}
	if err := s.expiredSheet(f, now); err != nil {
		return err
	}
	return f.Write(w)
}

// writeRows fills a sheet from A1 downwards.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func (s *exportService) inventorySheet(f *excelize.File) error {
	report, err := s.reports.Inventory()
	if err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Total items", report.TotalItems},
		{"Low stock", report.LowStockCount},
		{"Valuation", report.TotalValuation.InexactFloat64()},
		{},
		{"Medicine", "Category", "Current stock", "Reorder level"},
	}
	for _, item := range report.LowStockItems {
		rows = append(rows, []interface{}{item.Medicine, item.Category, item.CurrentStock, item.ReorderLevel})
	}
	return writeRows(f, sheetInventory, rows)
}

func (s *exportService) dailySheet(f *excelize.File, now time.Time) error {
	report, err := s.reports.DailySales(now)
	if err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Date", report.Date},
		{"Sales", report.TotalSales},
		{"Amount", report.TotalAmount.InexactFloat64()},
		{"Discount", report.TotalDiscount.InexactFloat64()},
		{},
		{"Payment method", "Count", "Amount"},
	}
	for _, key := range sortedKeys(report.PaymentMethods) {
		m := report.PaymentMethods[key]
		rows = append(rows, []interface{}{key, m.Count, m.Amount.InexactFloat64()})
	}
	return writeRows(f, sheetDaily, rows)
}

func (s *exportService) monthlySheet(f *excelize.File, now time.Time) error {
	report, err := s.reports.MonthlySales(now.Year(), int(now.Month()), now.Location())
	if err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Month", report.Month},
		{"Sales", report.TotalSales},
		{"Amount", report.TotalAmount.InexactFloat64()},
		{"Discount", report.TotalDiscount.InexactFloat64()},
		{},
		{"Day", "Count", "Amount"},
	}
	for _, day := range sortedKeys(report.DailyBreakdown) {
		d := report.DailyBreakdown[day]
		rows = append(rows, []interface{}{day, d.Count, d.Amount.InexactFloat64()})
	}
	return writeRows(f, sheetMonthly, rows)
}

func (s *exportService) expiredSheet(f *excelize.File, now time.Time) error {
	report, err := s.reports.ExpiredMedicines(now)
	if err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Name", "Category", "Expiration date", "Batch", "Quantity", "Supplier"},
	}
	for _, m := range report.ExpiredMedicines {
		rows = append(rows, []interface{}{m.Name, m.Category, m.ExpirationDate, m.BatchNumber, m.Quantity, m.Supplier})
	}
	return writeRows(f, sheetExpired, rows)
}

func sortedKeys(m map[string]*SalesSummary) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
