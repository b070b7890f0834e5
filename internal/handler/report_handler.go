package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"go-pharmacy-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reports service.ReportService
	export  service.ExportService
	now     func() time.Time
}

func NewReportHandler(reports service.ReportService, export service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, export: export, now: time.Now}
}

// GetDailySales returns the sales summary of one day
// Query params: date (YYYY-MM-DD, default today)
func (h *ReportHandler) GetDailySales(c *fiber.Ctx) error {
	date := h.now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, date.Location())
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, use YYYY-MM-DD"})
		}
		date = parsed
	}

	report, err := h.reports.DailySales(date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch daily sales"})
	}
	return c.JSON(report)
}

// GetMonthlySales returns the sales summary of one month
// Query params: year, month (default current month)
func (h *ReportHandler) GetMonthlySales(c *fiber.Ctx) error {
	now := h.now()
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	report, err := h.reports.MonthlySales(year, month, now.Location())
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly sales"})
	}
	return c.JSON(report)
}

func (h *ReportHandler) GetInventory(c *fiber.Ctx) error {
	report, err := h.reports.Inventory()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory report"})
	}
	return c.JSON(report)
}

func (h *ReportHandler) GetExpiredMedicines(c *fiber.Ctx) error {
	report, err := h.reports.ExpiredMedicines(h.now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expired medicines"})
	}
	return c.JSON(report)
}

// GetPharmacistPerformance
// Query params: period (week|month|year, default month)
func (h *ReportHandler) GetPharmacistPerformance(c *fiber.Ctx) error {
	report, err := h.reports.PharmacistPerformance(c.Query("period", service.PeriodMonth))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pharmacist performance"})
	}
	return c.JSON(report)
}

// ExportXLSX downloads every report as one workbook
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	now := h.now()
	var buf bytes.Buffer
	if err := h.export.WriteXLSX(&buf, now); err != nil {
		log.Printf("Warning: report export failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export reports"})
	}
	log.Printf("Report export by %s <%s>", getUserName(c), getUserEmail(c))

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pharmacy_report_%s.xlsx"`, now.Format("20060102")))
	return c.Send(buf.Bytes())
}
