package handler

import (
	"bytes"
	"errors"
	"time"

	"go-pharmacy-dashboard/internal/chart"
	"go-pharmacy-dashboard/internal/service"
	"go-pharmacy-dashboard/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

const (
	formatJSON = "json"
	formatSVG  = "svg"
	formatPNG  = "png"
)

type ChartHandler struct {
	charts service.ChartService
	now    func() time.Time
}

func NewChartHandler(charts service.ChartService) *ChartHandler {
	return &ChartHandler{charts: charts, now: time.Now}
}

// RenderRequest is the body of POST /charts/render
type RenderRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=pie doughnut bar progress"`
	Title string `json:"title"`
	chart.Input
}

// GetChart renders one of the dashboard charts
// Query params: format (json|svg|png, default json), period (pharmacist-performance only)
func (h *ChartHandler) GetChart(c *fiber.Ctx) error {
	doc, err := h.charts.Chart(c.Params("name"), service.ChartOptions{
		Now:    h.now(),
		Period: c.Query("period"),
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownChart) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error(), "charts": service.ChartNames})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build chart"})
	}
	return writeChart(c, doc, c.Query("format", formatJSON))
}

// RenderChart renders caller supplied data
func (h *ChartHandler) RenderChart(c *fiber.Ctx) error {
	var req RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	kind, err := chart.ParseKind(req.Kind)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	doc, err := h.charts.Custom(kind, req.Title, req.Input, chart.Geometry{})
	if err != nil {
		var invalid *chart.InvalidInputError
		if errors.As(err, &invalid) {
			return c.Status(400).JSON(fiber.Map{"error": invalid.Error(), "field": invalid.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render chart"})
	}
	return writeChart(c, doc, c.Query("format", formatJSON))
}

func writeChart(c *fiber.Ctx, doc chart.Document, format string) error {
	var buf bytes.Buffer
	switch format {
	case formatJSON:
		return c.JSON(doc)
	case formatSVG:
		if err := chart.EncodeSVG(&buf, doc); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to encode SVG"})
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
	case formatPNG:
		if err := chart.EncodePNG(&buf, doc); err != nil {
			if errors.Is(err, chart.ErrCanvasTooLarge) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to encode PNG"})
		}
		c.Set(fiber.HeaderContentType, "image/png")
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unsupported format, use json, svg or png"})
	}
	return c.Send(buf.Bytes())
}
