package handler

import (
	"bytes"
	"errors"
	"fmt"

	"go-pharmacy-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	service service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// GetInvoice
// Query params: format (html|json, default html)
func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	inv, err := h.service.Invoice(id)
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Sale not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build invoice"})
	}

	switch c.Query("format", "html") {
	case "json":
		return c.JSON(inv)
	case "html":
		var buf bytes.Buffer
		if err := h.service.RenderHTML(&buf, inv); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to render invoice"})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, inv.FileName))
		return c.Send(buf.Bytes())
	}
	return c.Status(400).JSON(fiber.Map{"error": "Unsupported format, use html or json"})
}
