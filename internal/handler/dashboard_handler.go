package handler

import (
	"go-pharmacy-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ClientCounter reports how many dashboards are listening for alerts.
type ClientCounter interface {
	ClientCount() int
}

type DashboardHandler struct {
	alerts  service.AlertService
	clients ClientCounter
}

func NewDashboardHandler(alerts service.AlertService, clients ClientCounter) *DashboardHandler {
	return &DashboardHandler{alerts: alerts, clients: clients}
}

// GetNotifications returns the current low stock alerts
func (h *DashboardHandler) GetNotifications(c *fiber.Ctx) error {
	notifications, err := h.alerts.Scan()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}

	return c.JSON(fiber.Map{
		"count": len(notifications),
		"data":  notifications,
	})
}

// GetCharts lists the dashboard charts and the connected websocket clients
func (h *DashboardHandler) GetCharts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"charts":     service.ChartNames,
		"ws_clients": h.clients.ClientCount(),
	})
}
