package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pharmacy-dashboard/internal/handler"
	"go-pharmacy-dashboard/internal/middleware"
	"go-pharmacy-dashboard/internal/model"
	"go-pharmacy-dashboard/internal/repository"
	"go-pharmacy-dashboard/internal/service"
	"go-pharmacy-dashboard/internal/ws"
	"go-pharmacy-dashboard/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func alertInterval() time.Duration {
	if s := os.Getenv("ALERT_INTERVAL"); s != "" {
		d, err := time.ParseDuration(s)
		if err == nil && d > 0 {
			return d
		}
		log.Printf("Warning: invalid ALERT_INTERVAL %q, using 1m", s)
	}
	return time.Minute
}

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(model.Models()...); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	medicineRepo := repository.NewMedicineRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	reportService := service.NewReportService(saleRepo, inventoryRepo, medicineRepo, userRepo, nil)
	chartService := service.NewChartService(reportService, inventoryRepo, medicineRepo)
	invoiceService := service.NewInvoiceService(saleRepo, service.DefaultCompany)
	exportService := service.NewExportService(reportService)
	alertService := service.NewAlertService(inventoryRepo, wsHub)

	reportHandler := handler.NewReportHandler(reportService, exportService)
	chartHandler := handler.NewChartHandler(chartService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	dashHandler := handler.NewDashboardHandler(alertService, wsHub)

	// 5. Low stock alerts
	ctx, stopAlerts := context.WithCancel(context.Background())
	go alertService.Run(ctx, alertInterval())

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Pharmacy Dashboard v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1", middleware.RequireAuth(userRepo))
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// Reports
	api.Get("/reports/sales/daily", reportHandler.GetDailySales)
	api.Get("/reports/sales/monthly", reportHandler.GetMonthlySales)
	api.Get("/reports/inventory", reportHandler.GetInventory)
	api.Get("/reports/medicines/expired", reportHandler.GetExpiredMedicines)
	api.Get("/reports/pharmacists", adminOnly, reportHandler.GetPharmacistPerformance)
	api.Get("/reports/export.xlsx", adminOnly, reportHandler.ExportXLSX)

	// Charts
	api.Get("/charts/:name", chartHandler.GetChart)
	api.Post("/charts/render", chartHandler.RenderChart)

	// Invoices
	api.Get("/sales/:id/invoice", invoiceHandler.GetInvoice)

	// Dashboard
	api.Get("/dashboard/notifications", dashHandler.GetNotifications)
	api.Get("/dashboard/charts", dashHandler.GetCharts)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopAlerts()
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
