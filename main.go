package main

import (
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/config"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/auth"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/dashboard"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/fees"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/payments"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/students"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

// customErrorHandler turns fiber errors into the standard API error envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		AppName:      "ERP Fee Management",
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173, http://localhost:3000",
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	fees.SetupFeesRoutes(app)
	payments.SetupPaymentsRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	logrus.Infof("Server listening on :%s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
