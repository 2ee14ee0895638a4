package payments

import (
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/config"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentsRoutes sets up the payment ledger routes
func SetupPaymentsRoutes(app *fiber.App) {
	paymentsAPI := app.Group("/api/payments")
	paymentsAPI.Use(auth.AuthMiddleware)

	paymentsAPI.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})

	paymentsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, config.GetDB())
	})

	paymentsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetPaymentByIDAPI(c, config.GetDB())
	})

	paymentsAPI.Put("/:id/status", func(c *fiber.Ctx) error {
		return UpdatePaymentStatusAPI(c, config.GetDB())
	})
}
