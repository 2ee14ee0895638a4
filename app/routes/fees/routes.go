package fees

import (
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/config"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the fee head routes
func SetupFeesRoutes(app *fiber.App) {
	feeHeadsAPI := app.Group("/api/fee-heads")
	feeHeadsAPI.Use(auth.AuthMiddleware)

	feeHeadsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeHeadsAPI(c, config.GetDB())
	})

	feeHeadsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeHeadAPI(c, config.GetDB())
	})

	// Cache maintenance is restricted to admins
	feeHeadsAPI.Post("/recompute", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return RecomputeCachesAPI(c, config.GetDB())
	})

	feeHeadsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetFeeHeadByIDAPI(c, config.GetDB())
	})

	feeHeadsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeHeadAPI(c, config.GetDB())
	})

	feeHeadsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeHeadAPI(c, config.GetDB())
	})

	feeHeadsAPI.Get("/:id/stats", func(c *fiber.Ctx) error {
		return GetFeeHeadStatsAPI(c, config.GetDB())
	})
}
