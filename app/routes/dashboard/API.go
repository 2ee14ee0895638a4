package dashboard

import (
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/config"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboardAPI := app.Group("/api/dashboard")
	dashboardAPI.Use(auth.AuthMiddleware)

	dashboardAPI.Get("/collections", GetCollectionsAPI)
}

// GetCollectionsAPI returns the collections overview for the admin dashboard
func GetCollectionsAPI(c *fiber.Ctx) error {
	dashboard, err := database.GetCollectionDashboard(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch collections overview")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dashboard,
	})
}
