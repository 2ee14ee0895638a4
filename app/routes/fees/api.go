package fees

import (
	"database/sql"
	"time"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
	feecore "github.com/kshitij2201/erp-neitem-updated-sub010/app/fees"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetFeeHeadsAPI returns all fee heads. Pass active=true to restrict to
// active heads only.
func GetFeeHeadsAPI(c *fiber.Ctx, db *sql.DB) error {
	activeOnly := c.Query("active") == "true"

	heads, err := database.GetFeeHeads(db, activeOnly)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee heads")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    heads,
		"count":   len(heads),
	})
}

// GetFeeHeadByIDAPI returns a specific fee head by ID
func GetFeeHeadByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	head, err := database.GetFeeHeadByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee head not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee head")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    head,
	})
}

// CreateFeeHeadAPI creates a new fee head
func CreateFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	var head models.FeeHead
	if err := c.BodyParser(&head); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if head.Title == "" || head.Amount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	// Default scope; filters on an "all" head are stored but never consulted
	if head.ApplyTo == "" {
		head.ApplyTo = models.ApplyToAll
	}
	if head.ApplyTo != models.ApplyToAll && head.ApplyTo != models.ApplyToFiltered {
		return fiber.NewError(fiber.StatusBadRequest, "apply_to must be 'all' or 'filtered'")
	}
	head.IsActive = true

	if err := database.CreateFeeHead(db, &head); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee head")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    head,
		"message": "Fee head created successfully",
	})
}

// UpdateFeeHeadAPI updates an existing fee head
func UpdateFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	var head models.FeeHead
	if err := c.BodyParser(&head); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	head.ID = c.Params("id")

	if head.ApplyTo != models.ApplyToAll && head.ApplyTo != models.ApplyToFiltered {
		return fiber.NewError(fiber.StatusBadRequest, "apply_to must be 'all' or 'filtered'")
	}

	if err := database.UpdateFeeHead(db, &head); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee head not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee head")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee head updated successfully",
	})
}

// DeleteFeeHeadAPI soft-deletes a fee head
func DeleteFeeHeadAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteFeeHead(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee head not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee head")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee head deleted successfully",
	})
}

// GetFeeHeadStatsAPI returns stored and realtime collection stats for a head,
// optionally bounded to from/to payment dates (YYYY-MM-DD).
func GetFeeHeadStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD")
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD")
	}
	if to != nil {
		// Include the whole end day
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	snapshot, err := feecore.CollectionStats(db, c.Params("id"), from, to)
	if err != nil {
		if _, ok := err.(*feecore.NotFoundError); ok {
			return fiber.NewError(fiber.StatusNotFound, "Fee head not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    snapshot,
	})
}

// RecomputeCachesAPI rebuilds collection caches from the ledger on demand.
func RecomputeCachesAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := services.ReconcileCollectionCaches(db); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to recompute collection caches")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Collection caches recomputed from the payment ledger",
	})
}

func parseDateQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
