package payments

import (
	"database/sql"
	"time"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/fees"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

	"github.com/gofiber/fiber/v2"
)

// RecordPaymentAPI records a fee payment for a student. The authenticated
// staff user becomes collected_by. Cache-update warnings ride along on the
// successful response; the payment itself is already durable at that point.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var input fees.RecordPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		input.CollectedBy = &userID
	}

	payment, warnings, err := fees.RecordPayment(db, input)
	if err != nil {
		return feeErrorToHTTP(err)
	}

	response := fiber.Map{
		"success": true,
		"data":    payment,
		"message": "Payment recorded successfully",
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetPaymentsAPI returns ledger rows matching the query filters.
func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.PaymentFilters{
		StudentID: c.Query("student_id"),
		FeeHeadID: c.Query("fee_head_id"),
		Status:    models.PaymentStatus(c.Query("status")),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}

	if s := c.QueryInt("semester", 0); s != 0 {
		filters.Semester = &s
	}
	if from := c.Query("from"); from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD")
		}
		filters.DateFrom = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD")
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		filters.DateTo = &end
	}
	if filters.Status != "" && !models.ValidPaymentStatus(filters.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment status")
	}

	payments, err := database.FindPayments(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payments,
		"count":   len(payments),
	})
}

// GetPaymentByIDAPI returns a specific payment by ID
func GetPaymentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	payment, err := database.GetPaymentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// UpdatePaymentStatusAPI applies a staff correction to status/remarks.
// Everything else on a payment row is immutable after insert.
func UpdatePaymentStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	type StatusUpdateRequest struct {
		Status  models.PaymentStatus `json:"status"`
		Remarks string               `json:"remarks"`
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if !models.ValidPaymentStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment status")
	}

	if err := database.UpdatePaymentStatus(db, c.Params("id"), req.Status, req.Remarks); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment updated successfully",
	})
}

func feeErrorToHTTP(err error) error {
	switch err.(type) {
	case *fees.ValidationError:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case *fees.NotFoundError:
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case *fees.ConflictError:
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
}
