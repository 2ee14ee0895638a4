package students

import (
	"database/sql"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/config"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/fees"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:   c.Query("search"),
		StreamID: c.Query("stream_id"),
		Limit:    c.QueryInt("limit", 0),
		Offset:   c.QueryInt("offset", 0),
	}

	students, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"students": students,
		"count":    len(students),
	})
}

func GetStreamsAPI(c *fiber.Ctx) error {
	streams, err := database.GetStreams(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch streams")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    streams,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if student.EnrollmentNo == "" || student.FirstName == "" || student.LastName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student created successfully",
	})
}

// GetApplicableFeeHeadsAPI returns the fee heads that bind this student.
func GetApplicableFeeHeadsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	heads, err := database.GetFeeHeads(db, true)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee heads")
	}

	applicable := fees.ApplicableFeeHeads(student, heads)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    applicable,
		"count":   len(applicable),
	})
}

// GetPendingFeesAPI reconciles the student's dues. Defaults to clamped mode;
// mode=unclamped exposes overpayment as negative pending.
func GetPendingFeesAPI(c *fiber.Ctx) error {
	mode := fees.PendingMode(c.Query("mode", string(fees.Clamped)))

	var semester *int
	if s := c.QueryInt("semester", 0); s != 0 {
		semester = &s
	}

	entries, err := fees.PendingFees(config.GetDB(), c.Params("id"), semester, mode)
	if err != nil {
		return feeErrorToHTTP(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"mode":    mode,
		"data":    entries,
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
