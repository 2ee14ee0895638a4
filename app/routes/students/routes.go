package students

import (
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	streamsAPI := app.Group("/api/streams")
	streamsAPI.Use(auth.AuthMiddleware)
	streamsAPI.Get("/", GetStreamsAPI)

	studentsAPI := app.Group("/api/students")
	studentsAPI.Use(auth.AuthMiddleware)

	studentsAPI.Get("/", GetStudentsAPI)
	studentsAPI.Post("/", CreateStudentAPI)
	studentsAPI.Get("/:id", GetStudentByIDAPI)
	studentsAPI.Get("/:id/fee-heads", GetApplicableFeeHeadsAPI)
	studentsAPI.Get("/:id/pending-fees", GetPendingFeesAPI)
}
