package route

import (
	assignmentController "sekolahku_backend/internals/features/school/assignments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	teacherFields := &assignmentController.TeacherFieldController{DB: db}
	teacherCoordinators := &assignmentController.TeacherCoordinatorController{DB: db}
	groupCoordinators := &assignmentController.GroupCoordinatorController{DB: db}

	tf := r.Group("/teacher-fields")
	tf.Post("/", teacherFields.CreateTeacherField)
	tf.Get("/", teacherFields.ListTeacherFields)
	tf.Get("/:id", teacherFields.GetTeacherField)
	tf.Delete("/:id", teacherFields.DeleteTeacherField)

	tc := r.Group("/teacher-coordinators")
	tc.Post("/", teacherCoordinators.CreateTeacherCoordinator)
	tc.Get("/", teacherCoordinators.ListTeacherCoordinators)
	tc.Get("/:id", teacherCoordinators.GetTeacherCoordinator)
	tc.Delete("/:id", teacherCoordinators.DeleteTeacherCoordinator)

	gc := r.Group("/group-coordinators")
	gc.Post("/", groupCoordinators.CreateGroupCoordinator)
	gc.Get("/", groupCoordinators.ListGroupCoordinators)
	gc.Get("/:id", groupCoordinators.GetGroupCoordinator)
	gc.Delete("/:id", groupCoordinators.DeleteGroupCoordinator)
}
