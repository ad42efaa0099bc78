package route

import (
	userController "sekolahku_backend/internals/features/school/users/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	users := &userController.UserController{DB: db}
	teachers := &userController.TeacherController{DB: db}

	u := r.Group("/users")
	u.Post("/", users.CreateUser)
	u.Get("/", users.ListUsers)
	u.Get("/:id", users.GetUser)
	u.Put("/:id", users.UpdateUser)
	u.Delete("/:id", users.DeleteUser)

	t := r.Group("/teachers")
	t.Post("/", teachers.CreateTeacher)
	t.Get("/", teachers.ListTeachers)
	t.Get("/:id", teachers.GetTeacher)
	t.Put("/:id", teachers.UpdateTeacher)
	t.Delete("/:id", teachers.DeleteTeacher)
}
