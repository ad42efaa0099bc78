package route

import (
	schoolController "sekolahku_backend/internals/features/school/schools/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolAdminRoutes mounts the school (tenant) endpoints on an authenticated
// group.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &schoolController.SchoolController{DB: db}

	g := r.Group("/schools")
	g.Get("/", h.GetSchool)
	g.Put("/", h.UpdateSchool)
}

// SchoolPublicRoutes mounts the unauthenticated registration endpoint.
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := &schoolController.SchoolController{DB: db}
	r.Post("/schools", h.CreateSchool)
}
