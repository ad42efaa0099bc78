package route

import (
	sessionController "sekolahku_backend/internals/features/school/sessions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	sessions := &sessionController.SessionController{DB: db}

	s := r.Group("/sessions")
	s.Post("/", sessions.CreateSession)
	s.Get("/", sessions.ListSessions)
	s.Get("/:id", sessions.GetSession)
	s.Put("/:id", sessions.UpdateSession)
	s.Delete("/:id", sessions.DeleteSession)
}
