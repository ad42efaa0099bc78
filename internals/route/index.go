package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicRoute "sekolahku_backend/internals/features/school/academics/route"
	assignmentRoute "sekolahku_backend/internals/features/school/assignments/route"
	schoolRoute "sekolahku_backend/internals/features/school/schools/route"
	sessionRoute "sekolahku_backend/internals/features/school/sessions/route"
	userRoute "sekolahku_backend/internals/features/school/users/route"
	"sekolahku_backend/internals/middlewares"
	schoolMiddleware "sekolahku_backend/internals/middlewares/auth_school"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/p")
	public.Use(middlewares.RegisterRateLimiter())
	schoolRoute.SchoolPublicRoutes(public, db)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		schoolMiddleware.AuthJWT(schoolMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		schoolMiddleware.RequireStaffRole(),
	)

	log.Println("[INFO] Mounting School routes...")
	schoolRoute.SchoolAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Academic routes...")
	academicRoute.AcademicAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Assignment routes...")
	assignmentRoute.AssignmentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Session routes...")
	sessionRoute.SessionAdminRoutes(admin, db)
}
