package route

import (
	academicController "sekolahku_backend/internals/features/school/academics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	fields := &academicController.FieldController{DB: db}
	schedules := &academicController.ScheduleController{DB: db}
	levels := &academicController.LevelController{DB: db}
	groups := &academicController.GroupController{DB: db}
	subjects := &academicController.SubjectController{DB: db}

	f := r.Group("/fields")
	f.Post("/", fields.CreateField)
	f.Get("/", fields.ListFields)
	f.Get("/:id", fields.GetField)
	f.Put("/:id", fields.UpdateField)
	f.Delete("/:id", fields.DeleteField)

	sc := r.Group("/schedules")
	sc.Post("/", schedules.CreateSchedule)
	sc.Get("/", schedules.ListSchedules)
	sc.Get("/:id", schedules.GetSchedule)
	sc.Put("/:id", schedules.UpdateSchedule)
	sc.Delete("/:id", schedules.DeleteSchedule)

	l := r.Group("/levels")
	l.Post("/", levels.CreateLevel)
	l.Get("/", levels.ListLevels)
	l.Get("/:id", levels.GetLevel)
	l.Put("/:id", levels.UpdateLevel)
	l.Delete("/:id", levels.DeleteLevel)

	g := r.Group("/groups")
	g.Post("/", groups.CreateGroup)
	g.Get("/", groups.ListGroups)
	g.Get("/:id", groups.GetGroup)
	g.Put("/:id", groups.UpdateGroup)
	g.Delete("/:id", groups.DeleteGroup)

	sj := r.Group("/subjects")
	sj.Post("/", subjects.CreateSubject)
	sj.Get("/", subjects.ListSubjects)
	sj.Get("/:id", subjects.GetSubject)
	sj.Put("/:id", subjects.UpdateSubject)
	sj.Delete("/:id", subjects.DeleteSubject)
}
