package controller

import (
	"errors"
	"strings"

	academicDTO "sekolahku_backend/internals/features/school/academics/dto"
	academicModel "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB *gorm.DB
}

// POST /schedules
func (h *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req academicDTO.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID
	req.Name = strings.TrimSpace(req.Name)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create schedule")
	}

	return helper.JsonCreated(c, "schedule created", academicDTO.FromScheduleModel(m))
}

// GET /schedules/:id
func (h *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.ScheduleModel
	if err := h.DB.
		Where("schedule_id = ? AND schedule_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "schedule not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch schedule")
	}

	return helper.JsonOK(c, "schedule found", academicDTO.FromScheduleModel(m))
}

// GET /schedules
func (h *ScheduleController) ListSchedules(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&academicModel.ScheduleModel{}).
		Where("schedule_school_id = ?", schoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count schedules")
	}

	var rows []academicModel.ScheduleModel
	if err := tx.
		Order("schedule_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch schedules")
	}

	return helper.JsonList(c, "schedules found", academicDTO.FromScheduleModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /schedules/:id
func (h *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req academicDTO.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if req.Name != nil {
		n := strings.TrimSpace(*req.Name)
		req.Name = &n
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m academicModel.ScheduleModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ? AND schedule_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "schedule not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch schedule")
		}

		req.Apply(&m)
		if err := tx.Model(&academicModel.ScheduleModel{}).
			Where("schedule_id = ? AND schedule_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"schedule_name":   m.ScheduleName,
				"schedule_config": m.ScheduleConfig,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update schedule")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "schedule updated", academicDTO.FromScheduleModel(m))
}

// DELETE /schedules/:id
// A schedule does not cascade. While any level still points at it the
// delete is refused, so levels never end up with a dangling schedule_id.
func (h *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.ScheduleModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ? AND schedule_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "schedule not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch schedule")
		}

		var cnt int64
		if err := tx.Model(&academicModel.LevelModel{}).
			Where("level_school_id = ? AND level_schedule_id = ? AND level_deleted_at IS NULL", schoolID, id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check levels")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "cannot delete schedule while levels reference it")
		}

		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete schedule")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "schedule deleted", academicDTO.FromScheduleModel(m))
}
