package controller

import (
	"errors"
	"strings"

	academicDTO "sekolahku_backend/internals/features/school/academics/dto"
	academicModel "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelController struct {
	DB *gorm.DB
}

func scheduleExists(tx *gorm.DB, schoolID, scheduleID uuid.UUID) (bool, error) {
	var cnt int64
	err := tx.Model(&academicModel.ScheduleModel{}).
		Where("schedule_id = ? AND schedule_school_id = ? AND schedule_deleted_at IS NULL", scheduleID, schoolID).
		Count(&cnt).Error
	return cnt > 0, err
}

// POST /levels
func (h *LevelController) CreateLevel(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req academicDTO.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID
	req.Name = strings.TrimSpace(req.Name)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m academicModel.LevelModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := scheduleExists(tx, schoolID, req.ScheduleID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check schedule")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "schedule does not exist in this school")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create level")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "level created", academicDTO.FromLevelModel(m))
}

// GET /levels/:id
func (h *LevelController) GetLevel(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.LevelModel
	if err := h.DB.
		Where("level_id = ? AND level_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "level not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch level")
	}

	return helper.JsonOK(c, "level found", academicDTO.FromLevelModel(m))
}

// GET /levels?schedule_id=
func (h *LevelController) ListLevels(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&academicModel.LevelModel{}).
		Where("level_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("schedule_id")); s != "" {
		sid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid schedule_id")
		}
		tx = tx.Where("level_schedule_id = ?", sid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count levels")
	}

	var rows []academicModel.LevelModel
	if err := tx.
		Order("level_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch levels")
	}

	return helper.JsonList(c, "levels found", academicDTO.FromLevelModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /levels/:id
func (h *LevelController) UpdateLevel(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req academicDTO.UpdateLevelRequest
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

	var m academicModel.LevelModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("level_id = ? AND level_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "level not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch level")
		}

		if req.ScheduleID != nil {
			ok, err := scheduleExists(tx, schoolID, *req.ScheduleID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to check schedule")
			}
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "schedule does not exist in this school")
			}
		}

		req.Apply(&m)
		if err := tx.Model(&academicModel.LevelModel{}).
			Where("level_id = ? AND level_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"level_name":        m.LevelName,
				"level_schedule_id": m.LevelScheduleID,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update level")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "level updated", academicDTO.FromLevelModel(m))
}

// DELETE /levels/:id
// Cascades: the level's groups (with their coordinator assignments), its
// subjects, and its sessions all go with it.
func (h *LevelController) DeleteLevel(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.LevelModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("level_id = ? AND level_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "level not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch level")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeLevel, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "level not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete level")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "level deleted", academicDTO.FromLevelModel(m))
}
