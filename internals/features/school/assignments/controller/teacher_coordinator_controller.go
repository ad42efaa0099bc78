package controller

import (
	"errors"
	"strings"

	assignmentDTO "sekolahku_backend/internals/features/school/assignments/dto"
	assignmentModel "sekolahku_backend/internals/features/school/assignments/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherCoordinatorController struct {
	DB *gorm.DB
}

// POST /teacher-coordinators
func (h *TeacherCoordinatorController) CreateTeacherCoordinator(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req assignmentDTO.CreateTeacherCoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m assignmentModel.TeacherCoordinatorModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := teacherExists(tx, schoolID, req.TeacherID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check teacher")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "teacher does not exist in this school")
		}

		ok, err = coordinatorEligible(tx, schoolID, req.CoordinatorID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check coordinator")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "coordinator must be an active user with the coordinator role")
		}

		var cnt int64
		if err := tx.Model(&assignmentModel.TeacherCoordinatorModel{}).
			Where("teacher_coordinator_school_id = ? AND teacher_coordinator_teacher_id = ? AND teacher_coordinator_coordinator_id = ? AND teacher_coordinator_deleted_at IS NULL",
				schoolID, req.TeacherID, req.CoordinatorID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check assignment")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "coordinator already assigned to this teacher")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create assignment")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "teacher coordinator assignment created", assignmentDTO.FromTeacherCoordinatorModel(m))
}

// GET /teacher-coordinators?teacher_id=&coordinator_id=
func (h *TeacherCoordinatorController) ListTeacherCoordinators(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&assignmentModel.TeacherCoordinatorModel{}).
		Where("teacher_coordinator_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("teacher_id")); s != "" {
		tid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid teacher_id")
		}
		tx = tx.Where("teacher_coordinator_teacher_id = ?", tid)
	}
	if s := strings.TrimSpace(c.Query("coordinator_id")); s != "" {
		cid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid coordinator_id")
		}
		tx = tx.Where("teacher_coordinator_coordinator_id = ?", cid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count assignments")
	}

	var rows []assignmentModel.TeacherCoordinatorModel
	if err := tx.
		Order("teacher_coordinator_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignments")
	}

	return helper.JsonList(c, "teacher coordinator assignments found", assignmentDTO.FromTeacherCoordinatorModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /teacher-coordinators/:id
func (h *TeacherCoordinatorController) GetTeacherCoordinator(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m assignmentModel.TeacherCoordinatorModel
	if err := h.DB.
		Where("teacher_coordinator_id = ? AND teacher_coordinator_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "teacher coordinator assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignment")
	}

	return helper.JsonOK(c, "teacher coordinator assignment found", assignmentDTO.FromTeacherCoordinatorModel(m))
}

// DELETE /teacher-coordinators/:id
func (h *TeacherCoordinatorController) DeleteTeacherCoordinator(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m assignmentModel.TeacherCoordinatorModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_coordinator_id = ? AND teacher_coordinator_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "teacher coordinator assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignment")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeTeacherCoordinator, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "teacher coordinator assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete assignment")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "teacher coordinator assignment deleted", assignmentDTO.FromTeacherCoordinatorModel(m))
}
