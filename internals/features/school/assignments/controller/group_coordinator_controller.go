package controller

import (
	"errors"
	"strings"

	academicModel "sekolahku_backend/internals/features/school/academics/model"
	assignmentDTO "sekolahku_backend/internals/features/school/assignments/dto"
	assignmentModel "sekolahku_backend/internals/features/school/assignments/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupCoordinatorController struct {
	DB *gorm.DB
}

// POST /group-coordinators
func (h *GroupCoordinatorController) CreateGroupCoordinator(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req assignmentDTO.CreateGroupCoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m assignmentModel.GroupCoordinatorModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&academicModel.GroupModel{}).
			Where("group_id = ? AND group_school_id = ? AND group_deleted_at IS NULL", req.GroupID, schoolID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check group")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "group does not exist in this school")
		}

		ok, err := coordinatorEligible(tx, schoolID, req.CoordinatorID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check coordinator")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "coordinator must be an active user with the coordinator role")
		}

		if err := tx.Model(&assignmentModel.GroupCoordinatorModel{}).
			Where("group_coordinator_school_id = ? AND group_coordinator_group_id = ? AND group_coordinator_coordinator_id = ? AND group_coordinator_deleted_at IS NULL",
				schoolID, req.GroupID, req.CoordinatorID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check assignment")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "coordinator already assigned to this group")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create assignment")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "group coordinator assignment created", assignmentDTO.FromGroupCoordinatorModel(m))
}

// GET /group-coordinators?group_id=&coordinator_id=
func (h *GroupCoordinatorController) ListGroupCoordinators(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&assignmentModel.GroupCoordinatorModel{}).
		Where("group_coordinator_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("group_id")); s != "" {
		gid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid group_id")
		}
		tx = tx.Where("group_coordinator_group_id = ?", gid)
	}
	if s := strings.TrimSpace(c.Query("coordinator_id")); s != "" {
		cid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid coordinator_id")
		}
		tx = tx.Where("group_coordinator_coordinator_id = ?", cid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count assignments")
	}

	var rows []assignmentModel.GroupCoordinatorModel
	if err := tx.
		Order("group_coordinator_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignments")
	}

	return helper.JsonList(c, "group coordinator assignments found", assignmentDTO.FromGroupCoordinatorModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /group-coordinators/:id
func (h *GroupCoordinatorController) GetGroupCoordinator(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m assignmentModel.GroupCoordinatorModel
	if err := h.DB.
		Where("group_coordinator_id = ? AND group_coordinator_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "group coordinator assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignment")
	}

	return helper.JsonOK(c, "group coordinator assignment found", assignmentDTO.FromGroupCoordinatorModel(m))
}

// DELETE /group-coordinators/:id
func (h *GroupCoordinatorController) DeleteGroupCoordinator(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m assignmentModel.GroupCoordinatorModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_coordinator_id = ? AND group_coordinator_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "group coordinator assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignment")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeGroupCoordinator, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "group coordinator assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete assignment")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "group coordinator assignment deleted", assignmentDTO.FromGroupCoordinatorModel(m))
}
