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

type GroupController struct {
	DB *gorm.DB
}

func levelExists(tx *gorm.DB, schoolID, levelID uuid.UUID) (bool, error) {
	var cnt int64
	err := tx.Model(&academicModel.LevelModel{}).
		Where("level_id = ? AND level_school_id = ? AND level_deleted_at IS NULL", levelID, schoolID).
		Count(&cnt).Error
	return cnt > 0, err
}

// POST /groups
func (h *GroupController) CreateGroup(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req academicDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID
	req.Name = strings.TrimSpace(req.Name)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m academicModel.GroupModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := levelExists(tx, schoolID, req.LevelID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check level")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "level does not exist in this school")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create group")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "group created", academicDTO.FromGroupModel(m))
}

// GET /groups/:id
func (h *GroupController) GetGroup(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.GroupModel
	if err := h.DB.
		Where("group_id = ? AND group_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "group not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch group")
	}

	return helper.JsonOK(c, "group found", academicDTO.FromGroupModel(m))
}

// GET /groups?level_id=
func (h *GroupController) ListGroups(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&academicModel.GroupModel{}).
		Where("group_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("level_id")); s != "" {
		lid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid level_id")
		}
		tx = tx.Where("group_level_id = ?", lid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count groups")
	}

	var rows []academicModel.GroupModel
	if err := tx.
		Order("group_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch groups")
	}

	return helper.JsonList(c, "groups found", academicDTO.FromGroupModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /groups/:id
func (h *GroupController) UpdateGroup(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req academicDTO.UpdateGroupRequest
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

	var m academicModel.GroupModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ? AND group_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "group not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch group")
		}

		req.Apply(&m)
		if err := tx.Model(&academicModel.GroupModel{}).
			Where("group_id = ? AND group_school_id = ?", id, schoolID).
			Update("group_name", m.GroupName).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update group")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "group updated", academicDTO.FromGroupModel(m))
}

// DELETE /groups/:id
func (h *GroupController) DeleteGroup(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.GroupModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ? AND group_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "group not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch group")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeGroup, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "group not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete group")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "group deleted", academicDTO.FromGroupModel(m))
}
