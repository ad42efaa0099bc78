package controller

import (
	"errors"
	"strings"

	userDTO "sekolahku_backend/internals/features/school/users/dto"
	userModel "sekolahku_backend/internals/features/school/users/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherController struct {
	DB *gorm.DB
}

// CREATE
// POST /teachers promotes an existing user to teacher.
func (h *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m userModel.TeacherModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// The referenced user must live in the same school.
		var u userModel.UserModel
		if err := tx.Where("user_id = ? AND user_school_id = ?", req.UserID, schoolID).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
		}

		var cnt int64
		if err := tx.Model(&userModel.TeacherModel{}).
			Where("teacher_school_id = ? AND teacher_user_id = ? AND teacher_deleted_at IS NULL", schoolID, req.UserID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check teacher")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "user already has a teacher record")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create teacher")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "teacher created", userDTO.FromTeacherModel(m))
}

// GET /teachers/:id
func (h *TeacherController) GetTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m userModel.TeacherModel
	if err := h.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
	}

	return helper.JsonOK(c, "teacher found", userDTO.FromTeacherModel(m))
}

// GET /teachers
func (h *TeacherController) ListTeachers(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&userModel.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count teachers")
	}

	var rows []userModel.TeacherModel
	if err := tx.
		Order("teacher_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teachers")
	}

	return helper.JsonList(c, "teachers found", userDTO.FromTeacherModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /teachers/:id
func (h *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req userDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m userModel.TeacherModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "teacher not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
		}

		req.Apply(&m)
		if err := tx.Model(&userModel.TeacherModel{}).
			Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"teacher_available_days":   m.TeacherAvailableDays,
				"teacher_assignable_hours": m.TeacherAssignableHours,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update teacher")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "teacher updated", userDTO.FromTeacherModel(m))
}

// DELETE /teachers/:id
// Removes the teacher's junctions (by field and as teacher under a
// coordinator) and clears the session slots that used them.
func (h *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m userModel.TeacherModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "teacher not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeTeacher, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "teacher not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete teacher")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "teacher deleted", userDTO.FromTeacherModel(m))
}
