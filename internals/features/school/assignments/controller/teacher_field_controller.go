package controller

import (
	"errors"
	"strings"

	academicModel "sekolahku_backend/internals/features/school/academics/model"
	assignmentDTO "sekolahku_backend/internals/features/school/assignments/dto"
	assignmentModel "sekolahku_backend/internals/features/school/assignments/model"
	userModel "sekolahku_backend/internals/features/school/users/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherFieldController struct {
	DB *gorm.DB
}

var validate = validator.New()

func teacherExists(tx *gorm.DB, schoolID, teacherID uuid.UUID) (bool, error) {
	var cnt int64
	err := tx.Model(&userModel.TeacherModel{}).
		Where("teacher_id = ? AND teacher_school_id = ? AND teacher_deleted_at IS NULL", teacherID, schoolID).
		Count(&cnt).Error
	return cnt > 0, err
}

// A coordinator endpoint must be an active user holding the coordinator role.
func coordinatorEligible(tx *gorm.DB, schoolID, userID uuid.UUID) (bool, error) {
	var cnt int64
	err := tx.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_school_id = ? AND user_role = ? AND user_status = ? AND user_deleted_at IS NULL",
			userID, schoolID, userModel.RoleCoordinator, userModel.StatusActive).
		Count(&cnt).Error
	return cnt > 0, err
}

// POST /teacher-fields
func (h *TeacherFieldController) CreateTeacherField(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req assignmentDTO.CreateTeacherFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m assignmentModel.TeacherFieldModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := teacherExists(tx, schoolID, req.TeacherID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check teacher")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "teacher does not exist in this school")
		}

		var cnt int64
		if err := tx.Model(&academicModel.FieldModel{}).
			Where("field_id = ? AND field_school_id = ? AND field_deleted_at IS NULL", req.FieldID, schoolID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check field")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "field does not exist in this school")
		}

		if err := tx.Model(&assignmentModel.TeacherFieldModel{}).
			Where("teacher_field_school_id = ? AND teacher_field_teacher_id = ? AND teacher_field_field_id = ? AND teacher_field_deleted_at IS NULL",
				schoolID, req.TeacherID, req.FieldID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check assignment")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "teacher already assigned to this field")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create assignment")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "teacher field assignment created", assignmentDTO.FromTeacherFieldModel(m))
}

// GET /teacher-fields?teacher_id=&field_id=
func (h *TeacherFieldController) ListTeacherFields(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&assignmentModel.TeacherFieldModel{}).
		Where("teacher_field_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("teacher_id")); s != "" {
		tid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid teacher_id")
		}
		tx = tx.Where("teacher_field_teacher_id = ?", tid)
	}
	if s := strings.TrimSpace(c.Query("field_id")); s != "" {
		fid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid field_id")
		}
		tx = tx.Where("teacher_field_field_id = ?", fid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count assignments")
	}

	var rows []assignmentModel.TeacherFieldModel
	if err := tx.
		Order("teacher_field_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignments")
	}

	return helper.JsonList(c, "teacher field assignments found", assignmentDTO.FromTeacherFieldModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /teacher-fields/:id
func (h *TeacherFieldController) GetTeacherField(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m assignmentModel.TeacherFieldModel
	if err := h.DB.
		Where("teacher_field_id = ? AND teacher_field_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "teacher field assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignment")
	}

	return helper.JsonOK(c, "teacher field assignment found", assignmentDTO.FromTeacherFieldModel(m))
}

// DELETE /teacher-fields/:id
// Sessions holding this junction keep their row with the slot unassigned.
func (h *TeacherFieldController) DeleteTeacherField(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m assignmentModel.TeacherFieldModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_field_id = ? AND teacher_field_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "teacher field assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch assignment")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeTeacherField, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "teacher field assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete assignment")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "teacher field assignment deleted", assignmentDTO.FromTeacherFieldModel(m))
}
