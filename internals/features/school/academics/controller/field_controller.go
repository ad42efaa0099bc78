package controller

import (
	"errors"
	"strings"

	academicDTO "sekolahku_backend/internals/features/school/academics/dto"
	academicModel "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FieldController struct {
	DB *gorm.DB
}

var validate = validator.New()

// POST /fields
func (h *FieldController) CreateField(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req academicDTO.CreateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID
	req.Name = strings.TrimSpace(req.Name)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m academicModel.FieldModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&academicModel.FieldModel{}).
			Where("field_school_id = ? AND lower(field_name) = ? AND field_deleted_at IS NULL",
				schoolID, strings.ToLower(req.Name)).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check field name")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "field name already in use in this school")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create field")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "field created", academicDTO.FromFieldModel(m))
}

// GET /fields/:id
func (h *FieldController) GetField(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.FieldModel
	if err := h.DB.
		Where("field_id = ? AND field_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "field not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch field")
	}

	return helper.JsonOK(c, "field found", academicDTO.FromFieldModel(m))
}

// GET /fields?q=
func (h *FieldController) ListFields(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&academicModel.FieldModel{}).
		Where("field_school_id = ?", schoolID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(field_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count fields")
	}

	var rows []academicModel.FieldModel
	if err := tx.
		Order("field_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch fields")
	}

	return helper.JsonList(c, "fields found", academicDTO.FromFieldModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /fields/:id
func (h *FieldController) UpdateField(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req academicDTO.UpdateFieldRequest
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

	var m academicModel.FieldModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ? AND field_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "field not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch field")
		}

		if req.Name != nil && !strings.EqualFold(*req.Name, m.FieldName) {
			var cnt int64
			if err := tx.Model(&academicModel.FieldModel{}).
				Where("field_school_id = ? AND lower(field_name) = ? AND field_id <> ? AND field_deleted_at IS NULL",
					schoolID, strings.ToLower(*req.Name), id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to check field name")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "field name already in use in this school")
			}
		}

		req.Apply(&m)
		if err := tx.Model(&academicModel.FieldModel{}).
			Where("field_id = ? AND field_school_id = ?", id, schoolID).
			Update("field_name", m.FieldName).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update field")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "field updated", academicDTO.FromFieldModel(m))
}

// DELETE /fields/:id
// Removes the field's teacher assignments, clears subject references, and
// nulls the teacher-field pointer on sessions that used a removed assignment.
func (h *FieldController) DeleteField(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.FieldModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ? AND field_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "field not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch field")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeField, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "field not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete field")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "field deleted", academicDTO.FromFieldModel(m))
}
