package controller

import (
	"errors"
	"strings"

	schoolDTO "sekolahku_backend/internals/features/school/schools/dto"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SchoolController struct {
	DB *gorm.DB
}

var validate = validator.New()

// CREATE
// POST /schools is the registration endpoint, not school-scoped.
func (h *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)

	slug := ""
	if req.Slug != nil {
		slug = helper.GenerateSlug(*req.Slug)
	}
	if slug == "" {
		slug = helper.GenerateSlug(req.Name)
	}
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "school name not usable as slug")
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m schoolModel.SchoolModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&schoolModel.SchoolModel{}).
			Where("lower(school_slug) = lower(?) AND school_deleted_at IS NULL", slug).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check slug")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "school slug already in use")
		}

		m = req.ToModel(slug)
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create school")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "school created", schoolDTO.FromSchoolModel(m))
}

// GET /schools returns the school the token is scoped to.
func (h *SchoolController) GetSchool(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var m schoolModel.SchoolModel
	if err := h.DB.
		Where("school_id = ?", schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "school not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch school")
	}

	return helper.JsonOK(c, "school found", schoolDTO.FromSchoolModel(m))
}

// PUT /schools
func (h *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req schoolDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if req.Name != nil {
		s := strings.TrimSpace(*req.Name)
		req.Name = &s
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m schoolModel.SchoolModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("school_id = ?", schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "school not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch school")
		}

		req.Apply(&m)
		if err := tx.Model(&schoolModel.SchoolModel{}).
			Where("school_id = ?", schoolID).
			Updates(map[string]interface{}{
				"school_name":      m.SchoolName,
				"school_is_active": m.SchoolIsActive,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update school")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "school updated", schoolDTO.FromSchoolModel(m))
}
