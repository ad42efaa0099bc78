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

type SubjectController struct {
	DB *gorm.DB
}

func fieldExists(tx *gorm.DB, schoolID, fieldID uuid.UUID) (bool, error) {
	var cnt int64
	err := tx.Model(&academicModel.FieldModel{}).
		Where("field_id = ? AND field_school_id = ? AND field_deleted_at IS NULL", fieldID, schoolID).
		Count(&cnt).Error
	return cnt > 0, err
}

func subjectNameTaken(tx *gorm.DB, schoolID, levelID uuid.UUID, name string, exclude *uuid.UUID) (bool, error) {
	q := tx.Model(&academicModel.SubjectModel{}).
		Where("subject_school_id = ? AND subject_level_id = ? AND lower(subject_name) = ? AND subject_deleted_at IS NULL",
			schoolID, levelID, strings.ToLower(name))
	if exclude != nil {
		q = q.Where("subject_id <> ?", *exclude)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt > 0, err
}

// POST /subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req academicDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID
	req.Name = strings.TrimSpace(req.Name)

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m academicModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := levelExists(tx, schoolID, req.LevelID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check level")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "level does not exist in this school")
		}

		ok, err = fieldExists(tx, schoolID, req.FieldID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check field")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "field does not exist in this school")
		}

		taken, err := subjectNameTaken(tx, schoolID, req.LevelID, req.Name, nil)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check subject name")
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, "subject name already in use in this level")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create subject")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "subject created", academicDTO.FromSubjectModel(m))
}

// GET /subjects/:id
func (h *SubjectController) GetSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.SubjectModel
	if err := h.DB.
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch subject")
	}

	return helper.JsonOK(c, "subject found", academicDTO.FromSubjectModel(m))
}

// GET /subjects?level_id=&field_id=
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&academicModel.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("level_id")); s != "" {
		lid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid level_id")
		}
		tx = tx.Where("subject_level_id = ?", lid)
	}
	if s := strings.TrimSpace(c.Query("field_id")); s != "" {
		fid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid field_id")
		}
		tx = tx.Where("subject_field_id = ?", fid)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count subjects")
	}

	var rows []academicModel.SubjectModel
	if err := tx.
		Order("subject_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch subjects")
	}

	return helper.JsonList(c, "subjects found", academicDTO.FromSubjectModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /subjects/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req academicDTO.UpdateSubjectRequest
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

	var m academicModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ? AND subject_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch subject")
		}

		if req.FieldID != nil {
			ok, err := fieldExists(tx, schoolID, *req.FieldID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to check field")
			}
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "field does not exist in this school")
			}
		}
		if req.Name != nil && !strings.EqualFold(*req.Name, m.SubjectName) {
			taken, err := subjectNameTaken(tx, schoolID, m.SubjectLevelID, *req.Name, &id)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to check subject name")
			}
			if taken {
				return fiber.NewError(fiber.StatusConflict, "subject name already in use in this level")
			}
		}

		req.Apply(&m)
		if err := tx.Model(&academicModel.SubjectModel{}).
			Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"subject_name":     m.SubjectName,
				"subject_field_id": m.SubjectFieldID,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update subject")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "subject updated", academicDTO.FromSubjectModel(m))
}

// DELETE /subjects/:id
// Sessions pointing at the subject keep their row, the subject_id is nulled.
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m academicModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ? AND subject_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch subject")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeSubject, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete subject")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "subject deleted", academicDTO.FromSubjectModel(m))
}
