package controller

import (
	"errors"
	"strings"

	sessionDTO "sekolahku_backend/internals/features/school/sessions/dto"
	sessionModel "sekolahku_backend/internals/features/school/sessions/model"
	"sekolahku_backend/internals/features/school/sessions/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/integrity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionController struct {
	DB *gorm.DB
}

var validate = validator.New()

// violationError maps a failed chain check onto the response status: a
// missing referenced row is 404, every relationship mismatch is 422.
func violationError(v *service.Violation) *fiber.Error {
	if v.Kind == service.KindNotFound {
		return fiber.NewError(fiber.StatusNotFound, v.Message)
	}
	return fiber.NewError(fiber.StatusUnprocessableEntity, v.Message)
}

func deref(p *uuid.UUID) uuid.UUID {
	if p == nil {
		return uuid.Nil
	}
	return *p
}

func candidateFromModel(m sessionModel.SessionModel) service.Candidate {
	return service.Candidate{
		SchoolID:             m.SessionSchoolID,
		LevelID:              m.SessionLevelID,
		GroupID:              m.SessionGroupID,
		GroupCoordinatorID:   deref(m.SessionGroupCoordinatorID),
		TeacherCoordinatorID: deref(m.SessionTeacherCoordinatorID),
		TeacherFieldID:       deref(m.SessionTeacherFieldID),
		SubjectID:            deref(m.SessionSubjectID),
		StartTime:            m.SessionStartTime,
	}
}

// POST /sessions
func (h *SessionController) CreateSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req sessionDTO.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SchoolID = schoolID

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m sessionModel.SessionModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.Validate(service.NewGormLookups(tx), req.Candidate()); err != nil {
			if v, ok := service.AsViolation(err); ok {
				return violationError(v)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to validate session")
		}

		m = req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session not created")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "session created", sessionDTO.FromSessionModel(m))
}

// GET /sessions/:id
func (h *SessionController) GetSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m sessionModel.SessionModel
	if err := h.DB.
		Where("session_id = ? AND session_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch session")
	}

	return helper.JsonOK(c, "session found", sessionDTO.FromSessionModel(m))
}

// GET /sessions?level_id=&group_id=&day=
func (h *SessionController) ListSessions(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&sessionModel.SessionModel{}).
		Where("session_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("level_id")); s != "" {
		lid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid level_id")
		}
		tx = tx.Where("session_level_id = ?", lid)
	}
	if s := strings.TrimSpace(c.Query("group_id")); s != "" {
		gid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid group_id")
		}
		tx = tx.Where("session_group_id = ?", gid)
	}
	if s := strings.TrimSpace(c.Query("day")); s != "" {
		tx = tx.Where("session_day = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count sessions")
	}

	var rows []sessionModel.SessionModel
	if err := tx.
		Order("session_day ASC, session_start_time ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch sessions")
	}

	return helper.JsonList(c, "sessions found", sessionDTO.FromSessionModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// updateFilter pins an update to the session's identity. The level must be
// the value read before the patch was applied, so the write can never land
// on a row whose level no longer matches what was validated.
func updateFilter(id, schoolID, levelID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"session_id":        id,
		"session_school_id": schoolID,
		"session_level_id":  levelID,
	}
}

// updatePatch lists the mutable columns. Identity columns stay out: they are
// matched by the filter, never rewritten.
func updatePatch(m sessionModel.SessionModel) map[string]interface{} {
	return map[string]interface{}{
		"session_group_id":               m.SessionGroupID,
		"session_group_coordinator_id":   m.SessionGroupCoordinatorID,
		"session_teacher_coordinator_id": m.SessionTeacherCoordinatorID,
		"session_teacher_field_id":       m.SessionTeacherFieldID,
		"session_subject_id":             m.SessionSubjectID,
		"session_day":                    m.SessionDay,
		"session_start_time":             m.SessionStartTime,
		"session_slot_count":             m.SessionSlotCount,
	}
}

// updateOutcome maps the write result. Zero matched rows after the session
// was already fetched means the identity filter no longer holds, which is a
// conflict rather than a not-found.
func updateOutcome(rowsAffected int64, err error) error {
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update session")
	}
	if rowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "session not updated")
	}
	return nil
}

// PUT /sessions/:id
// The merged record re-runs the full chain, then the write is filtered by
// the session's own identity including its current level, so it can never
// silently land on a mismatched row.
func (h *SessionController) UpdateSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req sessionDTO.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m sessionModel.SessionModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND session_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "session not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch session")
		}

		existingLevelID := m.SessionLevelID
		req.Apply(&m)

		if err := service.Validate(service.NewGormLookups(tx), candidateFromModel(m)); err != nil {
			if v, ok := service.AsViolation(err); ok {
				return violationError(v)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to validate session")
		}

		res := tx.Model(&sessionModel.SessionModel{}).
			Where(updateFilter(id, schoolID, existingLevelID)).
			Updates(updatePatch(m))
		return updateOutcome(res.RowsAffected, res.Error)
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "session updated", sessionDTO.FromSessionModel(m))
}

// DELETE /sessions/:id
func (h *SessionController) DeleteSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m sessionModel.SessionModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND session_school_id = ?", id, schoolID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "session not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch session")
		}

		if err := integrity.Default().Delete(integrity.NewGormStore(tx), integrity.TypeSession, schoolID, id); err != nil {
			if errors.Is(err, integrity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "session not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete session")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonDeleted(c, "session deleted", sessionDTO.FromSessionModel(m))
}
