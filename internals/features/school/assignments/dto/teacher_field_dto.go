package dto

import (
	"time"

	"github.com/google/uuid"

	assignmentModel "sekolahku_backend/internals/features/school/assignments/model"
)

type CreateTeacherFieldRequest struct {
	SchoolID  uuid.UUID `json:"-" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_field_teacher_id" validate:"required"`
	FieldID   uuid.UUID `json:"teacher_field_field_id" validate:"required"`
}

func (r CreateTeacherFieldRequest) ToModel() assignmentModel.TeacherFieldModel {
	return assignmentModel.TeacherFieldModel{
		TeacherFieldSchoolID:  r.SchoolID,
		TeacherFieldTeacherID: r.TeacherID,
		TeacherFieldFieldID:   r.FieldID,
	}
}

type TeacherFieldResponse struct {
	TeacherFieldID uuid.UUID `json:"teacher_field_id"`
	SchoolID       uuid.UUID `json:"teacher_field_school_id"`
	TeacherID      uuid.UUID `json:"teacher_field_teacher_id"`
	FieldID        uuid.UUID `json:"teacher_field_field_id"`
	CreatedAt      time.Time `json:"teacher_field_created_at"`
}

func FromTeacherFieldModel(m assignmentModel.TeacherFieldModel) TeacherFieldResponse {
	return TeacherFieldResponse{
		TeacherFieldID: m.TeacherFieldID,
		SchoolID:       m.TeacherFieldSchoolID,
		TeacherID:      m.TeacherFieldTeacherID,
		FieldID:        m.TeacherFieldFieldID,
		CreatedAt:      m.TeacherFieldCreatedAt,
	}
}

func FromTeacherFieldModels(rows []assignmentModel.TeacherFieldModel) []TeacherFieldResponse {
	out := make([]TeacherFieldResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromTeacherFieldModel(m))
	}
	return out
}
