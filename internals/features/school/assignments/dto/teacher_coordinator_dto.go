package dto

import (
	"time"

	"github.com/google/uuid"

	assignmentModel "sekolahku_backend/internals/features/school/assignments/model"
)

type CreateTeacherCoordinatorRequest struct {
	SchoolID      uuid.UUID `json:"-" validate:"required"`
	TeacherID     uuid.UUID `json:"teacher_coordinator_teacher_id" validate:"required"`
	CoordinatorID uuid.UUID `json:"teacher_coordinator_coordinator_id" validate:"required"`
}

func (r CreateTeacherCoordinatorRequest) ToModel() assignmentModel.TeacherCoordinatorModel {
	return assignmentModel.TeacherCoordinatorModel{
		TeacherCoordinatorSchoolID:      r.SchoolID,
		TeacherCoordinatorTeacherID:     r.TeacherID,
		TeacherCoordinatorCoordinatorID: r.CoordinatorID,
	}
}

type TeacherCoordinatorResponse struct {
	TeacherCoordinatorID uuid.UUID `json:"teacher_coordinator_id"`
	SchoolID             uuid.UUID `json:"teacher_coordinator_school_id"`
	TeacherID            uuid.UUID `json:"teacher_coordinator_teacher_id"`
	CoordinatorID        uuid.UUID `json:"teacher_coordinator_coordinator_id"`
	CreatedAt            time.Time `json:"teacher_coordinator_created_at"`
}

func FromTeacherCoordinatorModel(m assignmentModel.TeacherCoordinatorModel) TeacherCoordinatorResponse {
	return TeacherCoordinatorResponse{
		TeacherCoordinatorID: m.TeacherCoordinatorID,
		SchoolID:             m.TeacherCoordinatorSchoolID,
		TeacherID:            m.TeacherCoordinatorTeacherID,
		CoordinatorID:        m.TeacherCoordinatorCoordinatorID,
		CreatedAt:            m.TeacherCoordinatorCreatedAt,
	}
}

func FromTeacherCoordinatorModels(rows []assignmentModel.TeacherCoordinatorModel) []TeacherCoordinatorResponse {
	out := make([]TeacherCoordinatorResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromTeacherCoordinatorModel(m))
	}
	return out
}
