package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	userModel "sekolahku_backend/internals/features/school/users/model"
)

type CreateTeacherRequest struct {
	SchoolID        uuid.UUID `json:"-" validate:"required"`
	UserID          uuid.UUID `json:"teacher_user_id" validate:"required"`
	AvailableDays   []int64   `json:"teacher_available_days" validate:"omitempty,dive,gte=0,lte=6"`
	AssignableHours int       `json:"teacher_assignable_hours" validate:"gte=0"`
}

func (r CreateTeacherRequest) ToModel() userModel.TeacherModel {
	return userModel.TeacherModel{
		TeacherSchoolID:        r.SchoolID,
		TeacherUserID:          r.UserID,
		TeacherAvailableDays:   pq.Int64Array(r.AvailableDays),
		TeacherAssignableHours: r.AssignableHours,
	}
}

type UpdateTeacherRequest struct {
	AvailableDays   *[]int64 `json:"teacher_available_days" validate:"omitempty,dive,gte=0,lte=6"`
	AssignableHours *int     `json:"teacher_assignable_hours" validate:"omitempty,gte=0"`
}

func (r UpdateTeacherRequest) Apply(m *userModel.TeacherModel) {
	if r.AvailableDays != nil {
		m.TeacherAvailableDays = pq.Int64Array(*r.AvailableDays)
	}
	if r.AssignableHours != nil {
		m.TeacherAssignableHours = *r.AssignableHours
	}
}

type TeacherResponse struct {
	TeacherID       uuid.UUID `json:"teacher_id"`
	SchoolID        uuid.UUID `json:"teacher_school_id"`
	UserID          uuid.UUID `json:"teacher_user_id"`
	AvailableDays   []int64   `json:"teacher_available_days"`
	AssignableHours int       `json:"teacher_assignable_hours"`
	AssignedHours   int       `json:"teacher_assigned_hours"`
	CreatedAt       time.Time `json:"teacher_created_at"`
	UpdatedAt       time.Time `json:"teacher_updated_at"`
}

func FromTeacherModel(m userModel.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:       m.TeacherID,
		SchoolID:        m.TeacherSchoolID,
		UserID:          m.TeacherUserID,
		AvailableDays:   []int64(m.TeacherAvailableDays),
		AssignableHours: m.TeacherAssignableHours,
		AssignedHours:   m.TeacherAssignedHours,
		CreatedAt:       m.TeacherCreatedAt,
		UpdatedAt:       m.TeacherUpdatedAt,
	}
}

func FromTeacherModels(rows []userModel.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromTeacherModel(m))
	}
	return out
}
