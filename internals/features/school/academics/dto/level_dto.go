package dto

import (
	"time"

	"github.com/google/uuid"

	academicModel "sekolahku_backend/internals/features/school/academics/model"
)

type CreateLevelRequest struct {
	SchoolID   uuid.UUID `json:"-" validate:"required"`
	Name       string    `json:"level_name" validate:"required,min=1,max=120"`
	ScheduleID uuid.UUID `json:"level_schedule_id" validate:"required"`
}

func (r CreateLevelRequest) ToModel() academicModel.LevelModel {
	return academicModel.LevelModel{
		LevelSchoolID:   r.SchoolID,
		LevelName:       r.Name,
		LevelScheduleID: r.ScheduleID,
	}
}

type UpdateLevelRequest struct {
	Name       *string    `json:"level_name" validate:"omitempty,min=1,max=120"`
	ScheduleID *uuid.UUID `json:"level_schedule_id"`
}

func (r UpdateLevelRequest) Apply(m *academicModel.LevelModel) {
	if r.Name != nil {
		m.LevelName = *r.Name
	}
	if r.ScheduleID != nil {
		m.LevelScheduleID = *r.ScheduleID
	}
}

type LevelResponse struct {
	LevelID    uuid.UUID `json:"level_id"`
	SchoolID   uuid.UUID `json:"level_school_id"`
	Name       string    `json:"level_name"`
	ScheduleID uuid.UUID `json:"level_schedule_id"`
	CreatedAt  time.Time `json:"level_created_at"`
	UpdatedAt  time.Time `json:"level_updated_at"`
}

func FromLevelModel(m academicModel.LevelModel) LevelResponse {
	return LevelResponse{
		LevelID:    m.LevelID,
		SchoolID:   m.LevelSchoolID,
		Name:       m.LevelName,
		ScheduleID: m.LevelScheduleID,
		CreatedAt:  m.LevelCreatedAt,
		UpdatedAt:  m.LevelUpdatedAt,
	}
}

func FromLevelModels(rows []academicModel.LevelModel) []LevelResponse {
	out := make([]LevelResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromLevelModel(m))
	}
	return out
}
