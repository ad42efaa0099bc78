package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	academicModel "sekolahku_backend/internals/features/school/academics/model"
)

type CreateScheduleRequest struct {
	SchoolID uuid.UUID      `json:"-" validate:"required"`
	Name     string         `json:"schedule_name" validate:"required,min=2,max=120"`
	Config   map[string]any `json:"schedule_config"`
}

func (r CreateScheduleRequest) ToModel() academicModel.ScheduleModel {
	return academicModel.ScheduleModel{
		ScheduleSchoolID: r.SchoolID,
		ScheduleName:     r.Name,
		ScheduleConfig:   datatypes.JSONMap(r.Config),
	}
}

type UpdateScheduleRequest struct {
	Name   *string         `json:"schedule_name" validate:"omitempty,min=2,max=120"`
	Config *map[string]any `json:"schedule_config"`
}

func (r UpdateScheduleRequest) Apply(m *academicModel.ScheduleModel) {
	if r.Name != nil {
		m.ScheduleName = *r.Name
	}
	if r.Config != nil {
		m.ScheduleConfig = datatypes.JSONMap(*r.Config)
	}
}

type ScheduleResponse struct {
	ScheduleID uuid.UUID      `json:"schedule_id"`
	SchoolID   uuid.UUID      `json:"schedule_school_id"`
	Name       string         `json:"schedule_name"`
	Config     map[string]any `json:"schedule_config"`
	CreatedAt  time.Time      `json:"schedule_created_at"`
	UpdatedAt  time.Time      `json:"schedule_updated_at"`
}

func FromScheduleModel(m academicModel.ScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID: m.ScheduleID,
		SchoolID:   m.ScheduleSchoolID,
		Name:       m.ScheduleName,
		Config:     map[string]any(m.ScheduleConfig),
		CreatedAt:  m.ScheduleCreatedAt,
		UpdatedAt:  m.ScheduleUpdatedAt,
	}
}

func FromScheduleModels(rows []academicModel.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromScheduleModel(m))
	}
	return out
}
