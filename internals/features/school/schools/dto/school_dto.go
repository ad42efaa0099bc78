package dto

import (
	"time"

	"github.com/google/uuid"

	schoolModel "sekolahku_backend/internals/features/school/schools/model"
)

type CreateSchoolRequest struct {
	Name string  `json:"school_name" validate:"required,min=2,max=120"`
	Slug *string `json:"school_slug" validate:"omitempty,min=2,max=160"`
}

func (r CreateSchoolRequest) ToModel(slug string) schoolModel.SchoolModel {
	return schoolModel.SchoolModel{
		SchoolName:     r.Name,
		SchoolSlug:     slug,
		SchoolIsActive: true,
	}
}

type UpdateSchoolRequest struct {
	Name     *string `json:"school_name" validate:"omitempty,min=2,max=120"`
	IsActive *bool   `json:"school_is_active"`
}

func (r UpdateSchoolRequest) Apply(m *schoolModel.SchoolModel) {
	if r.Name != nil {
		m.SchoolName = *r.Name
	}
	if r.IsActive != nil {
		m.SchoolIsActive = *r.IsActive
	}
}

type SchoolResponse struct {
	SchoolID  uuid.UUID `json:"school_id"`
	Name      string    `json:"school_name"`
	Slug      string    `json:"school_slug"`
	IsActive  bool      `json:"school_is_active"`
	CreatedAt time.Time `json:"school_created_at"`
	UpdatedAt time.Time `json:"school_updated_at"`
}

func FromSchoolModel(m schoolModel.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:  m.SchoolID,
		Name:      m.SchoolName,
		Slug:      m.SchoolSlug,
		IsActive:  m.SchoolIsActive,
		CreatedAt: m.SchoolCreatedAt,
		UpdatedAt: m.SchoolUpdatedAt,
	}
}
