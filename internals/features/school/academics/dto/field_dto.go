package dto

import (
	"time"

	"github.com/google/uuid"

	academicModel "sekolahku_backend/internals/features/school/academics/model"
)

type CreateFieldRequest struct {
	SchoolID uuid.UUID `json:"-" validate:"required"`
	Name     string    `json:"field_name" validate:"required,min=2,max=120"`
}

func (r CreateFieldRequest) ToModel() academicModel.FieldModel {
	return academicModel.FieldModel{
		FieldSchoolID: r.SchoolID,
		FieldName:     r.Name,
	}
}

type UpdateFieldRequest struct {
	Name *string `json:"field_name" validate:"omitempty,min=2,max=120"`
}

func (r UpdateFieldRequest) Apply(m *academicModel.FieldModel) {
	if r.Name != nil {
		m.FieldName = *r.Name
	}
}

type FieldResponse struct {
	FieldID   uuid.UUID `json:"field_id"`
	SchoolID  uuid.UUID `json:"field_school_id"`
	Name      string    `json:"field_name"`
	CreatedAt time.Time `json:"field_created_at"`
	UpdatedAt time.Time `json:"field_updated_at"`
}

func FromFieldModel(m academicModel.FieldModel) FieldResponse {
	return FieldResponse{
		FieldID:   m.FieldID,
		SchoolID:  m.FieldSchoolID,
		Name:      m.FieldName,
		CreatedAt: m.FieldCreatedAt,
		UpdatedAt: m.FieldUpdatedAt,
	}
}

func FromFieldModels(rows []academicModel.FieldModel) []FieldResponse {
	out := make([]FieldResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromFieldModel(m))
	}
	return out
}
