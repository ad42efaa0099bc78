package dto

import (
	"time"

	"github.com/google/uuid"

	academicModel "sekolahku_backend/internals/features/school/academics/model"
)

type CreateSubjectRequest struct {
	SchoolID uuid.UUID `json:"-" validate:"required"`
	LevelID  uuid.UUID `json:"subject_level_id" validate:"required"`
	FieldID  uuid.UUID `json:"subject_field_id" validate:"required"`
	Name     string    `json:"subject_name" validate:"required,min=1,max=120"`
}

func (r CreateSubjectRequest) ToModel() academicModel.SubjectModel {
	fieldID := r.FieldID
	return academicModel.SubjectModel{
		SubjectSchoolID: r.SchoolID,
		SubjectLevelID:  r.LevelID,
		SubjectFieldID:  &fieldID,
		SubjectName:     r.Name,
	}
}

type UpdateSubjectRequest struct {
	Name    *string    `json:"subject_name" validate:"omitempty,min=1,max=120"`
	FieldID *uuid.UUID `json:"subject_field_id"`
}

func (r UpdateSubjectRequest) Apply(m *academicModel.SubjectModel) {
	if r.Name != nil {
		m.SubjectName = *r.Name
	}
	if r.FieldID != nil {
		m.SubjectFieldID = r.FieldID
	}
}

type SubjectResponse struct {
	SubjectID uuid.UUID  `json:"subject_id"`
	SchoolID  uuid.UUID  `json:"subject_school_id"`
	LevelID   uuid.UUID  `json:"subject_level_id"`
	FieldID   *uuid.UUID `json:"subject_field_id,omitempty"`
	Name      string     `json:"subject_name"`
	CreatedAt time.Time  `json:"subject_created_at"`
	UpdatedAt time.Time  `json:"subject_updated_at"`
}

func FromSubjectModel(m academicModel.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID: m.SubjectID,
		SchoolID:  m.SubjectSchoolID,
		LevelID:   m.SubjectLevelID,
		FieldID:   m.SubjectFieldID,
		Name:      m.SubjectName,
		CreatedAt: m.SubjectCreatedAt,
		UpdatedAt: m.SubjectUpdatedAt,
	}
}

func FromSubjectModels(rows []academicModel.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromSubjectModel(m))
	}
	return out
}
