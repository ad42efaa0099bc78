package dto

import (
	"time"

	"github.com/google/uuid"

	academicModel "sekolahku_backend/internals/features/school/academics/model"
)

type CreateGroupRequest struct {
	SchoolID uuid.UUID `json:"-" validate:"required"`
	LevelID  uuid.UUID `json:"group_level_id" validate:"required"`
	Name     string    `json:"group_name" validate:"required,min=1,max=120"`
}

func (r CreateGroupRequest) ToModel() academicModel.GroupModel {
	return academicModel.GroupModel{
		GroupSchoolID: r.SchoolID,
		GroupLevelID:  r.LevelID,
		GroupName:     r.Name,
	}
}

type UpdateGroupRequest struct {
	Name *string `json:"group_name" validate:"omitempty,min=1,max=120"`
}

func (r UpdateGroupRequest) Apply(m *academicModel.GroupModel) {
	if r.Name != nil {
		m.GroupName = *r.Name
	}
}

type GroupResponse struct {
	GroupID   uuid.UUID `json:"group_id"`
	SchoolID  uuid.UUID `json:"group_school_id"`
	LevelID   uuid.UUID `json:"group_level_id"`
	Name      string    `json:"group_name"`
	CreatedAt time.Time `json:"group_created_at"`
	UpdatedAt time.Time `json:"group_updated_at"`
}

func FromGroupModel(m academicModel.GroupModel) GroupResponse {
	return GroupResponse{
		GroupID:   m.GroupID,
		SchoolID:  m.GroupSchoolID,
		LevelID:   m.GroupLevelID,
		Name:      m.GroupName,
		CreatedAt: m.GroupCreatedAt,
		UpdatedAt: m.GroupUpdatedAt,
	}
}

func FromGroupModels(rows []academicModel.GroupModel) []GroupResponse {
	out := make([]GroupResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromGroupModel(m))
	}
	return out
}
