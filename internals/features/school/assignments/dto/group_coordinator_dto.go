package dto

import (
	"time"

	"github.com/google/uuid"

	assignmentModel "sekolahku_backend/internals/features/school/assignments/model"
)

type CreateGroupCoordinatorRequest struct {
	SchoolID      uuid.UUID `json:"-" validate:"required"`
	GroupID       uuid.UUID `json:"group_coordinator_group_id" validate:"required"`
	CoordinatorID uuid.UUID `json:"group_coordinator_coordinator_id" validate:"required"`
}

func (r CreateGroupCoordinatorRequest) ToModel() assignmentModel.GroupCoordinatorModel {
	return assignmentModel.GroupCoordinatorModel{
		GroupCoordinatorSchoolID:      r.SchoolID,
		GroupCoordinatorGroupID:       r.GroupID,
		GroupCoordinatorCoordinatorID: r.CoordinatorID,
	}
}

type GroupCoordinatorResponse struct {
	GroupCoordinatorID uuid.UUID `json:"group_coordinator_id"`
	SchoolID           uuid.UUID `json:"group_coordinator_school_id"`
	GroupID            uuid.UUID `json:"group_coordinator_group_id"`
	CoordinatorID      uuid.UUID `json:"group_coordinator_coordinator_id"`
	CreatedAt          time.Time `json:"group_coordinator_created_at"`
}

func FromGroupCoordinatorModel(m assignmentModel.GroupCoordinatorModel) GroupCoordinatorResponse {
	return GroupCoordinatorResponse{
		GroupCoordinatorID: m.GroupCoordinatorID,
		SchoolID:           m.GroupCoordinatorSchoolID,
		GroupID:            m.GroupCoordinatorGroupID,
		CoordinatorID:      m.GroupCoordinatorCoordinatorID,
		CreatedAt:          m.GroupCoordinatorCreatedAt,
	}
}

func FromGroupCoordinatorModels(rows []assignmentModel.GroupCoordinatorModel) []GroupCoordinatorResponse {
	out := make([]GroupCoordinatorResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromGroupCoordinatorModel(m))
	}
	return out
}
