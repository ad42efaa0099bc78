package dto

import (
	"time"

	"github.com/google/uuid"

	sessionModel "sekolahku_backend/internals/features/school/sessions/model"
	"sekolahku_backend/internals/features/school/sessions/service"
)

type CreateSessionRequest struct {
	SchoolID             uuid.UUID `json:"-" validate:"required"`
	LevelID              uuid.UUID `json:"session_level_id" validate:"required"`
	GroupID              uuid.UUID `json:"session_group_id" validate:"required"`
	GroupCoordinatorID   uuid.UUID `json:"session_group_coordinator_id" validate:"required"`
	TeacherCoordinatorID uuid.UUID `json:"session_teacher_coordinator_id" validate:"required"`
	TeacherFieldID       uuid.UUID `json:"session_teacher_field_id" validate:"required"`
	SubjectID            uuid.UUID `json:"session_subject_id" validate:"required"`
	Day                  int       `json:"session_day" validate:"min=0,max=6"`
	StartTime            int       `json:"session_start_time"`
	SlotCount            int       `json:"session_slot_count" validate:"required,min=1,max=16"`
}

func (r CreateSessionRequest) Candidate() service.Candidate {
	return service.Candidate{
		SchoolID:             r.SchoolID,
		LevelID:              r.LevelID,
		GroupID:              r.GroupID,
		GroupCoordinatorID:   r.GroupCoordinatorID,
		TeacherCoordinatorID: r.TeacherCoordinatorID,
		TeacherFieldID:       r.TeacherFieldID,
		SubjectID:            r.SubjectID,
		StartTime:            r.StartTime,
	}
}

func (r CreateSessionRequest) ToModel() sessionModel.SessionModel {
	gcID, tcID, tfID, sjID := r.GroupCoordinatorID, r.TeacherCoordinatorID, r.TeacherFieldID, r.SubjectID
	return sessionModel.SessionModel{
		SessionSchoolID:             r.SchoolID,
		SessionLevelID:              r.LevelID,
		SessionGroupID:              r.GroupID,
		SessionGroupCoordinatorID:   &gcID,
		SessionTeacherCoordinatorID: &tcID,
		SessionTeacherFieldID:       &tfID,
		SessionSubjectID:            &sjID,
		SessionDay:                  r.Day,
		SessionStartTime:            r.StartTime,
		SessionSlotCount:            r.SlotCount,
	}
}

type UpdateSessionRequest struct {
	GroupID              *uuid.UUID `json:"session_group_id"`
	GroupCoordinatorID   *uuid.UUID `json:"session_group_coordinator_id"`
	TeacherCoordinatorID *uuid.UUID `json:"session_teacher_coordinator_id"`
	TeacherFieldID       *uuid.UUID `json:"session_teacher_field_id"`
	SubjectID            *uuid.UUID `json:"session_subject_id"`
	Day                  *int       `json:"session_day" validate:"omitempty,min=0,max=6"`
	StartTime            *int       `json:"session_start_time"`
	SlotCount            *int       `json:"session_slot_count" validate:"omitempty,min=1,max=16"`
}

func (r UpdateSessionRequest) Apply(m *sessionModel.SessionModel) {
	if r.GroupID != nil {
		m.SessionGroupID = *r.GroupID
	}
	if r.GroupCoordinatorID != nil {
		m.SessionGroupCoordinatorID = r.GroupCoordinatorID
	}
	if r.TeacherCoordinatorID != nil {
		m.SessionTeacherCoordinatorID = r.TeacherCoordinatorID
	}
	if r.TeacherFieldID != nil {
		m.SessionTeacherFieldID = r.TeacherFieldID
	}
	if r.SubjectID != nil {
		m.SessionSubjectID = r.SubjectID
	}
	if r.Day != nil {
		m.SessionDay = *r.Day
	}
	if r.StartTime != nil {
		m.SessionStartTime = *r.StartTime
	}
	if r.SlotCount != nil {
		m.SessionSlotCount = *r.SlotCount
	}
}

type SessionResponse struct {
	SessionID            uuid.UUID  `json:"session_id"`
	SchoolID             uuid.UUID  `json:"session_school_id"`
	LevelID              uuid.UUID  `json:"session_level_id"`
	GroupID              uuid.UUID  `json:"session_group_id"`
	GroupCoordinatorID   *uuid.UUID `json:"session_group_coordinator_id,omitempty"`
	TeacherCoordinatorID *uuid.UUID `json:"session_teacher_coordinator_id,omitempty"`
	TeacherFieldID       *uuid.UUID `json:"session_teacher_field_id,omitempty"`
	SubjectID            *uuid.UUID `json:"session_subject_id,omitempty"`
	Day                  int        `json:"session_day"`
	StartTime            int        `json:"session_start_time"`
	SlotCount            int        `json:"session_slot_count"`
	CreatedAt            time.Time  `json:"session_created_at"`
	UpdatedAt            time.Time  `json:"session_updated_at"`
}

func FromSessionModel(m sessionModel.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:            m.SessionID,
		SchoolID:             m.SessionSchoolID,
		LevelID:              m.SessionLevelID,
		GroupID:              m.SessionGroupID,
		GroupCoordinatorID:   m.SessionGroupCoordinatorID,
		TeacherCoordinatorID: m.SessionTeacherCoordinatorID,
		TeacherFieldID:       m.SessionTeacherFieldID,
		SubjectID:            m.SessionSubjectID,
		Day:                  m.SessionDay,
		StartTime:            m.SessionStartTime,
		SlotCount:            m.SessionSlotCount,
		CreatedAt:            m.SessionCreatedAt,
		UpdatedAt:            m.SessionUpdatedAt,
	}
}

func FromSessionModels(rows []sessionModel.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromSessionModel(m))
	}
	return out
}
