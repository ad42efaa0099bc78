package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The central scheduling fact. Sessions never reference Teacher or User
// directly; they reach them through the junction ids. The junction and
// subject references are pointers because a deleted junction nulls the
// column while the session row stays.
type SessionModel struct {
	SessionID       uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`
	SessionSchoolID uuid.UUID `gorm:"column:session_school_id;type:uuid;not null;index" json:"session_school_id"`

	SessionLevelID uuid.UUID `gorm:"column:session_level_id;type:uuid;not null;index" json:"session_level_id"`
	SessionGroupID uuid.UUID `gorm:"column:session_group_id;type:uuid;not null;index" json:"session_group_id"`

	SessionGroupCoordinatorID   *uuid.UUID `gorm:"column:session_group_coordinator_id;type:uuid;index" json:"session_group_coordinator_id,omitempty"`
	SessionTeacherCoordinatorID *uuid.UUID `gorm:"column:session_teacher_coordinator_id;type:uuid;index" json:"session_teacher_coordinator_id,omitempty"`
	SessionTeacherFieldID       *uuid.UUID `gorm:"column:session_teacher_field_id;type:uuid;index" json:"session_teacher_field_id,omitempty"`
	SessionSubjectID            *uuid.UUID `gorm:"column:session_subject_id;type:uuid;index" json:"session_subject_id,omitempty"`

	SessionDay       int `gorm:"column:session_day;not null" json:"session_day"`                          // 0=Sunday .. 6=Saturday
	SessionStartTime int `gorm:"column:session_start_time;not null" json:"session_start_time"`            // minute of day
	SessionSlotCount int `gorm:"column:session_slot_count;not null;default:1" json:"session_slot_count"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;not null;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;not null;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (SessionModel) TableName() string { return "sessions" }
