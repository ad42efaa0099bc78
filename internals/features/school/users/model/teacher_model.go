package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// One-to-one with a User (one teacher record per user per school).
// teacher_available_days holds weekday numbers 0 (Sunday) .. 6.
type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`
	TeacherUserID   uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null;index" json:"teacher_user_id"`

	TeacherAvailableDays pq.Int64Array `gorm:"column:teacher_available_days;type:int[]" json:"teacher_available_days"`

	TeacherAssignableHours int `gorm:"column:teacher_assignable_hours;not null;default:0" json:"teacher_assignable_hours"`
	TeacherAssignedHours   int `gorm:"column:teacher_assigned_hours;not null;default:0" json:"teacher_assigned_hours"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
