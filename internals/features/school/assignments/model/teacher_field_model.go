package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Junction: a teacher qualified to teach a field. Unique per
// (school, teacher, field) among live rows.
type TeacherFieldModel struct {
	TeacherFieldID       uuid.UUID `gorm:"column:teacher_field_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_field_id"`
	TeacherFieldSchoolID uuid.UUID `gorm:"column:teacher_field_school_id;type:uuid;not null;index" json:"teacher_field_school_id"`

	TeacherFieldTeacherID uuid.UUID `gorm:"column:teacher_field_teacher_id;type:uuid;not null;index" json:"teacher_field_teacher_id"`
	TeacherFieldFieldID   uuid.UUID `gorm:"column:teacher_field_field_id;type:uuid;not null;index" json:"teacher_field_field_id"`

	TeacherFieldCreatedAt time.Time      `gorm:"column:teacher_field_created_at;not null;autoCreateTime" json:"teacher_field_created_at"`
	TeacherFieldUpdatedAt time.Time      `gorm:"column:teacher_field_updated_at;not null;autoUpdateTime" json:"teacher_field_updated_at"`
	TeacherFieldDeletedAt gorm.DeletedAt `gorm:"column:teacher_field_deleted_at;index" json:"teacher_field_deleted_at,omitempty"`
}

func (TeacherFieldModel) TableName() string { return "teacher_fields" }
