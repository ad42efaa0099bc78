package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Day/time configuration a Level runs on. The config blob keeps slot layout
// (first slot minute, slot length, slots per day, school days) as JSONB.
type ScheduleModel struct {
	ScheduleID       uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleSchoolID uuid.UUID `gorm:"column:schedule_school_id;type:uuid;not null;index" json:"schedule_school_id"`

	ScheduleName   string            `gorm:"column:schedule_name;type:varchar(120);not null" json:"schedule_name"`
	ScheduleConfig datatypes.JSONMap `gorm:"column:schedule_config;type:jsonb" json:"schedule_config"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;not null;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;not null;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
