package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Root tenant. Every other entity carries a school id and is invisible
// outside its school.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolName string `gorm:"column:school_name;type:varchar(120);not null" json:"school_name"`
	SchoolSlug string `gorm:"column:school_slug;type:varchar(160);not null;uniqueIndex" json:"school_slug"`

	SchoolIsActive bool `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;not null;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;not null;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
