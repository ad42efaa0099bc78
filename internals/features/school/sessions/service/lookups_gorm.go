package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLookups resolves chain rows with single JOIN queries. Each fetch is by
// id only; tenant checks stay in Validate so a cross-school id is reported
// as a school mismatch.
type GormLookups struct {
	DB *gorm.DB
}

func NewGormLookups(db *gorm.DB) *GormLookups {
	return &GormLookups{DB: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (l *GormLookups) GroupCoordinator(id uuid.UUID) (*GroupCoordinatorChain, error) {
	var row struct {
		ID                uuid.UUID
		SchoolID          uuid.UUID
		GroupID           uuid.UUID
		GroupLevelID      uuid.UUID
		CoordinatorID     uuid.UUID
		CoordinatorRole   string
		CoordinatorStatus string
	}
	err := l.DB.Table("group_coordinators AS gc").
		Select(`gc.group_coordinator_id AS id,
			gc.group_coordinator_school_id AS school_id,
			gc.group_coordinator_group_id AS group_id,
			g.group_level_id AS group_level_id,
			gc.group_coordinator_coordinator_id AS coordinator_id,
			u.user_role AS coordinator_role,
			u.user_status AS coordinator_status`).
		Joins("JOIN groups AS g ON g.group_id = gc.group_coordinator_group_id AND g.group_deleted_at IS NULL").
		Joins("JOIN users AS u ON u.user_id = gc.group_coordinator_coordinator_id AND u.user_deleted_at IS NULL").
		Where("gc.group_coordinator_id = ? AND gc.group_coordinator_deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &GroupCoordinatorChain{
		ID:                row.ID,
		SchoolID:          row.SchoolID,
		GroupID:           row.GroupID,
		GroupLevelID:      row.GroupLevelID,
		CoordinatorID:     row.CoordinatorID,
		CoordinatorRole:   row.CoordinatorRole,
		CoordinatorStatus: row.CoordinatorStatus,
	}, nil
}

func (l *GormLookups) TeacherCoordinator(id uuid.UUID) (*TeacherCoordinatorChain, error) {
	var row struct {
		ID            uuid.UUID
		SchoolID      uuid.UUID
		TeacherID     uuid.UUID
		CoordinatorID uuid.UUID
	}
	err := l.DB.Table("teacher_coordinators AS tc").
		Select(`tc.teacher_coordinator_id AS id,
			tc.teacher_coordinator_school_id AS school_id,
			tc.teacher_coordinator_teacher_id AS teacher_id,
			tc.teacher_coordinator_coordinator_id AS coordinator_id`).
		Where("tc.teacher_coordinator_id = ? AND tc.teacher_coordinator_deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &TeacherCoordinatorChain{
		ID:            row.ID,
		SchoolID:      row.SchoolID,
		TeacherID:     row.TeacherID,
		CoordinatorID: row.CoordinatorID,
	}, nil
}

func (l *GormLookups) TeacherField(id uuid.UUID) (*TeacherFieldChain, error) {
	var row struct {
		ID        uuid.UUID
		SchoolID  uuid.UUID
		TeacherID uuid.UUID
		FieldID   uuid.UUID
	}
	err := l.DB.Table("teacher_fields AS tf").
		Select(`tf.teacher_field_id AS id,
			tf.teacher_field_school_id AS school_id,
			tf.teacher_field_teacher_id AS teacher_id,
			tf.teacher_field_field_id AS field_id`).
		Where("tf.teacher_field_id = ? AND tf.teacher_field_deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &TeacherFieldChain{
		ID:        row.ID,
		SchoolID:  row.SchoolID,
		TeacherID: row.TeacherID,
		FieldID:   row.FieldID,
	}, nil
}

func (l *GormLookups) Subject(id uuid.UUID) (*SubjectChain, error) {
	var row struct {
		ID       uuid.UUID
		SchoolID uuid.UUID
		LevelID  uuid.UUID
		FieldID  *uuid.UUID
	}
	err := l.DB.Table("subjects AS s").
		Select(`s.subject_id AS id,
			s.subject_school_id AS school_id,
			s.subject_level_id AS level_id,
			s.subject_field_id AS field_id`).
		Where("s.subject_id = ? AND s.subject_deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &SubjectChain{
		ID:       row.ID,
		SchoolID: row.SchoolID,
		LevelID:  row.LevelID,
		FieldID:  row.FieldID,
	}, nil
}
