// Package service runs the relationship checks a session write must pass.
// The chain is ordered cheapest-first: the pure time check costs nothing,
// every later step needs an identity resolved by the step before it, and the
// first failed check stops the chain so no avoidable lookup ever runs.
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Lookups implementations when no live row
// matches the id. A missing row is a normal negative outcome here, not an
// infrastructure failure.
var ErrNotFound = errors.New("not found")

// Violation kinds. Each relationship check fails with its own kind so the
// caller can report exactly which link in the chain broke.
type Kind string

const (
	KindTimeBound           Kind = "time_bound"
	KindNotFound            Kind = "not_found"
	KindSchoolMismatch      Kind = "school_mismatch"
	KindLevelMismatch       Kind = "level_mismatch"
	KindGroupMismatch       Kind = "group_mismatch"
	KindRoleMismatch        Kind = "role_mismatch"
	KindStatusMismatch      Kind = "status_mismatch"
	KindCoordinatorMismatch Kind = "coordinator_mismatch"
	KindTeacherMismatch     Kind = "teacher_mismatch"
	KindFieldMismatch       Kind = "field_mismatch"
)

// Violation is a failed relationship check. It is an expected outcome, never
// wrapped as an infrastructure error.
type Violation struct {
	Kind    Kind
	Message string
}

func (v *Violation) Error() string { return v.Message }

func violate(kind Kind, msg string) *Violation {
	return &Violation{Kind: kind, Message: msg}
}

// AsViolation unwraps a *Violation from an error chain.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	ok := errors.As(err, &v)
	return v, ok
}

// Candidate carries the proposed session references. All ids are as supplied
// by the caller; nothing is resolved yet.
type Candidate struct {
	SchoolID             uuid.UUID
	LevelID              uuid.UUID
	GroupID              uuid.UUID
	GroupCoordinatorID   uuid.UUID
	TeacherCoordinatorID uuid.UUID
	TeacherFieldID       uuid.UUID
	SubjectID            uuid.UUID
	StartTime            int
}

// Resolved shapes. Each expands the stored references one hop deep, which is
// exactly what the chain compares against.

type GroupCoordinatorChain struct {
	ID                uuid.UUID
	SchoolID          uuid.UUID
	GroupID           uuid.UUID
	GroupLevelID      uuid.UUID
	CoordinatorID     uuid.UUID
	CoordinatorRole   string
	CoordinatorStatus string
}

type TeacherCoordinatorChain struct {
	ID            uuid.UUID
	SchoolID      uuid.UUID
	TeacherID     uuid.UUID
	CoordinatorID uuid.UUID
}

type TeacherFieldChain struct {
	ID        uuid.UUID
	SchoolID  uuid.UUID
	TeacherID uuid.UUID
	FieldID   uuid.UUID
}

type SubjectChain struct {
	ID       uuid.UUID
	SchoolID uuid.UUID
	LevelID  uuid.UUID
	FieldID  *uuid.UUID // nil when the field was deleted out from under it
}

// Lookups resolves junction and subject rows by id, expanding their stored
// references. Rows are fetched by id alone: a row living in another school
// must surface as a school mismatch, not as NotFound.
type Lookups interface {
	GroupCoordinator(id uuid.UUID) (*GroupCoordinatorChain, error)
	TeacherCoordinator(id uuid.UUID) (*TeacherCoordinatorChain, error)
	TeacherField(id uuid.UUID) (*TeacherFieldChain, error)
	Subject(id uuid.UUID) (*SubjectChain, error)
}

// lastMinuteOfDay bounds session_start_time (23:59 as minute of day).
const lastMinuteOfDay = 1439

// Validate walks the candidate's relationship chain. It returns nil when
// every check passes, a *Violation for the first failed check, and any other
// error only when a lookup itself failed.
func Validate(lk Lookups, cand Candidate) error {
	if cand.StartTime < 0 || cand.StartTime > lastMinuteOfDay {
		return violate(KindTimeBound, "start time must not exceed 23:00")
	}

	gc, err := lk.GroupCoordinator(cand.GroupCoordinatorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return violate(KindNotFound, "group_coordinator assignment does not exist")
		}
		return fmt.Errorf("resolve group_coordinator: %w", err)
	}
	if gc.SchoolID != cand.SchoolID {
		return violate(KindSchoolMismatch, "group coordinator does not belong to the school")
	}
	if gc.GroupLevelID != cand.LevelID {
		return violate(KindLevelMismatch, "group does not belong to the level")
	}
	if gc.GroupID != cand.GroupID {
		return violate(KindGroupMismatch, "group does not match the one assigned to the coordinator")
	}
	if gc.CoordinatorRole != "coordinator" {
		return violate(KindRoleMismatch, "must pass a user with a coordinator role")
	}
	if gc.CoordinatorStatus != "active" {
		return violate(KindStatusMismatch, "must pass an active coordinator")
	}

	tc, err := lk.TeacherCoordinator(cand.TeacherCoordinatorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return violate(KindNotFound, "teacher_coordinator assignment does not exist")
		}
		return fmt.Errorf("resolve teacher_coordinator: %w", err)
	}
	if tc.SchoolID != cand.SchoolID {
		return violate(KindSchoolMismatch, "teacher coordinator does not belong to the school")
	}
	if tc.CoordinatorID != gc.CoordinatorID {
		return violate(KindCoordinatorMismatch, "coordinator must be assigned to both group and teacher")
	}

	tf, err := lk.TeacherField(cand.TeacherFieldID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return violate(KindNotFound, "teacher_field assignment does not exist")
		}
		return fmt.Errorf("resolve teacher_field: %w", err)
	}
	if tf.SchoolID != cand.SchoolID {
		return violate(KindSchoolMismatch, "teacher field does not belong to the school")
	}
	if tf.TeacherID != tc.TeacherID {
		return violate(KindTeacherMismatch, "teacher assigned to coordinator must also be assigned to the field")
	}

	sj, err := lk.Subject(cand.SubjectID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return violate(KindNotFound, "subject does not exist")
		}
		return fmt.Errorf("resolve subject: %w", err)
	}
	if sj.SchoolID != cand.SchoolID {
		return violate(KindSchoolMismatch, "subject does not belong to the school")
	}
	if sj.LevelID != cand.LevelID {
		return violate(KindLevelMismatch, "subject does not belong to the level")
	}
	if sj.FieldID == nil || *sj.FieldID != tf.FieldID {
		return violate(KindFieldMismatch, "field assigned to teacher must match the subject's field")
	}

	return nil
}
