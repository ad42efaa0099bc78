package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/sessions/service"
)

type fakeLookups struct {
	gc *service.GroupCoordinatorChain
	tc *service.TeacherCoordinatorChain
	tf *service.TeacherFieldChain
	sj *service.SubjectChain

	gcErr, tcErr, tfErr, sjErr error

	gcCalls, tcCalls, tfCalls, sjCalls int
}

func (f *fakeLookups) GroupCoordinator(id uuid.UUID) (*service.GroupCoordinatorChain, error) {
	f.gcCalls++
	if f.gcErr != nil {
		return nil, f.gcErr
	}
	return f.gc, nil
}

func (f *fakeLookups) TeacherCoordinator(id uuid.UUID) (*service.TeacherCoordinatorChain, error) {
	f.tcCalls++
	if f.tcErr != nil {
		return nil, f.tcErr
	}
	return f.tc, nil
}

func (f *fakeLookups) TeacherField(id uuid.UUID) (*service.TeacherFieldChain, error) {
	f.tfCalls++
	if f.tfErr != nil {
		return nil, f.tfErr
	}
	return f.tf, nil
}

func (f *fakeLookups) Subject(id uuid.UUID) (*service.SubjectChain, error) {
	f.sjCalls++
	if f.sjErr != nil {
		return nil, f.sjErr
	}
	return f.sj, nil
}

// consistentChain builds a candidate plus lookups where every relationship
// agrees. Individual tests then break exactly one link.
func consistentChain() (service.Candidate, *fakeLookups) {
	school := uuid.New()
	level := uuid.New()
	group := uuid.New()
	coordinator := uuid.New()
	teacher := uuid.New()
	field := uuid.New()

	cand := service.Candidate{
		SchoolID:             school,
		LevelID:              level,
		GroupID:              group,
		GroupCoordinatorID:   uuid.New(),
		TeacherCoordinatorID: uuid.New(),
		TeacherFieldID:       uuid.New(),
		SubjectID:            uuid.New(),
		StartTime:            8 * 60,
	}

	lk := &fakeLookups{
		gc: &service.GroupCoordinatorChain{
			ID:                cand.GroupCoordinatorID,
			SchoolID:          school,
			GroupID:           group,
			GroupLevelID:      level,
			CoordinatorID:     coordinator,
			CoordinatorRole:   "coordinator",
			CoordinatorStatus: "active",
		},
		tc: &service.TeacherCoordinatorChain{
			ID:            cand.TeacherCoordinatorID,
			SchoolID:      school,
			TeacherID:     teacher,
			CoordinatorID: coordinator,
		},
		tf: &service.TeacherFieldChain{
			ID:        cand.TeacherFieldID,
			SchoolID:  school,
			TeacherID: teacher,
			FieldID:   field,
		},
		sj: &service.SubjectChain{
			ID:       cand.SubjectID,
			SchoolID: school,
			LevelID:  level,
			FieldID:  &field,
		},
	}
	return cand, lk
}

func requireViolation(t *testing.T, err error, kind service.Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	v, ok := service.AsViolation(err)
	require.True(t, ok, "expected a violation, got %v", err)
	assert.Equal(t, kind, v.Kind)
	assert.Equal(t, msg, v.Message)
}

func TestValidate_HappyPath(t *testing.T) {
	cand, lk := consistentChain()

	require.NoError(t, service.Validate(lk, cand))

	assert.Equal(t, 1, lk.gcCalls)
	assert.Equal(t, 1, lk.tcCalls)
	assert.Equal(t, 1, lk.tfCalls)
	assert.Equal(t, 1, lk.sjCalls)
}

func TestValidate_StartTimeOutOfRange(t *testing.T) {
	cand, lk := consistentChain()
	cand.StartTime = 1440

	err := service.Validate(lk, cand)
	requireViolation(t, err, service.KindTimeBound, "start time must not exceed 23:00")

	// Pure local check, no resolution happens.
	assert.Zero(t, lk.gcCalls)
	assert.Zero(t, lk.tcCalls)
	assert.Zero(t, lk.tfCalls)
	assert.Zero(t, lk.sjCalls)
}

func TestValidate_StartTimeNegative(t *testing.T) {
	cand, lk := consistentChain()
	cand.StartTime = -1

	requireViolation(t, service.Validate(lk, cand),
		service.KindTimeBound, "start time must not exceed 23:00")
}

func TestValidate_GroupCoordinatorNotFound(t *testing.T) {
	cand, lk := consistentChain()
	lk.gcErr = service.ErrNotFound

	requireViolation(t, service.Validate(lk, cand),
		service.KindNotFound, "group_coordinator assignment does not exist")
	assert.Zero(t, lk.tcCalls)
}

func TestValidate_GroupCoordinatorWrongSchool(t *testing.T) {
	cand, lk := consistentChain()
	lk.gc.SchoolID = uuid.New()

	requireViolation(t, service.Validate(lk, cand),
		service.KindSchoolMismatch, "group coordinator does not belong to the school")
}

func TestValidate_GroupLevelMismatchShortCircuits(t *testing.T) {
	cand, lk := consistentChain()
	lk.gc.GroupLevelID = uuid.New()

	requireViolation(t, service.Validate(lk, cand),
		service.KindLevelMismatch, "group does not belong to the level")

	// Nothing past step 2 may run.
	assert.Equal(t, 1, lk.gcCalls)
	assert.Zero(t, lk.tcCalls)
	assert.Zero(t, lk.tfCalls)
	assert.Zero(t, lk.sjCalls)
}

func TestValidate_GroupMismatch(t *testing.T) {
	cand, lk := consistentChain()
	lk.gc.GroupID = uuid.New()

	requireViolation(t, service.Validate(lk, cand),
		service.KindGroupMismatch, "group does not match the one assigned to the coordinator")
}

func TestValidate_CoordinatorRole(t *testing.T) {
	cand, lk := consistentChain()
	lk.gc.CoordinatorRole = "teacher"

	requireViolation(t, service.Validate(lk, cand),
		service.KindRoleMismatch, "must pass a user with a coordinator role")
}

func TestValidate_CoordinatorStatus(t *testing.T) {
	cand, lk := consistentChain()
	lk.gc.CoordinatorStatus = "leave"

	requireViolation(t, service.Validate(lk, cand),
		service.KindStatusMismatch, "must pass an active coordinator")
}

func TestValidate_CoordinatorMismatchShortCircuits(t *testing.T) {
	cand, lk := consistentChain()
	lk.tc.CoordinatorID = uuid.New()

	requireViolation(t, service.Validate(lk, cand),
		service.KindCoordinatorMismatch, "coordinator must be assigned to both group and teacher")

	assert.Equal(t, 1, lk.tcCalls)
	assert.Zero(t, lk.tfCalls)
	assert.Zero(t, lk.sjCalls)
}

func TestValidate_TeacherCoordinatorNotFound(t *testing.T) {
	cand, lk := consistentChain()
	lk.tcErr = service.ErrNotFound

	requireViolation(t, service.Validate(lk, cand),
		service.KindNotFound, "teacher_coordinator assignment does not exist")
}

func TestValidate_TeacherMismatch(t *testing.T) {
	cand, lk := consistentChain()
	lk.tf.TeacherID = uuid.New()

	requireViolation(t, service.Validate(lk, cand),
		service.KindTeacherMismatch, "teacher assigned to coordinator must also be assigned to the field")
	assert.Zero(t, lk.sjCalls)
}

func TestValidate_TeacherFieldNotFound(t *testing.T) {
	cand, lk := consistentChain()
	lk.tfErr = service.ErrNotFound

	requireViolation(t, service.Validate(lk, cand),
		service.KindNotFound, "teacher_field assignment does not exist")
}

func TestValidate_SubjectNotFound(t *testing.T) {
	cand, lk := consistentChain()
	lk.sjErr = service.ErrNotFound

	requireViolation(t, service.Validate(lk, cand),
		service.KindNotFound, "subject does not exist")
}

func TestValidate_SubjectWrongLevel(t *testing.T) {
	cand, lk := consistentChain()
	lk.sj.LevelID = uuid.New()

	requireViolation(t, service.Validate(lk, cand),
		service.KindLevelMismatch, "subject does not belong to the level")
}

func TestValidate_SubjectFieldMismatch(t *testing.T) {
	cand, lk := consistentChain()
	other := uuid.New()
	lk.sj.FieldID = &other

	requireViolation(t, service.Validate(lk, cand),
		service.KindFieldMismatch, "field assigned to teacher must match the subject's field")
}

func TestValidate_SubjectFieldCleared(t *testing.T) {
	cand, lk := consistentChain()
	lk.sj.FieldID = nil // field was deleted, subject kept with the link nulled

	requireViolation(t, service.Validate(lk, cand),
		service.KindFieldMismatch, "field assigned to teacher must match the subject's field")
}

// When two links are broken at once only the earlier step's violation is
// reported, and resolution stops there.
func TestValidate_EarlierStepWins(t *testing.T) {
	cand, lk := consistentChain()
	lk.gc.GroupLevelID = uuid.New()
	lk.tc.CoordinatorID = uuid.New()

	requireViolation(t, service.Validate(lk, cand),
		service.KindLevelMismatch, "group does not belong to the level")
	assert.Zero(t, lk.tcCalls)
}

func TestValidate_LookupFailurePropagates(t *testing.T) {
	cand, lk := consistentChain()
	boom := errors.New("connection reset")
	lk.tfErr = boom

	err := service.Validate(lk, cand)
	require.Error(t, err)
	_, ok := service.AsViolation(err)
	assert.False(t, ok, "infrastructure failure must not surface as a violation")
	assert.ErrorIs(t, err, boom)
}
