package integrity_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/integrity"
)

// memRow is one record in the fake store. refs maps column name to the
// referenced id (nil once nullified).
type memRow struct {
	id      uuid.UUID
	school  uuid.UUID
	refs    map[string]*uuid.UUID
	deleted bool
}

// memStore is an in-memory implementation of integrity.Store keeping rows per
// table, counting writes and optionally failing a chosen operation.
type memStore struct {
	tables  map[string][]*memRow
	writes  int
	failOp  string // "delete", "nullify" or "find"; empty means never fail
	failTab string
}

func newMemStore() *memStore {
	return &memStore{tables: map[string][]*memRow{}}
}

func (m *memStore) add(table string, r *memRow) *memRow {
	if r.id == uuid.Nil {
		r.id = uuid.New()
	}
	if r.refs == nil {
		r.refs = map[string]*uuid.UUID{}
	}
	m.tables[table] = append(m.tables[table], r)
	return r
}

func (m *memStore) fail(op, table string) bool {
	return m.failOp == op && m.failTab == table
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (m *memStore) Exists(ent integrity.Entity, schoolID, id uuid.UUID) (bool, error) {
	for _, r := range m.tables[ent.Table] {
		if !r.deleted && r.id == id && r.school == schoolID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) FindRefIDs(ent integrity.Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) ([]uuid.UUID, error) {
	if m.fail("find", ent.Table) {
		return nil, errors.New("store unavailable")
	}
	var out []uuid.UUID
	for _, r := range m.tables[ent.Table] {
		if r.deleted || r.school != schoolID {
			continue
		}
		if ref := r.refs[refColumn]; ref != nil && contains(parentIDs, *ref) {
			out = append(out, r.id)
		}
	}
	return out, nil
}

func (m *memStore) DeleteWhereRef(ent integrity.Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) (int64, error) {
	if m.fail("delete", ent.Table) {
		return 0, errors.New("store unavailable")
	}
	var n int64
	for _, r := range m.tables[ent.Table] {
		if r.deleted || r.school != schoolID {
			continue
		}
		if ref := r.refs[refColumn]; ref != nil && contains(parentIDs, *ref) {
			r.deleted = true
			n++
			m.writes++
		}
	}
	return n, nil
}

func (m *memStore) NullifyRef(ent integrity.Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) (int64, error) {
	if m.fail("nullify", ent.Table) {
		return 0, errors.New("store unavailable")
	}
	var n int64
	for _, r := range m.tables[ent.Table] {
		if r.deleted || r.school != schoolID {
			continue
		}
		if ref := r.refs[refColumn]; ref != nil && contains(parentIDs, *ref) {
			r.refs[refColumn] = nil
			n++
			m.writes++
		}
	}
	return n, nil
}

func (m *memStore) DeleteByID(ent integrity.Entity, schoolID, id uuid.UUID) (int64, error) {
	if m.fail("delete", ent.Table) {
		return 0, errors.New("store unavailable")
	}
	for _, r := range m.tables[ent.Table] {
		if !r.deleted && r.id == id && r.school == schoolID {
			r.deleted = true
			m.writes++
			return 1, nil
		}
	}
	return 0, nil
}

func ref(id uuid.UUID) *uuid.UUID { return &id }

func newEngine() *integrity.Engine {
	return integrity.NewEngine(integrity.DefaultRegistry())
}

// Deleting a Field removes its teacher_field junctions, clears subject_field_id
// on subjects, and clears session_teacher_field_id on sessions that used the
// removed junctions.
func TestDelete_FieldCascade(t *testing.T) {
	st := newMemStore()
	school := uuid.New()

	field := st.add("fields", &memRow{school: school})
	tf1 := st.add("teacher_fields", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_field_field_id": ref(field.id)}})
	tf2 := st.add("teacher_fields", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_field_field_id": ref(field.id)}})
	subj := st.add("subjects", &memRow{school: school, refs: map[string]*uuid.UUID{"subject_field_id": ref(field.id)}})
	sess1 := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_teacher_field_id": ref(tf1.id)}})
	sess2 := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_teacher_field_id": ref(tf2.id)}})

	require.NoError(t, newEngine().Delete(st, integrity.TypeField, school, field.id))

	assert.True(t, field.deleted)
	assert.True(t, tf1.deleted, "junction by field must be removed")
	assert.True(t, tf2.deleted, "junction by field must be removed")
	assert.False(t, subj.deleted, "subject survives its field")
	assert.Nil(t, subj.refs["subject_field_id"], "subject field link must be cleared")
	assert.False(t, sess1.deleted)
	assert.Nil(t, sess1.refs["session_teacher_field_id"], "session link to removed junction must be cleared")
	assert.Nil(t, sess2.refs["session_teacher_field_id"])
}

// Deleting a Level takes groups, subjects and sessions with it, and the
// group recursion repairs coordinator assignments and their session refs.
func TestDelete_LevelCascade(t *testing.T) {
	st := newMemStore()
	school := uuid.New()

	level := st.add("levels", &memRow{school: school})
	group := st.add("groups", &memRow{school: school, refs: map[string]*uuid.UUID{"group_level_id": ref(level.id)}})
	subj := st.add("subjects", &memRow{school: school, refs: map[string]*uuid.UUID{"subject_level_id": ref(level.id)}})
	sess := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_level_id": ref(level.id)}})
	gc := st.add("group_coordinators", &memRow{school: school, refs: map[string]*uuid.UUID{"group_coordinator_group_id": ref(group.id)}})
	otherSess := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_group_coordinator_id": ref(gc.id)}})

	require.NoError(t, newEngine().Delete(st, integrity.TypeLevel, school, level.id))

	assert.True(t, group.deleted)
	assert.True(t, subj.deleted)
	assert.True(t, sess.deleted)
	assert.True(t, gc.deleted, "coordinator assignment goes with the group")
	assert.False(t, otherSess.deleted)
	assert.Nil(t, otherSess.refs["session_group_coordinator_id"])
}

// Deleting a Group removes its sessions and coordinator assignments;
// sessions of other groups keep running, with refs to the removed
// assignments cleared.
func TestDelete_GroupCascadeRemovesSessions(t *testing.T) {
	st := newMemStore()
	school := uuid.New()

	group := st.add("groups", &memRow{school: school})
	gc := st.add("group_coordinators", &memRow{school: school, refs: map[string]*uuid.UUID{"group_coordinator_group_id": ref(group.id)}})
	sess := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_group_id": ref(group.id)}})
	otherSess := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_group_coordinator_id": ref(gc.id)}})

	require.NoError(t, newEngine().Delete(st, integrity.TypeGroup, school, group.id))

	assert.True(t, group.deleted)
	assert.True(t, sess.deleted, "a session cannot outlive its group")
	assert.True(t, gc.deleted)
	assert.False(t, otherSess.deleted, "sessions of other groups keep running")
	assert.Nil(t, otherSess.refs["session_group_coordinator_id"], "link to removed assignment must be cleared")
}

// Deleting a User who is both a teacher and a coordinator of other teachers
// repairs both sides: teacher junctions and coordinator assignments, plus all
// session references to any of them.
func TestDelete_UserAsTeacherAndCoordinator(t *testing.T) {
	st := newMemStore()
	school := uuid.New()

	user := st.add("users", &memRow{school: school})
	teacher := st.add("teachers", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_user_id": ref(user.id)}})
	tf := st.add("teacher_fields", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_field_teacher_id": ref(teacher.id)}})
	tcAsTeacher := st.add("teacher_coordinators", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_coordinator_teacher_id": ref(teacher.id)}})
	tcAsCoord := st.add("teacher_coordinators", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_coordinator_coordinator_id": ref(user.id)}})
	gcAsCoord := st.add("group_coordinators", &memRow{school: school, refs: map[string]*uuid.UUID{"group_coordinator_coordinator_id": ref(user.id)}})

	sessTF := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_teacher_field_id": ref(tf.id)}})
	sessTC := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_teacher_coordinator_id": ref(tcAsCoord.id)}})
	sessGC := st.add("sessions", &memRow{school: school, refs: map[string]*uuid.UUID{"session_group_coordinator_id": ref(gcAsCoord.id)}})

	require.NoError(t, newEngine().Delete(st, integrity.TypeUser, school, user.id))

	assert.True(t, user.deleted)
	assert.True(t, teacher.deleted, "teacher record resolved through user_id")
	assert.True(t, tf.deleted)
	assert.True(t, tcAsTeacher.deleted, "junction where user teaches")
	assert.True(t, tcAsCoord.deleted, "junction where user coordinates")
	assert.True(t, gcAsCoord.deleted)

	for _, s := range []*memRow{sessTF, sessTC, sessGC} {
		assert.False(t, s.deleted, "sessions survive with links cleared")
	}
	assert.Nil(t, sessTF.refs["session_teacher_field_id"])
	assert.Nil(t, sessTC.refs["session_teacher_coordinator_id"])
	assert.Nil(t, sessGC.refs["session_group_coordinator_id"])
}

// Second delete with the same filter is NotFound and performs zero writes.
func TestDelete_Idempotent(t *testing.T) {
	st := newMemStore()
	school := uuid.New()
	field := st.add("fields", &memRow{school: school})
	st.add("teacher_fields", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_field_field_id": ref(field.id)}})

	eng := newEngine()
	require.NoError(t, eng.Delete(st, integrity.TypeField, school, field.id))

	before := st.writes
	err := eng.Delete(st, integrity.TypeField, school, field.id)
	assert.ErrorIs(t, err, integrity.ErrNotFound)
	assert.Equal(t, before, st.writes, "repeat delete must not write")
}

// No cascade step may touch a row belonging to another school, even when the
// reference columns match.
func TestDelete_SchoolScoped(t *testing.T) {
	st := newMemStore()
	school := uuid.New()
	other := uuid.New()

	field := st.add("fields", &memRow{school: school})
	// Same field id referenced from a different tenant: must stay untouched.
	foreignTF := st.add("teacher_fields", &memRow{school: other, refs: map[string]*uuid.UUID{"teacher_field_field_id": ref(field.id)}})
	foreignSubj := st.add("subjects", &memRow{school: other, refs: map[string]*uuid.UUID{"subject_field_id": ref(field.id)}})

	require.NoError(t, newEngine().Delete(st, integrity.TypeField, school, field.id))

	assert.False(t, foreignTF.deleted)
	assert.NotNil(t, foreignSubj.refs["subject_field_id"])
}

func TestDelete_WrongSchoolIsNotFound(t *testing.T) {
	st := newMemStore()
	field := st.add("fields", &memRow{school: uuid.New()})

	err := newEngine().Delete(st, integrity.TypeField, uuid.New(), field.id)
	assert.ErrorIs(t, err, integrity.ErrNotFound)
	assert.False(t, field.deleted)
}

// A failing repair step surfaces its error; the operation is never reported
// as success with a partially repaired graph.
func TestDelete_StepFailurePropagates(t *testing.T) {
	st := newMemStore()
	school := uuid.New()
	field := st.add("fields", &memRow{school: school})
	st.add("teacher_fields", &memRow{school: school, refs: map[string]*uuid.UUID{"teacher_field_field_id": ref(field.id)}})
	st.failOp, st.failTab = "nullify", "subjects"

	err := newEngine().Delete(st, integrity.TypeField, school, field.id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
}

func TestDelete_UnknownEntity(t *testing.T) {
	st := newMemStore()
	err := newEngine().Delete(st, "classroom", uuid.New(), uuid.New())
	assert.ErrorIs(t, err, integrity.ErrUnknownEntity)
}
