package controller

import (
	"errors"
	"testing"

	sessionModel "sekolahku_backend/internals/features/school/sessions/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The update write must match on exactly the three identity columns, with the
// level taken from the row as it was fetched, not from the patched record.
func TestUpdateFilter_IdentityColumns(t *testing.T) {
	id := uuid.New()
	school := uuid.New()
	fetchedLevel := uuid.New()

	f := updateFilter(id, school, fetchedLevel)

	require.Len(t, f, 3, "filter must carry the identity columns and nothing else")
	assert.Equal(t, id, f["session_id"])
	assert.Equal(t, school, f["session_school_id"])
	assert.Equal(t, fetchedLevel, f["session_level_id"])
}

// Identity columns never appear among the written columns; a patched record
// with a different level cannot smuggle it into the write.
func TestUpdatePatch_OmitsIdentityColumns(t *testing.T) {
	m := sessionModel.SessionModel{
		SessionID:        uuid.New(),
		SessionSchoolID:  uuid.New(),
		SessionLevelID:   uuid.New(),
		SessionGroupID:   uuid.New(),
		SessionDay:       3,
		SessionStartTime: 480,
		SessionSlotCount: 2,
	}

	p := updatePatch(m)

	for _, col := range []string{"session_id", "session_school_id", "session_level_id"} {
		_, ok := p[col]
		assert.Falsef(t, ok, "%s must not be written", col)
	}
	assert.Equal(t, m.SessionGroupID, p["session_group_id"])
	assert.Equal(t, 3, p["session_day"])
	assert.Equal(t, 480, p["session_start_time"])
	assert.Equal(t, 2, p["session_slot_count"])
}

// A write that matched no row after the session was already fetched is a
// conflict, distinct from the 404 of a session that does not exist.
func TestUpdateOutcome(t *testing.T) {
	assert.NoError(t, updateOutcome(1, nil))

	err := updateOutcome(0, nil)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "session not updated", fe.Message)

	err = updateOutcome(0, errors.New("connection reset"))
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
}
