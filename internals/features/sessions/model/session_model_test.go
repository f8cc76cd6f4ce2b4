// file: internals/features/sessions/model/session_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestHasPresent(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	var m SessionModel
	err := m.SetAttendanceList([]AttendanceRecord{
		{StudentID: a, Status: AttendanceStatusPresent},
		{StudentID: b, Status: AttendanceStatusAbsent},
	})
	assert.NoError(t, err)

	got, err := m.HasPresent(a)
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = m.HasPresent(b)
	assert.NoError(t, err)
	assert.False(t, got)

	// not on the roll at all (enrolled after capture)
	got, err = m.HasPresent(uuid.New())
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestHasPresent_UnreadableRoll(t *testing.T) {
	m := SessionModel{
		SessionAttendanceList: datatypes.JSON([]byte(`[{"student_id":`)),
	}
	_, err := m.HasPresent(uuid.New())
	assert.Error(t, err)
}

func TestHasPresent_EmptyRoll(t *testing.T) {
	var m SessionModel
	got, err := m.HasPresent(uuid.New())
	assert.NoError(t, err)
	assert.False(t, got)
}
