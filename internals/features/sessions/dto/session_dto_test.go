// file: internals/features/sessions/dto/session_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "engclass_backend/internals/features/sessions/model"
)

func TestCreateSessionRequest_ToModel(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	req := CreateSessionRequest{
		SessionClassID: uuid.New(),
		SessionDate:    "2025-03-10",
		SessionTopic:   "IELTS Speaking Part 1",
		SessionAttendanceList: []AttendanceEntryRequest{
			{StudentID: a, Status: "Present"},
			{StudentID: b, Status: "Absent"},
		},
	}

	m, err := req.ToModel()
	assert.NoError(t, err)
	assert.Equal(t, req.SessionClassID, m.SessionClassID)
	assert.Equal(t, "2025-03-10", m.SessionDate.Format("2006-01-02"))

	list, err := m.AttendanceList()
	assert.NoError(t, err)
	if assert.Len(t, list, 2) {
		assert.Equal(t, a, list[0].StudentID)
		assert.Equal(t, model.AttendanceStatusPresent, list[0].Status)
		assert.Equal(t, b, list[1].StudentID)
		assert.Equal(t, model.AttendanceStatusAbsent, list[1].Status)
	}
}

func TestCreateSessionRequest_ToModelBadDate(t *testing.T) {
	req := CreateSessionRequest{
		SessionClassID: uuid.New(),
		SessionDate:    "10/03/2025",
	}
	_, err := req.ToModel()
	assert.Error(t, err)
}
