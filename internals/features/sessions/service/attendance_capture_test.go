// file: internals/features/sessions/service/attendance_capture_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	sessionModel "engclass_backend/internals/features/sessions/model"
	studentModel "engclass_backend/internals/features/students/model"
)

func newRoster(t *testing.T, names ...string) []studentModel.StudentModel {
	t.Helper()
	out := make([]studentModel.StudentModel, 0, len(names))
	for _, name := range names {
		out = append(out, studentModel.StudentModel{
			StudentID:   uuid.New(),
			StudentName: name,
		})
	}
	return out
}

func TestCaptureState_DefaultsEveryonePresent(t *testing.T) {
	roster := newRoster(t, "A", "B", "C")
	state := NewCaptureState(uuid.New(), roster)

	list := state.AttendanceList()
	if assert.Len(t, list, 3) {
		for i, rec := range list {
			assert.Equal(t, roster[i].StudentID, rec.StudentID)
			assert.Equal(t, sessionModel.AttendanceStatusPresent, rec.Status)
		}
	}
}

func TestCaptureState_Toggle(t *testing.T) {
	roster := newRoster(t, "A", "B")
	state := NewCaptureState(uuid.New(), roster)

	assert.True(t, state.Toggle(roster[1].StudentID))
	list := state.AttendanceList()
	assert.Equal(t, sessionModel.AttendanceStatusPresent, list[0].Status)
	assert.Equal(t, sessionModel.AttendanceStatusAbsent, list[1].Status)

	// a second flip restores Present
	assert.True(t, state.Toggle(roster[1].StudentID))
	assert.Equal(t, sessionModel.AttendanceStatusPresent, state.AttendanceList()[1].Status)
}

func TestCaptureState_ToggleUnknownStudent(t *testing.T) {
	state := NewCaptureState(uuid.New(), newRoster(t, "A"))
	assert.False(t, state.Toggle(uuid.New()))
	assert.Len(t, state.AttendanceList(), 1)
}

func TestCaptureState_RosterIsSnapshot(t *testing.T) {
	roster := newRoster(t, "A", "B")
	state := NewCaptureState(uuid.New(), roster)
	state.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// a student joining the class after the fetch never enters the sheet
	m, err := state.BuildSession()
	assert.NoError(t, err)
	list, err := m.AttendanceList()
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, roster[0].StudentID, list[0].StudentID)
	assert.Equal(t, roster[1].StudentID, list[1].StudentID)
}

func TestCaptureState_BuildSessionRequiresSelection(t *testing.T) {
	// no class
	state := NewCaptureState(uuid.Nil, nil)
	state.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := state.BuildSession()
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// no date
	state = NewCaptureState(uuid.New(), nil)
	_, err = state.BuildSession()
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCaptureState_BuildSessionCarriesSelection(t *testing.T) {
	classID := uuid.New()
	roster := newRoster(t, "A")
	state := NewCaptureState(classID, roster)
	state.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	state.Topic = "Grammar Unit 10"
	state.Toggle(roster[0].StudentID)

	m, err := state.BuildSession()
	assert.NoError(t, err)
	assert.Equal(t, classID, m.SessionClassID)
	assert.Equal(t, "Grammar Unit 10", m.SessionTopic)
	gotPresent, err := m.HasPresent(roster[0].StudentID)
	assert.NoError(t, err)
	assert.False(t, gotPresent)
}

func TestAttendanceCaptureSave_RequiresSelection(t *testing.T) {
	w := NewAttendanceCapture(nil)

	err := w.Save(context.Background(), &sessionModel.SessionModel{}, false)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// precondition fails before any store call, so a nil DB is never touched
	err = w.Save(context.Background(), &sessionModel.SessionModel{SessionClassID: uuid.New()}, false)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

type fakeSessionStore struct {
	existing   int64
	countErr   error
	countCalls int
	created    []*sessionModel.SessionModel
}

func (f *fakeSessionStore) countByClassAndDate(ctx context.Context, classID uuid.UUID, date time.Time) (int64, error) {
	f.countCalls++
	return f.existing, f.countErr
}

func (f *fakeSessionStore) create(ctx context.Context, m *sessionModel.SessionModel) error {
	f.created = append(f.created, m)
	return nil
}

func capturedSession(t *testing.T) *sessionModel.SessionModel {
	t.Helper()
	return &sessionModel.SessionModel{
		SessionClassID: uuid.New(),
		SessionDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestAttendanceCaptureSave_BlocksSameClassAndDate(t *testing.T) {
	fake := &fakeSessionStore{existing: 1}
	w := &AttendanceCapture{sessions: fake}

	err := w.Save(context.Background(), capturedSession(t), false)
	assert.ErrorIs(t, err, ErrDuplicateSession)
	assert.Equal(t, 1, fake.countCalls)
	assert.Empty(t, fake.created)
}

func TestAttendanceCaptureSave_ForceSkipsDuplicateGuard(t *testing.T) {
	fake := &fakeSessionStore{existing: 1}
	w := &AttendanceCapture{sessions: fake}

	err := w.Save(context.Background(), capturedSession(t), true)
	assert.NoError(t, err)
	assert.Equal(t, 0, fake.countCalls)
	assert.Len(t, fake.created, 1)
}

func TestAttendanceCaptureSave_CreatesWhenDateIsFree(t *testing.T) {
	fake := &fakeSessionStore{}
	w := &AttendanceCapture{sessions: fake}

	m := capturedSession(t)
	err := w.Save(context.Background(), m, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, fake.countCalls)
	if assert.Len(t, fake.created, 1) {
		assert.Same(t, m, fake.created[0])
	}
}

func TestAttendanceCaptureSave_GuardFailureSurfaces(t *testing.T) {
	fake := &fakeSessionStore{countErr: assert.AnError}
	w := &AttendanceCapture{sessions: fake}

	err := w.Save(context.Background(), capturedSession(t), false)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, fake.created)
}
