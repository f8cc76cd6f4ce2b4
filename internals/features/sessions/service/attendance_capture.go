// file: internals/features/sessions/service/attendance_capture.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "engclass_backend/internals/features/sessions/model"
	studentModel "engclass_backend/internals/features/students/model"
	"engclass_backend/internals/store"
)

var (
	// ErrInvalidRequest: save attempted without a class and date selected.
	// No store call is made in that case.
	ErrInvalidRequest = errors.New("a class and a date must be selected")
	// ErrDuplicateSession: a session for the same (class, date) already exists.
	ErrDuplicateSession = errors.New("a session for this class and date already exists")
)

// CaptureState is the in-memory attendance sheet for one class selection.
//
// The roster is a snapshot taken at selection time: students enrolled after
// the fetch do not appear on the sheet and will be absent from the saved
// record entirely. Changing the class discards the state; the caller loads a
// fresh one (that is also the refresh affordance for a stale roster).
type CaptureState struct {
	ClassID uuid.UUID
	Date    time.Time
	Topic   string

	roster  []studentModel.StudentModel
	present map[uuid.UUID]bool
}

// NewCaptureState seeds the sheet with every rostered student marked Present.
func NewCaptureState(classID uuid.UUID, roster []studentModel.StudentModel) *CaptureState {
	present := make(map[uuid.UUID]bool, len(roster))
	for i := range roster {
		present[roster[i].StudentID] = true
	}
	return &CaptureState{
		ClassID: classID,
		roster:  roster,
		present: present,
	}
}

func (s *CaptureState) Roster() []studentModel.StudentModel { return s.roster }

// Toggle flips one student's status in memory; nothing is persisted until
// Save. Returns false when the student is not on the sheet.
func (s *CaptureState) Toggle(studentID uuid.UUID) bool {
	if _, ok := s.present[studentID]; !ok {
		return false
	}
	s.present[studentID] = !s.present[studentID]
	return true
}

// AttendanceList materializes the roll in roster order.
func (s *CaptureState) AttendanceList() []sessionModel.AttendanceRecord {
	list := make([]sessionModel.AttendanceRecord, 0, len(s.roster))
	for i := range s.roster {
		status := sessionModel.AttendanceStatusAbsent
		if s.present[s.roster[i].StudentID] {
			status = sessionModel.AttendanceStatusPresent
		}
		list = append(list, sessionModel.AttendanceRecord{
			StudentID: s.roster[i].StudentID,
			Status:    status,
		})
	}
	return list
}

// BuildSession turns the sheet into a session record. Precondition: class and
// date selected, otherwise ErrInvalidRequest.
func (s *CaptureState) BuildSession() (*sessionModel.SessionModel, error) {
	if s.ClassID == uuid.Nil || s.Date.IsZero() {
		return nil, ErrInvalidRequest
	}
	m := &sessionModel.SessionModel{
		SessionClassID: s.ClassID,
		SessionDate:    s.Date,
		SessionTopic:   s.Topic,
	}
	if err := m.SetAttendanceList(s.AttendanceList()); err != nil {
		return nil, err
	}
	return m, nil
}

/* =========================
   Store-backed workflow
   ========================= */

// sessionStore is the slice of persistence Save needs; keeping it behind an
// interface lets the duplicate guard be exercised without a database.
type sessionStore interface {
	countByClassAndDate(ctx context.Context, classID uuid.UUID, date time.Time) (int64, error)
	create(ctx context.Context, m *sessionModel.SessionModel) error
}

type gormSessionStore struct{ db *gorm.DB }

func (g gormSessionStore) countByClassAndDate(ctx context.Context, classID uuid.UUID, date time.Time) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).
		Model(&sessionModel.SessionModel{}).
		Where("session_class_id = ? AND session_date = ?", classID, date).
		Count(&n).Error
	if err != nil {
		return 0, store.Translate(err)
	}
	return n, nil
}

func (g gormSessionStore) create(ctx context.Context, m *sessionModel.SessionModel) error {
	return store.Create(ctx, g.db, m)
}

type AttendanceCapture struct {
	DB *gorm.DB

	sessions sessionStore
}

func NewAttendanceCapture(db *gorm.DB) *AttendanceCapture {
	return &AttendanceCapture{
		DB:       db,
		sessions: gormSessionStore{db: db},
	}
}

// LoadRoster fetches the class roster and opens a fresh sheet.
func (w *AttendanceCapture) LoadRoster(ctx context.Context, classID uuid.UUID) (*CaptureState, error) {
	if classID == uuid.Nil {
		return nil, ErrInvalidRequest
	}
	roster, err := store.ListWhere[studentModel.StudentModel](ctx, w.DB, "student_class_id", classID)
	if err != nil {
		return nil, err
	}
	return NewCaptureState(classID, roster), nil
}

// Save persists a session record. Unless force is set, an existing session
// for the same (class, date) blocks the save with ErrDuplicateSession; force
// restores the original duplicate-allowing behavior.
func (w *AttendanceCapture) Save(ctx context.Context, m *sessionModel.SessionModel, force bool) error {
	if m.SessionClassID == uuid.Nil || m.SessionDate.IsZero() {
		return ErrInvalidRequest
	}
	if !force {
		n, err := w.sessions.countByClassAndDate(ctx, m.SessionClassID, m.SessionDate)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateSession
		}
	}
	return w.sessions.create(ctx, m)
}
