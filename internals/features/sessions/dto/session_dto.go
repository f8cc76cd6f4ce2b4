// file: internals/features/sessions/dto/session_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "engclass_backend/internals/features/sessions/model"
	studentModel "engclass_backend/internals/features/students/model"
)

const dateLayout = "2006-01-02"

/*
=========================================================
REQUEST: save a captured attendance sheet
=========================================================
*/

type AttendanceEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=Present Absent"`
}

type CreateSessionRequest struct {
	SessionClassID uuid.UUID `json:"session_class_id" validate:"required"`
	SessionDate    string    `json:"session_date"     validate:"required"` // YYYY-MM-DD
	SessionTopic   string    `json:"session_topic"    validate:"omitempty,max=300"`

	// The materialized roster snapshot; order is preserved in the record.
	SessionAttendanceList []AttendanceEntryRequest `json:"session_attendance_list" validate:"required,dive"`
}

func (r *CreateSessionRequest) Normalize() {
	r.SessionTopic = strings.TrimSpace(r.SessionTopic)
	r.SessionDate = strings.TrimSpace(r.SessionDate)
}

func (r *CreateSessionRequest) ToModel() (*model.SessionModel, error) {
	date, err := time.Parse(dateLayout, r.SessionDate)
	if err != nil {
		return nil, fmt.Errorf("session_date must be YYYY-MM-DD: %w", err)
	}

	list := make([]model.AttendanceRecord, 0, len(r.SessionAttendanceList))
	for _, e := range r.SessionAttendanceList {
		list = append(list, model.AttendanceRecord{
			StudentID: e.StudentID,
			Status:    model.AttendanceStatus(e.Status),
		})
	}

	m := &model.SessionModel{
		SessionClassID: r.SessionClassID,
		SessionDate:    date,
		SessionTopic:   r.SessionTopic,
	}
	if err := m.SetAttendanceList(list); err != nil {
		return nil, err
	}
	return m, nil
}

/*
=========================================================
RESPONSES
=========================================================
*/

type SessionResponse struct {
	SessionID             uuid.UUID                `json:"session_id"`
	SessionClassID        uuid.UUID                `json:"session_class_id"`
	SessionDate           string                   `json:"session_date"` // YYYY-MM-DD
	SessionTopic          string                   `json:"session_topic"`
	SessionAttendanceList []model.AttendanceRecord `json:"session_attendance_list"`
	SessionCreatedAt      time.Time                `json:"session_created_at"`
}

func FromModelSession(m *model.SessionModel) (SessionResponse, error) {
	list, err := m.AttendanceList()
	if err != nil {
		return SessionResponse{}, err
	}
	return SessionResponse{
		SessionID:             m.SessionID,
		SessionClassID:        m.SessionClassID,
		SessionDate:           m.SessionDate.Format(dateLayout),
		SessionTopic:          m.SessionTopic,
		SessionAttendanceList: list,
		SessionCreatedAt:      m.SessionCreatedAt,
	}, nil
}

func FromModelSessions(ms []model.SessionModel) ([]SessionResponse, error) {
	out := make([]SessionResponse, 0, len(ms))
	for i := range ms {
		resp, err := FromModelSession(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// RosterEntryResponse is one row of the capture sheet handed to the client:
// the enrolled student plus the default status (everyone starts Present).
type RosterEntryResponse struct {
	StudentID          uuid.UUID `json:"student_id"`
	StudentName        string    `json:"student_name"`
	StudentParentPhone string    `json:"student_parent_phone"`
	Status             string    `json:"status"`
}

func RosterFromStudents(students []studentModel.StudentModel, list []model.AttendanceRecord) []RosterEntryResponse {
	out := make([]RosterEntryResponse, 0, len(students))
	for i := range students {
		status := string(model.AttendanceStatusPresent)
		if i < len(list) {
			status = string(list[i].Status)
		}
		out = append(out, RosterEntryResponse{
			StudentID:          students[i].StudentID,
			StudentName:        students[i].StudentName,
			StudentParentPhone: students[i].StudentParentPhone,
			Status:             status,
		})
	}
	return out
}
