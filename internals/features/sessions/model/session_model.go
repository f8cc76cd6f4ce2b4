// file: internals/features/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord is a value object nested in a session's attendance list;
// it is never addressable on its own.
type AttendanceRecord struct {
	StudentID uuid.UUID        `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
}

// SessionModel mirrors the `sessions` collection. A session is one recorded
// class meeting with its attendance roll; it is immutable after creation.
type SessionModel struct {
	SessionID      uuid.UUID `json:"session_id"       gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionClassID uuid.UUID `json:"session_class_id" gorm:"column:session_class_id;type:uuid;not null;index"`
	SessionDate    time.Time `json:"session_date"     gorm:"column:session_date;type:date;not null"`
	SessionTopic   string    `json:"session_topic"    gorm:"column:session_topic;type:text"`

	// Ordered attendance roll, one entry per student enrolled at capture time
	// (roster snapshot). Stored as a document, matching the record-store shape.
	SessionAttendanceList datatypes.JSON `json:"session_attendance_list" gorm:"column:session_attendance_list;type:jsonb;not null"`

	SessionCreatedAt time.Time `json:"session_created_at" gorm:"column:session_created_at;type:timestamptz;not null;default:now()"`
}

func (SessionModel) TableName() string { return "sessions" }
func (SessionModel) PKColumn() string  { return "session_id" }

// AttendanceList decodes the stored roll.
func (m *SessionModel) AttendanceList() ([]AttendanceRecord, error) {
	if len(m.SessionAttendanceList) == 0 {
		return []AttendanceRecord{}, nil
	}
	var list []AttendanceRecord
	if err := sonic.Unmarshal(m.SessionAttendanceList, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetAttendanceList encodes the roll into the document column.
func (m *SessionModel) SetAttendanceList(list []AttendanceRecord) error {
	if list == nil {
		list = []AttendanceRecord{}
	}
	raw, err := sonic.Marshal(list)
	if err != nil {
		return err
	}
	m.SessionAttendanceList = datatypes.JSON(raw)
	return nil
}

// HasPresent reports whether the roll marks the student Present. A student
// missing from the roll (enrolled after capture) counts as not present. A
// roll that fails to decode is an error, never a silent "absent".
func (m *SessionModel) HasPresent(studentID uuid.UUID) (bool, error) {
	list, err := m.AttendanceList()
	if err != nil {
		return false, err
	}
	for _, rec := range list {
		if rec.StudentID == studentID && rec.Status == AttendanceStatusPresent {
			return true, nil
		}
	}
	return false, nil
}
