// file: internals/features/billing/service/billing_service.go
package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	sessionModel "engclass_backend/internals/features/sessions/model"
	studentModel "engclass_backend/internals/features/students/model"
)

// ErrStudentNotFound: the engine was invoked without a student. Callers
// normally resolve the student first and short-circuit before getting here.
var ErrStudentNotFound = errors.New("student not found")

const monthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" billing month.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be YYYY-MM: %w", err)
	}
	return t.Year(), t.Month(), nil
}

// InMonth reports whether a date falls inside the calendar month.
func InMonth(date time.Time, year int, month time.Month) bool {
	return date.Year() == year && date.Month() == month
}

// Bill is the transient invoice body; it is never written back to the store.
type Bill struct {
	BillableSessions []sessionModel.SessionModel
	TotalSessions    int
	TotalAmount      int64
}

// ComputeBill prices one student's month from the full session set.
//
// A session is billable iff its date falls in the month AND its roll marks
// the student Present. Billable sessions come back ascending by date, and
// the total is count × the student's *current* default fee (fees are not
// snapshotted per session, so a retroactive fee edit reprices old months).
//
// Pure function of its inputs: no I/O, no mutation of allSessions, identical
// inputs always produce identical output. No match is an empty bill, not an
// error.
func ComputeBill(student *studentModel.StudentModel, month string, allSessions []sessionModel.SessionModel) (Bill, error) {
	if student == nil {
		return Bill{}, ErrStudentNotFound
	}
	year, m, err := ParseMonth(month)
	if err != nil {
		return Bill{}, err
	}

	billable := make([]sessionModel.SessionModel, 0)
	for i := range allSessions {
		s := allSessions[i]
		if !InMonth(s.SessionDate, year, m) {
			continue
		}
		present, err := s.HasPresent(student.StudentID)
		if err != nil {
			return Bill{}, fmt.Errorf("session %s: attendance roll unreadable: %w", s.SessionID, err)
		}
		if present {
			billable = append(billable, s)
		}
	}
	sort.SliceStable(billable, func(i, j int) bool {
		return billable[i].SessionDate.Before(billable[j].SessionDate)
	})

	return Bill{
		BillableSessions: billable,
		TotalSessions:    len(billable),
		TotalAmount:      int64(len(billable)) * student.StudentDefaultFeeVND,
	}, nil
}
