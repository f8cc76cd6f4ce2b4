// file: internals/features/billing/dto/invoice_dto.go
package dto

import (
	"github.com/google/uuid"

	service "engclass_backend/internals/features/billing/service"
	studentModel "engclass_backend/internals/features/students/model"
)

const dateLayout = "2006-01-02"

// InvoiceLineResponse is one billable session on the invoice; the unit price
// is the student's current per-session fee.
type InvoiceLineResponse struct {
	SessionID    uuid.UUID `json:"session_id"`
	SessionDate  string    `json:"session_date"` // YYYY-MM-DD
	SessionTopic string    `json:"session_topic"`
	UnitFeeVND   int64     `json:"unit_fee_vnd"`
}

// InvoiceResponse is materialized per request and never persisted.
type InvoiceResponse struct {
	InvoiceStudentID      uuid.UUID             `json:"invoice_student_id"`
	InvoiceStudentName    string                `json:"invoice_student_name"`
	InvoiceMonth          string                `json:"invoice_month"` // YYYY-MM
	InvoiceTotalSessions  int                   `json:"invoice_total_sessions"`
	InvoiceTotalAmountVND int64                 `json:"invoice_total_amount_vnd"`
	InvoiceStatus         string                `json:"invoice_status"`
	InvoiceQRURL          string                `json:"invoice_qr_url"`
	InvoiceLines          []InvoiceLineResponse `json:"invoice_lines"`
}

func FromBill(student *studentModel.StudentModel, month string, bill service.Bill, qrURL string) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(bill.BillableSessions))
	for i := range bill.BillableSessions {
		s := bill.BillableSessions[i]
		lines = append(lines, InvoiceLineResponse{
			SessionID:    s.SessionID,
			SessionDate:  s.SessionDate.Format(dateLayout),
			SessionTopic: s.SessionTopic,
			UnitFeeVND:   student.StudentDefaultFeeVND,
		})
	}
	return InvoiceResponse{
		InvoiceStudentID:      student.StudentID,
		InvoiceStudentName:    student.StudentName,
		InvoiceMonth:          month,
		InvoiceTotalSessions:  bill.TotalSessions,
		InvoiceTotalAmountVND: bill.TotalAmount,
		InvoiceStatus:         "Pending", // invoices are display-only, nothing is written back
		InvoiceQRURL:          qrURL,
		InvoiceLines:          lines,
	}
}
