// file: internals/features/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "engclass_backend/internals/features/students/model"
)

/*
=========================================================
REQUESTS
=========================================================
*/

type CreateStudentRequest struct {
	StudentName          string     `json:"student_name"            validate:"required,min=1,max=120"`
	StudentParentPhone   string     `json:"student_parent_phone"    validate:"omitempty,max=30"`
	StudentDefaultFeeVND *int64     `json:"student_default_fee_vnd" validate:"omitempty,gte=0"`
	StudentClassID       *uuid.UUID `json:"student_class_id"        validate:"required"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.StudentParentPhone = strings.TrimSpace(r.StudentParentPhone)
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	m := &model.StudentModel{
		StudentName:        r.StudentName,
		StudentParentPhone: r.StudentParentPhone,
		StudentClassID:     r.StudentClassID,
	}
	if r.StudentDefaultFeeVND != nil {
		m.StudentDefaultFeeVND = *r.StudentDefaultFeeVND
	} else {
		m.StudentDefaultFeeVND = 150000 // form default in the dashboard
	}
	return m
}

// UpdateStudentRequest covers the inline edits on the student screen; the fee
// patch is the common case.
type UpdateStudentRequest struct {
	StudentName          *string    `json:"student_name,omitempty"            validate:"omitempty,min=1,max=120"`
	StudentParentPhone   *string    `json:"student_parent_phone,omitempty"    validate:"omitempty,max=30"`
	StudentDefaultFeeVND *int64     `json:"student_default_fee_vnd,omitempty" validate:"omitempty,gte=0"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
}

func (r *UpdateStudentRequest) Normalize() {
	if r.StudentName != nil {
		s := strings.TrimSpace(*r.StudentName)
		r.StudentName = &s
	}
	if r.StudentParentPhone != nil {
		s := strings.TrimSpace(*r.StudentParentPhone)
		r.StudentParentPhone = &s
	}
}

func (r *UpdateStudentRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.StudentName != nil {
		cols["student_name"] = *r.StudentName
	}
	if r.StudentParentPhone != nil {
		cols["student_parent_phone"] = *r.StudentParentPhone
	}
	if r.StudentDefaultFeeVND != nil {
		cols["student_default_fee_vnd"] = *r.StudentDefaultFeeVND
	}
	if r.StudentClassID != nil {
		cols["student_class_id"] = *r.StudentClassID
	}
	if len(cols) > 0 {
		cols["student_updated_at"] = time.Now()
	}
	return cols
}

/*
=========================================================
RESPONSE
=========================================================
*/

type StudentResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentName          string     `json:"student_name"`
	StudentParentPhone   string     `json:"student_parent_phone"`
	StudentDefaultFeeVND int64      `json:"student_default_fee_vnd"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentCreatedAt     time.Time  `json:"student_created_at"`
}

func FromModelStudent(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentName:          m.StudentName,
		StudentParentPhone:   m.StudentParentPhone,
		StudentDefaultFeeVND: m.StudentDefaultFeeVND,
		StudentClassID:       m.StudentClassID,
		StudentCreatedAt:     m.StudentCreatedAt,
	}
}

func FromModelStudents(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelStudent(&ms[i]))
	}
	return out
}
