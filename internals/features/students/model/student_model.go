// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel mirrors the `students` collection
type StudentModel struct {
	StudentID          uuid.UUID `json:"student_id"           gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentName        string    `json:"student_name"         gorm:"column:student_name;type:varchar(120);not null"`
	StudentParentPhone string    `json:"student_parent_phone" gorm:"column:student_parent_phone;type:varchar(30)"`

	// Per-session tuition fee in whole VND. Not snapshotted on sessions:
	// invoices always price with the current value.
	StudentDefaultFeeVND int64 `json:"student_default_fee_vnd" gorm:"column:student_default_fee_vnd;type:bigint;not null;default:150000"`

	// No FK constraint: a class delete leaves this reference dangling and the
	// student row untouched. NULL = unassigned.
	StudentClassID *uuid.UUID `json:"student_class_id,omitempty" gorm:"column:student_class_id;type:uuid;index"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;default:now()"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;default:now()"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;type:timestamptz;index"`
}

func (StudentModel) TableName() string { return "students" }
func (StudentModel) PKColumn() string  { return "student_id" }
