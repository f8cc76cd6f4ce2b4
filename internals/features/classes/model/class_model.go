// file: internals/features/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel mirrors the `classes` collection
type ClassModel struct {
	ClassID   uuid.UUID `json:"class_id"   gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassName string    `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;default:now()"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;default:now()"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string { return "classes" }
func (ClassModel) PKColumn() string  { return "class_id" }
