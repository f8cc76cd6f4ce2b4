// file: internals/features/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "engclass_backend/internals/features/classes/model"
)

/*
=========================================================
REQUESTS
=========================================================
*/

type CreateClassRequest struct {
	ClassName string `json:"class_name" validate:"required,min=1,max=120"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName: r.ClassName,
	}
}

type UpdateClassRequest struct {
	ClassName *string `json:"class_name,omitempty" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateClassRequest) Normalize() {
	if r.ClassName != nil {
		s := strings.TrimSpace(*r.ClassName)
		r.ClassName = &s
	}
}

// Columns builds the partial-update map; empty means nothing to change.
func (r *UpdateClassRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.ClassName != nil {
		cols["class_name"] = *r.ClassName
	}
	if len(cols) > 0 {
		cols["class_updated_at"] = time.Now()
	}
	return cols
}

/*
=========================================================
RESPONSE
=========================================================
*/

type ClassResponse struct {
	ClassID        uuid.UUID `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassCreatedAt time.Time `json:"class_created_at"`
}

func FromModelClass(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:        m.ClassID,
		ClassName:      m.ClassName,
		ClassCreatedAt: m.ClassCreatedAt,
	}
}

func FromModelClasses(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelClass(&ms[i]))
	}
	return out
}
