// file: internals/features/classes/controller/class_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "engclass_backend/internals/features/classes/dto"
	m "engclass_backend/internals/features/classes/model"
	helper "engclass_backend/internals/helpers"
	"engclass_backend/internals/store"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List
   ========================= */

func (ctl *ClassController) List(c *fiber.Ctx) error {
	classes, err := store.ListAll[m.ClassModel](c.UserContext(), ctl.DB)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonList(c, "", d.FromModelClasses(classes))
}

/* =========================
   Create
   ========================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	model := req.ToModel()
	if err := store.Create(c.UserContext(), ctl.DB, model); err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonCreated(c, "Class created", d.FromModelClass(model))
}

/* =========================
   Patch
   ========================= */

func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	cols := req.Columns()
	if len(cols) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "nothing to update")
	}
	if err := store.UpdatePartial[m.ClassModel](c.UserContext(), ctl.DB, id, cols); err != nil {
		return helper.JsonStoreError(c, err)
	}

	updated, err := store.GetByID[m.ClassModel](c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Class updated", d.FromModelClass(updated))
}

/* =========================
   Delete
   ========================= */

// Delete removes the class only. Students keep their class reference; it
// simply dangles afterwards ("Unassigned" display is the client's job).
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}
	if err := store.Delete[m.ClassModel](c.UserContext(), ctl.DB, id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": id})
}
