// file: internals/features/students/controller/student_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "engclass_backend/internals/features/students/dto"
	m "engclass_backend/internals/features/students/model"
	helper "engclass_backend/internals/helpers"
	"engclass_backend/internals/store"
)

/* =========================
   Controller & Constructor
   ========================= */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List (optionally by class)
   ========================= */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	var (
		students []m.StudentModel
		err      error
	)
	if classIDStr := strings.TrimSpace(c.Query("class_id")); classIDStr != "" {
		classID, perr := uuid.Parse(classIDStr)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid class_id")
		}
		students, err = store.ListWhere[m.StudentModel](c.UserContext(), ctl.DB, "student_class_id", classID)
	} else {
		students, err = store.ListAll[m.StudentModel](c.UserContext(), ctl.DB)
	}
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonList(c, "", d.FromModelStudents(students))
}

/* =========================
   Create
   ========================= */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
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
	return helper.JsonCreated(c, "Student created", d.FromModelStudent(model))
}

/* =========================
   Patch (inline fee edit etc)
   ========================= */

func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var req d.UpdateStudentRequest
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
	if err := store.UpdatePartial[m.StudentModel](c.UserContext(), ctl.DB, id, cols); err != nil {
		return helper.JsonStoreError(c, err)
	}

	updated, err := store.GetByID[m.StudentModel](c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Student updated", d.FromModelStudent(updated))
}

/* =========================
   Delete
   ========================= */

// Delete removes the student only; past session rolls keep their entries.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	if err := store.Delete[m.StudentModel](c.UserContext(), ctl.DB, id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}
