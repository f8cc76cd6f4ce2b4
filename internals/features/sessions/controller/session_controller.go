// file: internals/features/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billingService "engclass_backend/internals/features/billing/service"
	d "engclass_backend/internals/features/sessions/dto"
	m "engclass_backend/internals/features/sessions/model"
	service "engclass_backend/internals/features/sessions/service"
	helper "engclass_backend/internals/helpers"
	"engclass_backend/internals/store"
)

/* =========================
   Controller & Constructor
   ========================= */

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Capture  *service.AttendanceCapture
}

func NewSessionController(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{
		DB:       db,
		Validate: v,
		Capture:  service.NewAttendanceCapture(db),
	}
}

/* =========================
   Roster (capture sheet)
   ========================= */

// Roster answers the snapshot the client captures attendance against. The
// snapshot is the contract: students enrolled after this fetch will not be in
// the saved record; re-fetching is how the sheet is refreshed.
func (ctl *SessionController) Roster(c *fiber.Ctx) error {
	classIDStr := strings.TrimSpace(c.Query("class_id"))
	if classIDStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id is required")
	}
	classID, err := uuid.Parse(classIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class_id")
	}

	state, err := ctl.Capture.LoadRoster(c.UserContext(), classID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "", fiber.Map{
		"class_id": classID,
		"roster":   d.RosterFromStudents(state.Roster(), state.AttendanceList()),
	})
}

/* =========================
   Create (save capture)
   ========================= */

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req d.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	force := c.QueryBool("force")
	if err := ctl.Capture.Save(c.UserContext(), model, force); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateSession):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonStoreError(c, err)
		}
	}

	resp, err := d.FromModelSession(model)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Attendance saved", resp)
}

/* =========================
   List
   ========================= */

func (ctl *SessionController) List(c *fiber.Ctx) error {
	var (
		byMonth bool
		year    int
		month   time.Month
	)
	if monthStr := strings.TrimSpace(c.Query("month")); monthStr != "" {
		y, mo, perr := billingService.ParseMonth(monthStr)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, perr.Error())
		}
		byMonth, year, month = true, y, mo
	}

	var (
		sessions []m.SessionModel
		err      error
	)
	if classIDStr := strings.TrimSpace(c.Query("class_id")); classIDStr != "" {
		classID, perr := uuid.Parse(classIDStr)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid class_id")
		}
		sessions, err = store.ListWhere[m.SessionModel](c.UserContext(), ctl.DB, "session_class_id", classID)
	} else {
		sessions, err = store.ListAll[m.SessionModel](c.UserContext(), ctl.DB)
	}
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if byMonth {
		sessions = filterSessionsByMonth(sessions, year, month)
	}

	resp, err := d.FromModelSessions(sessions)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", resp)
}

// filterSessionsByMonth keeps sessions dated inside the calendar month, same
// windowing the billing engine uses.
func filterSessionsByMonth(sessions []m.SessionModel, year int, month time.Month) []m.SessionModel {
	out := make([]m.SessionModel, 0, len(sessions))
	for i := range sessions {
		if billingService.InMonth(sessions[i].SessionDate, year, month) {
			out = append(out, sessions[i])
		}
	}
	return out
}
