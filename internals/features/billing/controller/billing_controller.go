// file: internals/features/billing/controller/billing_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"engclass_backend/internals/configs"
	d "engclass_backend/internals/features/billing/dto"
	service "engclass_backend/internals/features/billing/service"
	sessionModel "engclass_backend/internals/features/sessions/model"
	studentModel "engclass_backend/internals/features/students/model"
	helper "engclass_backend/internals/helpers"
	"engclass_backend/internals/store"
)

/* =========================
   Controller & Constructor
   ========================= */

type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

/* =========================
   Invoice (computed on demand)
   ========================= */

// Invoice prices one student's month. Student and session reads are two
// independent snapshots with no transaction around them; a concurrent edit
// can show through (tolerated for this single-operator tool).
func (ctl *BillingController) Invoice(c *fiber.Ctx) error {
	studentIDStr := strings.TrimSpace(c.Query("student_id"))
	month := strings.TrimSpace(c.Query("month"))
	if studentIDStr == "" || month == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id and month are required")
	}
	studentID, err := uuid.Parse(studentIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
	}
	if _, _, err := service.ParseMonth(month); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := store.GetByID[studentModel.StudentModel](c.UserContext(), ctl.DB, studentID)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}

	// full session set; the engine filters in memory, same as the dashboard did
	sessions, err := store.ListAll[sessionModel.SessionModel](c.UserContext(), ctl.DB)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}

	bill, err := service.ComputeBill(student, month, sessions)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	memo := service.TuitionMemo(month, student.StudentName)
	qrURL := service.PaymentQRURL(configs.VietQRBankID, configs.VietQRAccountNumber, bill.TotalAmount, memo)

	return helper.JsonOK(c, "", d.FromBill(student, month, bill, qrURL))
}
