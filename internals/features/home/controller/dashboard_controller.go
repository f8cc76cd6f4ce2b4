// file: internals/features/home/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classDto "engclass_backend/internals/features/classes/dto"
	classModel "engclass_backend/internals/features/classes/model"
	sessionModel "engclass_backend/internals/features/sessions/model"
	studentModel "engclass_backend/internals/features/students/model"
	helper "engclass_backend/internals/helpers"
	"engclass_backend/internals/store"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Overview answers the landing screen: headline counts plus the class list.
// Reads abort on the first failure; no partial dashboard is returned.
func (ctl *DashboardController) Overview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	classes, err := store.ListAll[classModel.ClassModel](ctx, ctl.DB)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	studentCount, err := store.CountAll[studentModel.StudentModel](ctx, ctl.DB)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var sessionsThisMonth int64
	err = ctl.DB.WithContext(ctx).
		Model(&sessionModel.SessionModel{}).
		Where("session_date >= ? AND session_date < ?", monthStart, monthEnd).
		Count(&sessionsThisMonth).Error
	if err != nil {
		return helper.JsonStoreError(c, store.Translate(err))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"stats": fiber.Map{
			"total_students":      studentCount,
			"total_classes":       len(classes),
			"sessions_this_month": sessionsThisMonth,
			"current_month":       now.Format("2006-01"),
		},
		"classes": classDto.FromModelClasses(classes),
	})
}
