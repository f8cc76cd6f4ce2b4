// file: internals/features/home/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeCtl "engclass_backend/internals/features/home/controller"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := homeCtl.NewDashboardController(db)
	r.Get("/dashboard", ctl.Overview)
}
