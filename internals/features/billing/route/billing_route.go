// file: internals/features/billing/route/billing_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingCtl "engclass_backend/internals/features/billing/controller"
)

func BillingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billingCtl.NewBillingController(db)
	grp := r.Group("/billing")
	grp.Get("/invoice", ctl.Invoice)
}
