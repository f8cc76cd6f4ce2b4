// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingRoutes "engclass_backend/internals/features/billing/route"
	classRoutes "engclass_backend/internals/features/classes/route"
	homeRoutes "engclass_backend/internals/features/home/route"
	sessionRoutes "engclass_backend/internals/features/sessions/route"
	studentRoutes "engclass_backend/internals/features/students/route"
)

// SetupRoutes mounts the five dashboard surfaces under /api. There is no
// auth tier: this is a single-operator deployment.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	api := app.Group("/api")

	log.Println("[INFO] Setting up DashboardRoutes...")
	homeRoutes.DashboardRoutes(api, db)

	log.Println("[INFO] Setting up ClassRoutes...")
	classRoutes.ClassRoutes(api, db, v)

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoutes.StudentRoutes(api, db, v)

	log.Println("[INFO] Setting up SessionRoutes...")
	sessionRoutes.SessionRoutes(api, db, v)

	log.Println("[INFO] Setting up BillingRoutes...")
	billingRoutes.BillingRoutes(api, db)
}
