// file: internals/features/sessions/route/session_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionCtl "engclass_backend/internals/features/sessions/controller"
)

func SessionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := sessionCtl.NewSessionController(db, v)
	grp := r.Group("/sessions")
	grp.Get("/roster", ctl.Roster)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	// sessions are immutable after save: no patch/delete
}
