// file: internals/features/classes/route/class_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "engclass_backend/internals/features/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := classCtl.NewClassController(db, v)
	grp := r.Group("/classes")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
