// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "engclass_backend/internals/features/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := studentCtl.NewStudentController(db, v)
	grp := r.Group("/students")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
