// file: internals/features/helpdesk/masterdata/route/masterdata_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesku_backend/internals/constants"
	masterdataController "helpdesku_backend/internals/features/helpdesk/masterdata/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

// MasterdataRoutes wires the small reference-record endpoints. Reads are open
// to any authenticated user; writes require staff roles.
func MasterdataRoutes(app *fiber.App, db *gorm.DB) {
	ctl := masterdataController.NewMasterdataController(db)

	staff := authMw.OnlyRoles("Only staff can manage reference records", constants.RoleAdmin, constants.RoleAgent)

	categories := app.Group("/api/categories", authMw.AuthMiddleware())
	categories.Get("/", ctl.ListCategories)
	categories.Get("/:id", ctl.GetCategory)
	categories.Post("/", staff, ctl.CreateCategory)
	categories.Put("/:id", staff, ctl.UpdateCategory)
	categories.Delete("/:id", staff, ctl.DeleteCategory)

	states := app.Group("/api/states", authMw.AuthMiddleware())
	states.Get("/", ctl.ListStates)
	states.Post("/", staff, ctl.CreateState)
	states.Delete("/:id", staff, ctl.DeleteState)

	locations := app.Group("/api/locations", authMw.AuthMiddleware())
	locations.Get("/", ctl.ListLocations)
	locations.Post("/", staff, ctl.CreateLocation)
	locations.Delete("/:id", staff, ctl.DeleteLocation)

	instructors := app.Group("/api/instructors", authMw.AuthMiddleware())
	instructors.Get("/", ctl.ListInstructors)
	instructors.Post("/", staff, ctl.CreateInstructor)
	instructors.Delete("/:id", staff, ctl.DeleteInstructor)

	assignees := app.Group("/api/assignees", authMw.AuthMiddleware())
	assignees.Get("/", ctl.ListAssignees)
	assignees.Post("/", staff, ctl.CreateAssignee)
	assignees.Delete("/:id", staff, ctl.DeleteAssignee)
}
