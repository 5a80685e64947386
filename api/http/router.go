package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ricardossantis/nestTasksManager/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, tasks *handlers.TaskHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/signup", auth.SignUp)
	a.Post("/signin", auth.SignIn)

	// Task CRUD, owner-scoped behind JWT auth
	t := v1.Group("/tasks", authMW)
	t.Get("/", tasks.List)
	t.Post("/", tasks.Create)
	t.Get("/:id", tasks.GetByID)
	t.Patch("/:id/status", tasks.UpdateStatus)
	t.Delete("/:id", tasks.Delete)
}
