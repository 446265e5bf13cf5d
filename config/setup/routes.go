package setup

import (
	"github.com/gofiber/fiber/v2"

	"note-keeper/app"
	"note-keeper/handlers"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	// Notes
	api.Get("/notes", handlers.ListNotes(application))
	api.Post("/notes", handlers.SaveNote(application))
	api.Put("/notes/show-date", handlers.ShowDate(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
	api.Post("/notes/:id/trash", handlers.TrashNote(application))
	api.Post("/notes/:id/restore", handlers.RestoreNote(application))

	// Note trash basket
	api.Get("/trash", handlers.GetTrash(application))
	api.Delete("/trash", handlers.EmptyTrash(application))

	// Tasks
	api.Get("/tasks", handlers.ListTasks(application))
	api.Post("/tasks", handlers.SaveTask(application))
	api.Get("/tasks/trash", handlers.GetTaskTrash(application))
	api.Delete("/tasks/inactive", handlers.DeleteInactiveTasks(application))
	api.Post("/tasks/export", handlers.ExportTasks(application))
	api.Post("/tasks/import", handlers.ImportTasks(application))
	api.Get("/tasks/:id", handlers.GetTask(application))
	api.Delete("/tasks/:id", handlers.DeleteTask(application))
	api.Post("/tasks/:id/trash", handlers.TrashTask(application))
	api.Post("/tasks/:id/restore", handlers.RestoreTask(application))
	api.Post("/tasks/:id/switch", handlers.SwitchTask(application))
}
