package app

import (
	"log/slog"

	"note-keeper/services"
	"note-keeper/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Notes     *services.NoteService
	Tasks     *services.TaskService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(notes *services.NoteService, tasks *services.TaskService, logger *slog.Logger) *App {
	return &App{
		Notes:     notes,
		Tasks:     tasks,
		Validator: validator.New(),
		Logger:    logger,
	}
}
