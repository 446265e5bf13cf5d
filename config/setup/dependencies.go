package setup

import (
	"log/slog"

	"note-keeper/app"
	"note-keeper/config"
	"note-keeper/database"
	"note-keeper/services"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	notes := services.NewNoteService(repo, config.AppConfig.DefaultNoteColor)
	tasks := services.NewTaskService(repo, config.AppConfig.DefaultTaskColor, config.AppConfig.ExportPath)
	logger.Info("repository initialized",
		"default_note_color", config.AppConfig.DefaultNoteColor,
		"default_task_color", config.AppConfig.DefaultTaskColor,
		"export_path", config.AppConfig.ExportPath,
	)

	return app.New(notes, tasks, logger)
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
