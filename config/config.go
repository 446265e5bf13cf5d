package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"note-keeper/models"
)

type Config struct {
	Port             string
	Env              string
	DBPath           string
	ExportPath       string
	DefaultNoteColor int
	DefaultTaskColor int
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:             GetEnv("PORT", "3000"),
		Env:              GetEnv("ENV", "development"),
		DBPath:           GetEnv("DB_PATH", "./data/note-keeper.db"),
		ExportPath:       GetEnv("EXPORT_PATH", "./data/tasks-export.json"),
		DefaultNoteColor: GetEnvInt("DEFAULT_NOTE_COLOR", int(models.NoteColorWhite)),
		DefaultTaskColor: GetEnvInt("DEFAULT_TASK_COLOR", int(models.TaskColorWhite)),
	}

	// Preference indexes are bounded to the palettes
	if !models.NoteColor(AppConfig.DefaultNoteColor).Valid() {
		AppConfig.DefaultNoteColor = int(models.NoteColorWhite)
	}
	if !models.TaskColor(AppConfig.DefaultTaskColor).Valid() {
		AppConfig.DefaultTaskColor = int(models.TaskColorWhite)
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
