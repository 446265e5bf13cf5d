package services

import (
	"context"

	"note-keeper/models"
)

// NoteStore defines the interface for note data access
type NoteStore interface {
	UpsertNote(note *models.Note) error
	GetNote(id int64) (*models.Note, error)
	DeleteNote(id int64) error
	SetNoteDeleted(id int64, deleted bool) error
	ListNotes(sort models.NoteSort, deleted bool) ([]models.Note, error)
	WatchNotes(ctx context.Context, sort models.NoteSort) <-chan []models.Note
	WatchTrashCount(ctx context.Context) <-chan int
	TrashCount() (int, error)
	EmptyTrash() error
	SetAllNotesDateShown(shown bool) error
}

// TaskStore defines the interface for task data access
type TaskStore interface {
	UpsertTask(task *models.Task) error
	GetTask(id int64) (*models.Task, error)
	DeleteTask(id int64) error
	SetTaskDeleted(id int64, deleted bool) error
	SwitchTaskActive(id int64) error
	DeleteAllInactive() error
	ListTasks(sort models.TaskSort, deleted bool) ([]models.Task, error)
	WatchTasks(ctx context.Context, sort models.TaskSort) <-chan []models.Task
	AllTasks() ([]models.Task, error)
	ImportTasks(tasks []models.Task) error
}
