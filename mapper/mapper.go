package mapper

import (
	"time"

	"note-keeper/models"
)

// Timestamp patterns used everywhere a date is rendered.
const (
	DatePattern     = "02-01-2006"
	FullDatePattern = "02-01-2006 15:04:05"
)

// now is swapped out in tests.
var now = time.Now

// FormatDate renders a timestamp as dd-MM-yyyy. The zero time maps
// to an empty string instead of an error.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DatePattern)
}

// FormatFullDate renders a timestamp as dd-MM-yyyy HH:mm:ss.
func FormatFullDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(FullDatePattern)
}

// NoteToView converts the persisted form to the presentation form.
func NoteToView(n models.Note) models.NoteView {
	return models.NoteView{
		ID:          n.ID,
		Text:        n.Text,
		Color:       n.Color,
		DateEdit:    FormatFullDate(n.DateEdit),
		IsDeleted:   n.IsDeleted,
		IsDateShown: n.IsDateShown,
	}
}

func NotesToViews(notes []models.Note) []models.NoteView {
	views := make([]models.NoteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, NoteToView(n))
	}
	return views
}

// StampNote prepares a note for persisting. The edit time is always
// taken from the wall clock here; callers cannot supply their own.
func StampNote(n models.Note) models.Note {
	n.DateEdit = now()
	return n
}

func TaskToView(t models.Task) models.TaskView {
	return models.TaskView{
		ID:          t.ID,
		Description: t.Description,
		Color:       t.Color,
		DateEdit:    FormatFullDate(t.DateEdit),
		IsActive:    t.IsActive,
		IsImportant: t.IsImportant,
		IsDeleted:   t.IsDeleted,
	}
}

func TasksToViews(tasks []models.Task) []models.TaskView {
	views := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, TaskToView(t))
	}
	return views
}

// StampTask prepares a task for persisting, refreshing the edit time.
func StampTask(t models.Task) models.Task {
	t.DateEdit = now()
	return t
}
