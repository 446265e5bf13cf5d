package models

import "time"

// TaskColor mirrors NoteColor: a stable ordinal palette index.
type TaskColor int

const (
	TaskColorWhite TaskColor = iota
	TaskColorYellow
	TaskColorOrange
	TaskColorRed
	TaskColorGreen
	TaskColorBlue
	TaskColorPurple
	TaskColorGray
)

// TaskColorCount is the palette size.
const TaskColorCount = 8

func (c TaskColor) Valid() bool {
	return c >= 0 && c < TaskColorCount
}

// Task is the persisted form. IsActive, IsImportant and IsDeleted are
// independent flags: a completed task stays queryable until purged.
type Task struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Color       TaskColor `json:"color"`
	DateEdit    time.Time `json:"date_edit"`
	IsActive    bool      `json:"is_active"`
	IsImportant bool      `json:"is_important"`
	IsDeleted   bool      `json:"is_deleted"`
}

// TaskView is the presentation form: DateEdit is pre-formatted.
type TaskView struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Color       TaskColor `json:"color"`
	DateEdit    string    `json:"date_edit"`
	IsActive    bool      `json:"is_active"`
	IsImportant bool      `json:"is_important"`
	IsDeleted   bool      `json:"is_deleted"`
}

// TaskSort selects the ordering of the live tasks query.
type TaskSort string

const (
	SortTasksByColor      TaskSort = "color"
	SortTasksByDateNew    TaskSort = "date_new"
	SortTasksByDateOld    TaskSort = "date_old"
	SortTasksByImportance TaskSort = "importance"
)

func (s TaskSort) Valid() bool {
	switch s {
	case SortTasksByColor, SortTasksByDateNew, SortTasksByDateOld, SortTasksByImportance:
		return true
	}
	return false
}

func (s TaskSort) OrderBy() string {
	switch s {
	case SortTasksByDateNew:
		return "date_edit DESC"
	case SortTasksByDateOld:
		return "date_edit ASC"
	case SortTasksByImportance:
		return "is_important DESC, date_edit DESC"
	default:
		return "color ASC"
	}
}

type SaveTaskRequest struct {
	ID          int64  `json:"id"`
	Description string `json:"description" validate:"required"`
	Color       *int   `json:"color" validate:"omitempty,taskcolor"`
	IsImportant bool   `json:"is_important"`
}

// ListTasksQuery carries the sort selector from the query string.
type ListTasksQuery struct {
	Sort TaskSort `json:"sort" validate:"omitempty,tasksort"`
}
