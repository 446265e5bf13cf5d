package models

import "time"

// NoteColor is a fixed palette index. Values are stored as ordinals,
// so the order of the constants must never change.
type NoteColor int

const (
	NoteColorWhite NoteColor = iota
	NoteColorYellow
	NoteColorOrange
	NoteColorRed
	NoteColorGreen
	NoteColorBlue
	NoteColorPurple
	NoteColorGray
)

// NoteColorCount is the palette size.
const NoteColorCount = 8

func (c NoteColor) Valid() bool {
	return c >= 0 && c < NoteColorCount
}

// Note is the persisted form. ID 0 means the note has not been
// inserted yet; SQLite assigns the key on first upsert.
type Note struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Color       NoteColor `json:"color"`
	DateEdit    time.Time `json:"date_edit"`
	IsDeleted   bool      `json:"is_deleted"`
	IsDateShown bool      `json:"is_date_shown"`
}

// NoteView is the presentation form: DateEdit is pre-formatted.
type NoteView struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Color       NoteColor `json:"color"`
	DateEdit    string    `json:"date_edit"`
	IsDeleted   bool      `json:"is_deleted"`
	IsDateShown bool      `json:"is_date_shown"`
}

// NoteSort selects the ordering of the live notes query.
type NoteSort string

const (
	SortNotesByColor   NoteSort = "color"
	SortNotesByDateNew NoteSort = "date_new"
	SortNotesByDateOld NoteSort = "date_old"
)

func (s NoteSort) Valid() bool {
	switch s {
	case SortNotesByColor, SortNotesByDateNew, SortNotesByDateOld:
		return true
	}
	return false
}

// OrderBy maps the selector to its ORDER BY clause. Unknown values
// fall back to the default color ordering.
func (s NoteSort) OrderBy() string {
	switch s {
	case SortNotesByDateNew:
		return "date_edit DESC"
	case SortNotesByDateOld:
		return "date_edit ASC"
	default:
		return "color ASC"
	}
}

type SaveNoteRequest struct {
	ID          int64  `json:"id"`
	Text        string `json:"text" validate:"required"`
	Color       *int   `json:"color" validate:"omitempty,notecolor"`
	IsDateShown bool   `json:"is_date_shown"`
}

type ShowDateRequest struct {
	Shown bool `json:"shown"`
}

// ListNotesQuery carries the sort selector from the query string.
type ListNotesQuery struct {
	Sort NoteSort `json:"sort" validate:"omitempty,notesort"`
}
