package database

import (
	"database/sql"
	"fmt"

	"note-keeper/models"
)

// ==================== NOTE OPERATIONS ====================

// UpsertNote inserts or fully replaces a note. A zero ID inserts a
// fresh row and writes the assigned key back into note.ID; an existing
// ID overwrites every column (never a merge).
func (r *Repository) UpsertNote(note *models.Note) error {
	if note.ID == 0 {
		res, err := r.db.Exec(`
			INSERT INTO notes (text, color, date_edit, is_deleted, is_date_shown)
			VALUES (?, ?, ?, ?, ?)
		`, note.Text, note.Color, note.DateEdit, note.IsDeleted, note.IsDateShown)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		note.ID = id
	} else {
		_, err := r.db.Exec(`
			INSERT INTO notes (id, text, color, date_edit, is_deleted, is_date_shown)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				text = excluded.text,
				color = excluded.color,
				date_edit = excluded.date_edit,
				is_deleted = excluded.is_deleted,
				is_date_shown = excluded.is_date_shown
		`, note.ID, note.Text, note.Color, note.DateEdit, note.IsDeleted, note.IsDateShown)
		if err != nil {
			return err
		}
	}

	r.notes.signal()
	return nil
}

// GetNote retrieves a single note by id. Returns nil when no row exists.
func (r *Repository) GetNote(id int64) (*models.Note, error) {
	var note models.Note
	err := r.db.QueryRow(`
		SELECT id, text, color, date_edit, is_deleted, is_date_shown
		FROM notes
		WHERE id = ?
	`, id).Scan(
		&note.ID, &note.Text, &note.Color, &note.DateEdit,
		&note.IsDeleted, &note.IsDateShown,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// DeleteNote permanently removes a note. Deleting a missing id is a no-op.
func (r *Repository) DeleteNote(id int64) error {
	_, err := r.db.Exec("DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}

	r.notes.signal()
	return nil
}

// SetNoteDeleted flips the soft-delete flag only. The edit timestamp
// is left untouched: trashing is not an edit.
func (r *Repository) SetNoteDeleted(id int64, deleted bool) error {
	_, err := r.db.Exec(`
		UPDATE notes SET is_deleted = ? WHERE id = ?
	`, deleted, id)
	if err != nil {
		return err
	}

	r.notes.signal()
	return nil
}

// ListNotes retrieves either the main collection (deleted = false) or
// the trash (deleted = true). The main collection follows the given
// sort selector; the trash is always ordered by edit date, newest first.
func (r *Repository) ListNotes(sort models.NoteSort, deleted bool) ([]models.Note, error) {
	orderBy := sort.OrderBy()
	if deleted {
		orderBy = "date_edit DESC"
	}

	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT id, text, color, date_edit, is_deleted, is_date_shown
		FROM notes
		WHERE is_deleted = ?
		ORDER BY %s
	`, orderBy), deleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.ID, &note.Text, &note.Color, &note.DateEdit,
			&note.IsDeleted, &note.IsDateShown,
		); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// TrashCount returns the number of trashed notes.
func (r *Repository) TrashCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM notes WHERE is_deleted = 1").Scan(&count)
	return count, err
}

// EmptyTrash permanently removes every trashed note in one transaction.
func (r *Repository) EmptyTrash() error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM notes WHERE is_deleted = 1"); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.notes.signal()
	return nil
}

// SetAllNotesDateShown bulk-updates the date display preference on
// every note, trashed ones included.
func (r *Repository) SetAllNotesDateShown(shown bool) error {
	_, err := r.db.Exec("UPDATE notes SET is_date_shown = ?", shown)
	if err != nil {
		return err
	}

	r.notes.signal()
	return nil
}
