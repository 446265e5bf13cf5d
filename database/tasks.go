package database

import (
	"database/sql"
	"fmt"

	"note-keeper/models"
)

// ==================== TASK OPERATIONS ====================

// UpsertTask inserts or fully replaces a task, mirroring UpsertNote:
// zero ID inserts and assigns the key, existing ID overwrites the row.
func (r *Repository) UpsertTask(task *models.Task) error {
	if task.ID == 0 {
		res, err := r.db.Exec(`
			INSERT INTO tasks (description, color, date_edit, is_active, is_important, is_deleted)
			VALUES (?, ?, ?, ?, ?, ?)
		`, task.Description, task.Color, task.DateEdit,
			task.IsActive, task.IsImportant, task.IsDeleted)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		task.ID = id
	} else {
		_, err := r.db.Exec(`
			INSERT INTO tasks (id, description, color, date_edit, is_active, is_important, is_deleted)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				description = excluded.description,
				color = excluded.color,
				date_edit = excluded.date_edit,
				is_active = excluded.is_active,
				is_important = excluded.is_important,
				is_deleted = excluded.is_deleted
		`, task.ID, task.Description, task.Color, task.DateEdit,
			task.IsActive, task.IsImportant, task.IsDeleted)
		if err != nil {
			return err
		}
	}

	r.tasks.signal()
	return nil
}

// GetTask retrieves a single task by id. Returns nil when no row exists.
func (r *Repository) GetTask(id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.QueryRow(`
		SELECT id, description, color, date_edit, is_active, is_important, is_deleted
		FROM tasks
		WHERE id = ?
	`, id).Scan(
		&task.ID, &task.Description, &task.Color, &task.DateEdit,
		&task.IsActive, &task.IsImportant, &task.IsDeleted,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// DeleteTask permanently removes a task. Deleting a missing id is a no-op.
func (r *Repository) DeleteTask(id int64) error {
	_, err := r.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	r.tasks.signal()
	return nil
}

// SetTaskDeleted flips the soft-delete flag only, leaving the edit
// timestamp and the other flags untouched.
func (r *Repository) SetTaskDeleted(id int64, deleted bool) error {
	_, err := r.db.Exec(`
		UPDATE tasks SET is_deleted = ? WHERE id = ?
	`, deleted, id)
	if err != nil {
		return err
	}

	r.tasks.signal()
	return nil
}

// SwitchTaskActive toggles the pending/done flag in a single statement
// so concurrent toggles serialize inside SQLite.
func (r *Repository) SwitchTaskActive(id int64) error {
	_, err := r.db.Exec(`
		UPDATE tasks SET is_active = NOT is_active WHERE id = ?
	`, id)
	if err != nil {
		return err
	}

	r.tasks.signal()
	return nil
}

// DeleteAllInactive purges exactly the rows that are inactive when the
// transaction commits. A task flipped back to active before the commit
// survives the purge.
func (r *Repository) DeleteAllInactive() error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM tasks WHERE is_active = 0"); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.tasks.signal()
	return nil
}

// ListTasks retrieves either the main collection or the trash,
// mirroring ListNotes.
func (r *Repository) ListTasks(sort models.TaskSort, deleted bool) ([]models.Task, error) {
	orderBy := sort.OrderBy()
	if deleted {
		orderBy = "date_edit DESC"
	}

	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT id, description, color, date_edit, is_active, is_important, is_deleted
		FROM tasks
		WHERE is_deleted = ?
		ORDER BY %s
	`, orderBy), deleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID, &task.Description, &task.Color, &task.DateEdit,
			&task.IsActive, &task.IsImportant, &task.IsDeleted,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// AllTasks returns the full task table, soft-deleted rows included,
// ordered by primary key. Used by export.
func (r *Repository) AllTasks() ([]models.Task, error) {
	rows, err := r.db.Query(`
		SELECT id, description, color, date_edit, is_active, is_important, is_deleted
		FROM tasks
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID, &task.Description, &task.Color, &task.DateEdit,
			&task.IsActive, &task.IsImportant, &task.IsDeleted,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// ImportTasks merges the given rows by primary key in one transaction.
// Rows carry their exported ids, so re-importing the same set is
// idempotent. Any failure rolls the whole import back.
func (r *Repository) ImportTasks(tasks []models.Task) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, description, color, date_edit, is_active, is_important, is_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			description = excluded.description,
			color = excluded.color,
			date_edit = excluded.date_edit,
			is_active = excluded.is_active,
			is_important = excluded.is_important,
			is_deleted = excluded.is_deleted
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, task := range tasks {
		if _, err := stmt.Exec(
			task.ID, task.Description, task.Color, task.DateEdit,
			task.IsActive, task.IsImportant, task.IsDeleted,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("import of task %d failed: %w", task.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.tasks.signal()
	return nil
}
