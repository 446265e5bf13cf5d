package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"note-keeper/mapper"
	"note-keeper/models"
)

// TaskService handles business logic for tasks, including the bulk
// export/import round trip to a JSON file.
type TaskService struct {
	store        TaskStore
	defaultColor models.TaskColor
	exportPath   string
}

// NewTaskService creates a new task service. exportPath is the file
// the export/import round trip uses.
func NewTaskService(store TaskStore, defaultColor int, exportPath string) *TaskService {
	color := models.TaskColor(defaultColor)
	if !color.Valid() {
		color = models.TaskColorWhite
	}
	return &TaskService{
		store:        store,
		defaultColor: color,
		exportPath:   exportPath,
	}
}

// Save persists a task, stamping the edit time. Mirrors the note save
// rules: default color on first insert only, and an edit carries the
// stored active/deleted flags forward instead of resetting them.
func (ts *TaskService) Save(req models.SaveTaskRequest) (*models.TaskView, error) {
	if req.Description == "" {
		return nil, ErrEmptyContent
	}

	task := models.Task{
		ID:          req.ID,
		Description: req.Description,
		IsActive:    true,
		IsImportant: req.IsImportant,
	}

	switch {
	case req.Color != nil:
		task.Color = models.TaskColor(*req.Color)
	case req.ID == 0:
		task.Color = ts.defaultColor
	}

	if req.ID != 0 {
		existing, err := ts.store.GetTask(req.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			task.IsActive = existing.IsActive
			task.IsDeleted = existing.IsDeleted
			if req.Color == nil {
				task.Color = existing.Color
			}
		} else if req.Color == nil {
			task.Color = ts.defaultColor
		}
	}

	task = mapper.StampTask(task)
	if err := ts.store.UpsertTask(&task); err != nil {
		return nil, err
	}

	view := mapper.TaskToView(task)
	return &view, nil
}

// Get retrieves a single task by id.
func (ts *TaskService) Get(id int64) (*models.TaskView, error) {
	task, err := ts.store.GetTask(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	view := mapper.TaskToView(*task)
	return &view, nil
}

// List retrieves a one-shot ordered snapshot of the main collection.
func (ts *TaskService) List(sort models.TaskSort) ([]models.TaskView, error) {
	tasks, err := ts.store.ListTasks(sort, false)
	if err != nil {
		return nil, err
	}
	return mapper.TasksToViews(tasks), nil
}

// ListTrash retrieves the trashed tasks, newest first.
func (ts *TaskService) ListTrash() ([]models.TaskView, error) {
	tasks, err := ts.store.ListTasks(models.SortTasksByColor, true)
	if err != nil {
		return nil, err
	}
	return mapper.TasksToViews(tasks), nil
}

// All opens a live feed over the main collection with a switchable
// sort selector.
func (ts *TaskService) All(ctx context.Context, sort models.TaskSort) *Feed[models.TaskSort, models.TaskView] {
	return newFeed(ctx, sort, ts.watchViews)
}

func (ts *TaskService) watchViews(ctx context.Context, sort models.TaskSort) <-chan []models.TaskView {
	src := ts.store.WatchTasks(ctx, sort)
	out := make(chan []models.TaskView, 1)
	go func() {
		defer close(out)
		for tasks := range src {
			select {
			case out <- mapper.TasksToViews(tasks):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Delete permanently purges a task.
func (ts *TaskService) Delete(id int64) error {
	return ts.store.DeleteTask(id)
}

// MoveToTrash soft-deletes a task. Only the flag changes.
func (ts *TaskService) MoveToTrash(id int64) error {
	return ts.store.SetTaskDeleted(id, true)
}

// RestoreFromTrash brings a trashed task back.
func (ts *TaskService) RestoreFromTrash(id int64) error {
	return ts.store.SetTaskDeleted(id, false)
}

// SwitchActive toggles the pending/done flag. It does not touch the
// importance or soft-delete flags.
func (ts *TaskService) SwitchActive(id int64) error {
	return ts.store.SwitchTaskActive(id)
}

// DeleteAllInactive purges every completed task in one transaction.
func (ts *TaskService) DeleteAllInactive() error {
	return ts.store.DeleteAllInactive()
}

// Export writes the full task table, soft-deleted rows included, to
// the export file. The write goes through a temp file and a rename so
// a crashed export never leaves a truncated file behind.
func (ts *TaskService) Export() (int, error) {
	tasks, err := ts.store.AllTasks()
	if err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(ts.exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "tasks-export-*.json")
	if err != nil {
		return 0, err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, err
	}
	if err := os.Rename(tmp.Name(), ts.exportPath); err != nil {
		os.Remove(tmp.Name())
		return 0, err
	}

	return len(tasks), nil
}

// Import reads the export file and merges its rows by primary key in
// one transaction, so re-importing the same export changes nothing.
func (ts *TaskService) Import() (int, error) {
	data, err := os.ReadFile(ts.exportPath)
	if err != nil {
		return 0, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	for _, task := range tasks {
		if task.ID == 0 {
			return 0, fmt.Errorf("%w: task row without id", ErrImportFormat)
		}
	}

	if err := ts.store.ImportTasks(tasks); err != nil {
		return 0, err
	}

	return len(tasks), nil
}
