package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"note-keeper/models"
)

func TestUpsertTask(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	task := &models.Task{
		Description: "Buy milk",
		Color:       models.TaskColorRed,
		DateEdit:    time.Now(),
		IsActive:    true,
	}

	err := repo.UpsertTask(task)
	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))

	retrieved, err := repo.GetTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "Buy milk", retrieved.Description)
	assert.Equal(t, models.TaskColorRed, retrieved.Color)
	assert.True(t, retrieved.IsActive)
	assert.False(t, retrieved.IsImportant)
	assert.False(t, retrieved.IsDeleted)
}

// SwitchTaskActive is a strict toggle: it takes only an id, so two
// concurrent switches cancel out instead of both landing on one state.
func TestSwitchTaskActive_StrictToggle(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	task := &models.Task{
		Description: "toggle me",
		DateEdit:    time.Now(),
		IsActive:    true,
		IsImportant: true,
	}
	require.NoError(t, repo.UpsertTask(task))

	require.NoError(t, repo.SwitchTaskActive(task.ID))
	after, err := repo.GetTask(task.ID)
	require.NoError(t, err)
	assert.False(t, after.IsActive)

	// Importance and trash flags are untouched
	assert.True(t, after.IsImportant)
	assert.False(t, after.IsDeleted)

	// Toggling twice is a round trip
	require.NoError(t, repo.SwitchTaskActive(task.ID))
	after, err = repo.GetTask(task.ID)
	require.NoError(t, err)
	assert.True(t, after.IsActive)
}

func TestDeleteAllInactive(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	active := models.Task{Description: "pending", DateEdit: time.Now(), IsActive: true}
	doneA := models.Task{Description: "done a", DateEdit: time.Now()}
	doneB := models.Task{Description: "done b", DateEdit: time.Now()}
	rescued := models.Task{Description: "rescued", DateEdit: time.Now()}
	require.NoError(t, repo.UpsertTask(&active))
	require.NoError(t, repo.UpsertTask(&doneA))
	require.NoError(t, repo.UpsertTask(&doneB))
	require.NoError(t, repo.UpsertTask(&rescued))

	// A task flipped back to active before the purge commits survives it
	require.NoError(t, repo.SwitchTaskActive(rescued.ID))

	require.NoError(t, repo.DeleteAllInactive())

	for _, id := range []int64{active.ID, rescued.ID} {
		task, err := repo.GetTask(id)
		require.NoError(t, err)
		require.NotNil(t, task, "active task %d must survive the purge", id)
	}

	for _, id := range []int64{doneA.ID, doneB.ID} {
		task, err := repo.GetTask(id)
		require.NoError(t, err)
		assert.Nil(t, task, "inactive task %d must be purged", id)
	}
}

func TestDeleteAllInactive_ConcurrentSwitches(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ids := make([]int64, 0, 20)
	for i := 0; i < 20; i++ {
		task := models.Task{Description: "task", DateEdit: time.Now(), IsActive: i%2 == 0}
		require.NoError(t, repo.UpsertTask(&task))
		ids = append(ids, task.ID)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, id := range ids[:10] {
			_ = repo.SwitchTaskActive(id)
		}
	}()
	go func() {
		defer wg.Done()
		_ = repo.DeleteAllInactive()
	}()
	wg.Wait()

	// Whatever the interleaving, no inactive row survives a final purge
	// and every active row does.
	require.NoError(t, repo.DeleteAllInactive())
	remaining, err := repo.AllTasks()
	require.NoError(t, err)
	for _, task := range remaining {
		assert.True(t, task.IsActive)
	}
}

func TestListTasks_ImportanceOrdering(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	base := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	seed := []models.Task{
		{Description: "plain old", DateEdit: base, IsActive: true},
		{Description: "important old", DateEdit: base.Add(time.Hour), IsActive: true, IsImportant: true},
		{Description: "plain new", DateEdit: base.Add(3 * time.Hour), IsActive: true},
		{Description: "important new", DateEdit: base.Add(2 * time.Hour), IsActive: true, IsImportant: true},
	}
	for i := range seed {
		require.NoError(t, repo.UpsertTask(&seed[i]))
	}

	tasks, err := repo.ListTasks(models.SortTasksByImportance, false)
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	assert.Equal(t, "important new", tasks[0].Description)
	assert.Equal(t, "important old", tasks[1].Description)
	assert.Equal(t, "plain new", tasks[2].Description)
	assert.Equal(t, "plain old", tasks[3].Description)
}

func TestImportTasks(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	exported := []models.Task{
		{ID: 1, Description: "one", Color: models.TaskColorBlue, DateEdit: time.Now(), IsActive: true},
		{ID: 2, Description: "two", Color: models.TaskColorRed, DateEdit: time.Now(), IsDeleted: true},
	}

	require.NoError(t, repo.ImportTasks(exported))

	all, err := repo.AllTasks()
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Soft-deleted rows ride along through import
	assert.True(t, all[1].IsDeleted)

	// Re-import is idempotent: same keys, same row count
	require.NoError(t, repo.ImportTasks(exported))
	all, err = repo.AllTasks()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Import overwrites by key, insert-or-replace
	exported[0].Description = "one, edited"
	require.NoError(t, repo.ImportTasks(exported))
	task, err := repo.GetTask(1)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "one, edited", task.Description)
}

func TestAllTasks_IncludesTrashed(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	visible := models.Task{Description: "visible", DateEdit: time.Now(), IsActive: true}
	trashed := models.Task{Description: "trashed", DateEdit: time.Now(), IsActive: true}
	require.NoError(t, repo.UpsertTask(&visible))
	require.NoError(t, repo.UpsertTask(&trashed))
	require.NoError(t, repo.SetTaskDeleted(trashed.ID, true))

	all, err := repo.AllTasks()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	main, err := repo.ListTasks(models.SortTasksByColor, false)
	require.NoError(t, err)
	assert.Len(t, main, 1)
}

func TestWatchTasks(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed := repo.WatchTasks(ctx, models.SortTasksByDateNew)

	snapshot := <-feed
	assert.Empty(t, snapshot)

	task := &models.Task{Description: "watched", DateEdit: time.Now(), IsActive: true}
	require.NoError(t, repo.UpsertTask(task))

	snapshot = <-feed
	require.Len(t, snapshot, 1)
	assert.Equal(t, "watched", snapshot[0].Description)
}
