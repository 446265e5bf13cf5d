package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"note-keeper/database"
	"note-keeper/models"
)

func setupTestStore(t *testing.T) (*database.Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "note-keeper-services-*")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)

	err = db.Migrate()
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return database.NewRepository(db), cleanup
}

func TestNoteFeed_SwitchSort(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewNoteService(repo, 0)

	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	seed := []models.Note{
		{Text: "green newest", Color: models.NoteColorGreen, DateEdit: base.Add(2 * time.Hour)},
		{Text: "yellow oldest", Color: models.NoteColorYellow, DateEdit: base},
		{Text: "red middle", Color: models.NoteColorRed, DateEdit: base.Add(time.Hour)},
	}
	for i := range seed {
		require.NoError(t, repo.UpsertNote(&seed[i]))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed := service.All(ctx, models.SortNotesByColor)
	defer feed.Close()

	// First emission honors the initial color ordering
	snapshot := <-feed.Items()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "yellow oldest", snapshot[0].Text)
	assert.Equal(t, "red middle", snapshot[1].Text)
	assert.Equal(t, "green newest", snapshot[2].Text)

	// The very next emission after a switch matches the new ordering,
	// without re-subscribing
	feed.SetSort(models.SortNotesByDateNew)
	snapshot = <-feed.Items()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "green newest", snapshot[0].Text)
	assert.Equal(t, "red middle", snapshot[1].Text)
	assert.Equal(t, "yellow oldest", snapshot[2].Text)

	assert.Equal(t, models.SortNotesByDateNew, feed.Sort())

	// Mutations keep flowing under the new ordering
	extra := models.Note{Text: "brand new", Color: models.NoteColorBlue, DateEdit: base.Add(3 * time.Hour)}
	require.NoError(t, repo.UpsertNote(&extra))

	snapshot = <-feed.Items()
	require.Len(t, snapshot, 4)
	assert.Equal(t, "brand new", snapshot[0].Text)
}

func TestNoteFeed_SwitchDropsBufferedSnapshot(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewNoteService(repo, 0)

	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	seed := []models.Note{
		{Text: "yellow old", Color: models.NoteColorYellow, DateEdit: base},
		{Text: "gray new", Color: models.NoteColorGray, DateEdit: base.Add(time.Hour)},
	}
	for i := range seed {
		require.NoError(t, repo.UpsertNote(&seed[i]))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed := service.All(ctx, models.SortNotesByColor)
	defer feed.Close()

	// Let the color-ordered snapshot land in the buffer without
	// draining it, then switch. The buffered snapshot must be dropped:
	// the first delivery an observer sees follows the new ordering.
	time.Sleep(100 * time.Millisecond)
	feed.SetSort(models.SortNotesByDateNew)

	snapshot := <-feed.Items()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "gray new", snapshot[0].Text)
	assert.Equal(t, "yellow old", snapshot[1].Text)
}

func TestNoteFeed_SetSameSortIsNoop(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewNoteService(repo, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed := service.All(ctx, models.SortNotesByColor)
	defer feed.Close()

	<-feed.Items()
	feed.SetSort(models.SortNotesByColor)

	// No restart happened, so nothing new is emitted
	select {
	case snapshot, ok := <-feed.Items():
		if ok {
			t.Fatalf("unexpected emission after no-op sort change: %v", snapshot)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNoteFeed_CloseEndsStream(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewNoteService(repo, 0)

	feed := service.All(context.Background(), models.SortNotesByColor)
	<-feed.Items()
	feed.Close()

	_, ok := <-feed.Items()
	assert.False(t, ok)

	// Close is idempotent and SetSort after Close is a no-op
	feed.Close()
	feed.SetSort(models.SortNotesByDateOld)
}

func TestTaskFeed_ImportanceOrdering(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewTaskService(repo, 0, "")

	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	seed := []models.Task{
		{Description: "plain", DateEdit: base.Add(time.Hour), IsActive: true},
		{Description: "important", DateEdit: base, IsActive: true, IsImportant: true},
	}
	for i := range seed {
		require.NoError(t, repo.UpsertTask(&seed[i]))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed := service.All(ctx, models.SortTasksByImportance)
	defer feed.Close()

	snapshot := <-feed.Items()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "important", snapshot[0].Description)
	assert.Equal(t, "plain", snapshot[1].Description)
}

func TestWatchTrashCount_Service(t *testing.T) {
	repo, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewNoteService(repo, 0)

	note, err := service.Save(models.SaveNoteRequest{Text: "badge me"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts := service.WatchTrashCount(ctx)
	assert.Equal(t, 0, <-counts)

	require.NoError(t, service.MoveToTrash(note.ID))
	assert.Equal(t, 1, <-counts)

	require.NoError(t, service.Delete(note.ID))
	assert.Equal(t, 0, <-counts)

	_, err = service.Get(note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}
