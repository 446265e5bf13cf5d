package services

import (
	"context"

	"note-keeper/mapper"
	"note-keeper/models"
)

// NoteService handles business logic for notes
type NoteService struct {
	store        NoteStore
	defaultColor models.NoteColor
}

// NewNoteService creates a new note service. defaultColor is the
// user's preferred palette index for new notes; out-of-range values
// fall back to white.
func NewNoteService(store NoteStore, defaultColor int) *NoteService {
	color := models.NoteColor(defaultColor)
	if !color.Valid() {
		color = models.NoteColorWhite
	}
	return &NoteService{
		store:        store,
		defaultColor: color,
	}
}

// Save persists a note, stamping the edit time. The default color is
// applied on first insert only; editing without choosing a color keeps
// whatever the row already has. An edit also never resurrects or
// trashes a note: the stored soft-delete flag is carried over.
func (ns *NoteService) Save(req models.SaveNoteRequest) (*models.NoteView, error) {
	if req.Text == "" {
		return nil, ErrEmptyContent
	}

	note := models.Note{
		ID:          req.ID,
		Text:        req.Text,
		IsDateShown: req.IsDateShown,
	}

	switch {
	case req.Color != nil:
		note.Color = models.NoteColor(*req.Color)
	case req.ID == 0:
		note.Color = ns.defaultColor
	}

	if req.ID != 0 {
		existing, err := ns.store.GetNote(req.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			note.IsDeleted = existing.IsDeleted
			if req.Color == nil {
				note.Color = existing.Color
			}
		} else if req.Color == nil {
			note.Color = ns.defaultColor
		}
	}

	note = mapper.StampNote(note)
	if err := ns.store.UpsertNote(&note); err != nil {
		return nil, err
	}

	view := mapper.NoteToView(note)
	return &view, nil
}

// Get retrieves a single note by id.
func (ns *NoteService) Get(id int64) (*models.NoteView, error) {
	note, err := ns.store.GetNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	view := mapper.NoteToView(*note)
	return &view, nil
}

// List retrieves a one-shot ordered snapshot of the main collection.
func (ns *NoteService) List(sort models.NoteSort) ([]models.NoteView, error) {
	notes, err := ns.store.ListNotes(sort, false)
	if err != nil {
		return nil, err
	}
	return mapper.NotesToViews(notes), nil
}

// ListTrash retrieves the trashed notes, newest first.
func (ns *NoteService) ListTrash() ([]models.NoteView, error) {
	notes, err := ns.store.ListNotes(models.SortNotesByColor, true)
	if err != nil {
		return nil, err
	}
	return mapper.NotesToViews(notes), nil
}

// All opens a live feed over the main collection. The feed re-emits on
// every change and switches its underlying query when the sort
// selector changes.
func (ns *NoteService) All(ctx context.Context, sort models.NoteSort) *Feed[models.NoteSort, models.NoteView] {
	return newFeed(ctx, sort, ns.watchViews)
}

func (ns *NoteService) watchViews(ctx context.Context, sort models.NoteSort) <-chan []models.NoteView {
	src := ns.store.WatchNotes(ctx, sort)
	out := make(chan []models.NoteView, 1)
	go func() {
		defer close(out)
		for notes := range src {
			select {
			case out <- mapper.NotesToViews(notes):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Delete permanently purges a note. Used from the trash view.
func (ns *NoteService) Delete(id int64) error {
	return ns.store.DeleteNote(id)
}

// MoveToTrash soft-deletes a note. Only the flag changes.
func (ns *NoteService) MoveToTrash(id int64) error {
	return ns.store.SetNoteDeleted(id, true)
}

// RestoreFromTrash brings a trashed note back to the main collection.
func (ns *NoteService) RestoreFromTrash(id int64) error {
	return ns.store.SetNoteDeleted(id, false)
}

// EmptyTrash purges every trashed note at once.
func (ns *NoteService) EmptyTrash() error {
	return ns.store.EmptyTrash()
}

// TrashCount returns the current number of trashed notes.
func (ns *NoteService) TrashCount() (int, error) {
	return ns.store.TrashCount()
}

// WatchTrashCount streams the trash badge count, re-emitting on every
// trash, restore and purge.
func (ns *NoteService) WatchTrashCount(ctx context.Context) <-chan int {
	return ns.store.WatchTrashCount(ctx)
}

// ShowDate sets the date display preference on every note.
func (ns *NoteService) ShowDate(shown bool) error {
	return ns.store.SetAllNotesDateShown(shown)
}
