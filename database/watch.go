package database

import (
	"context"
	"log/slog"
	"sync"

	"note-keeper/models"
)

// notifier fans a change signal out to live query subscribers.
// Signals are coalesced: a subscriber that has not drained its channel
// yet sees at most one pending signal, and re-queries once.
type notifier struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[chan struct{}]struct{})}
}

func (n *notifier) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

func (n *notifier) unsubscribe(ch chan struct{}) {
	n.mu.Lock()
	delete(n.subs, ch)
	n.mu.Unlock()
}

func (n *notifier) signal() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// WatchNotes streams ordered snapshots of the non-deleted notes. The
// first snapshot is sent immediately, then one per committed change.
// The channel closes when ctx is cancelled or a query fails.
func (r *Repository) WatchNotes(ctx context.Context, sort models.NoteSort) <-chan []models.Note {
	out := make(chan []models.Note, 1)
	sub := r.notes.subscribe()

	go func() {
		defer close(out)
		defer r.notes.unsubscribe(sub)

		for {
			notes, err := r.ListNotes(sort, false)
			if err != nil {
				slog.Error("notes watch query failed", "sort", sort, "error", err)
				return
			}
			select {
			case out <- notes:
			case <-ctx.Done():
				return
			}

			select {
			case <-sub:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// WatchTrashCount streams the live count of trashed notes, used for
// the trash badge. Re-emits after every trash, restore and purge.
func (r *Repository) WatchTrashCount(ctx context.Context) <-chan int {
	out := make(chan int, 1)
	sub := r.notes.subscribe()

	go func() {
		defer close(out)
		defer r.notes.unsubscribe(sub)

		for {
			count, err := r.TrashCount()
			if err != nil {
				slog.Error("trash count watch query failed", "error", err)
				return
			}
			select {
			case out <- count:
			case <-ctx.Done():
				return
			}

			select {
			case <-sub:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// WatchTasks streams ordered snapshots of the non-deleted tasks.
func (r *Repository) WatchTasks(ctx context.Context, sort models.TaskSort) <-chan []models.Task {
	out := make(chan []models.Task, 1)
	sub := r.tasks.subscribe()

	go func() {
		defer close(out)
		defer r.tasks.unsubscribe(sub)

		for {
			tasks, err := r.ListTasks(sort, false)
			if err != nil {
				slog.Error("tasks watch query failed", "sort", sort, "error", err)
				return
			}
			select {
			case out <- tasks:
			case <-ctx.Done():
				return
			}

			select {
			case <-sub:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
