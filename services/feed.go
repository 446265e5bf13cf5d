package services

import (
	"context"
	"sync"
)

// Feed is a live collection whose sort selector can change while it is
// being observed. It keeps at most one storage watch query alive at a
// time: SetSort tears down the previous query and establishes a new
// one, and no snapshot from the stale query is delivered once SetSort
// has returned. Snapshots are conflated, so an observer that falls
// behind sees the latest one.
type Feed[S comparable, T any] struct {
	ctx   context.Context
	watch func(ctx context.Context, sort S) <-chan []T
	out   chan []T

	mu     sync.Mutex
	sort   S
	gen    int
	cancel context.CancelFunc
	closed bool
}

func newFeed[S comparable, T any](
	ctx context.Context,
	sort S,
	watch func(ctx context.Context, sort S) <-chan []T,
) *Feed[S, T] {
	f := &Feed[S, T]{
		ctx:   ctx,
		watch: watch,
		out:   make(chan []T, 1),
	}

	f.mu.Lock()
	f.restart(sort)
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.Close()
	}()
	return f
}

// Items is the observer channel. It closes when the feed's context is
// cancelled or Close is called.
func (f *Feed[S, T]) Items() <-chan []T {
	return f.out
}

// Sort returns the current sort selector.
func (f *Feed[S, T]) Sort() S {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sort
}

// SetSort switches the live query to a new ordering. Setting the
// current sort again is a no-op.
func (f *Feed[S, T]) SetSort(sort S) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || sort == f.sort {
		return
	}
	f.restart(sort)
}

// Close cancels the underlying query and closes the observer channel.
func (f *Feed[S, T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.gen++
	f.closed = true
	close(f.out)
}

// restart is called with f.mu held.
func (f *Feed[S, T]) restart(sort S) {
	if f.cancel != nil {
		f.cancel()
	}

	// Drop an undelivered snapshot from the outgoing buffer. Without
	// this an observer that has not drained the channel yet would still
	// read a snapshot ordered by the previous sort.
	select {
	case <-f.out:
	default:
	}

	f.sort = sort
	f.gen++
	gen := f.gen

	ctx, cancel := context.WithCancel(f.ctx)
	f.cancel = cancel

	go f.pump(gen, f.watch(ctx, sort))
}

// pump forwards snapshots from one storage query. The generation check
// and the delivery happen under the feed mutex, so once a restart has
// bumped the generation a stale pump can never reach the observer.
func (f *Feed[S, T]) pump(gen int, src <-chan []T) {
	for {
		var items []T
		var ok bool
		select {
		case items, ok = <-src:
			if !ok {
				return
			}
		case <-f.ctx.Done():
			return
		}

		f.mu.Lock()
		if f.gen != gen {
			f.mu.Unlock()
			return
		}
		// Conflating send: replace an undelivered snapshot instead of
		// blocking while holding the mutex.
		select {
		case f.out <- items:
		default:
			select {
			case <-f.out:
			default:
			}
			select {
			case f.out <- items:
			default:
			}
		}
		f.mu.Unlock()
	}
}
