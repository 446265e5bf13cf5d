package database

type Repository struct {
	db *DB

	// One notifier per table. Every committed mutation signals the
	// matching notifier so live watch queries re-emit.
	notes *notifier
	tasks *notifier
}

func NewRepository(db *DB) *Repository {
	return &Repository{
		db:    db,
		notes: newNotifier(),
		tasks: newNotifier(),
	}
}
