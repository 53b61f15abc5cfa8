package history

import (
	"context"
	"fmt"

	"github.com/comphost/comphost/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type Repository struct {
	db      *badger.DB
	entries *badgerfx.Repository[*entryModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db:      db,
		entries: badgerfx.NewRepository(func() *entryModel { return &entryModel{} }),
	}
}

// Append persists a new entry.
func (r *Repository) Append(_ context.Context, draft *EntryDraft) (*Entry, error) {
	model := newEntryModel(draft)

	err := r.db.Update(func(txn *badger.Txn) error {
		return r.entries.Write(txn, model)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}

	return newEntry(model), nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (r *Repository) List(_ context.Context, limit int) ([]Entry, error) {
	var models []*entryModel

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		found, listErr := r.entries.List(txn, prefixByID, opts)
		if listErr != nil {
			return listErr
		}

		models = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}

	if limit > 0 && len(models) > limit {
		models = models[:limit]
	}

	return lo.Map(models, func(m *entryModel, _ int) Entry {
		return *newEntry(m)
	}), nil
}
