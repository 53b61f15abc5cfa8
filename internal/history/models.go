package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/comphost/comphost/internal/storage"
	"github.com/comphost/comphost/pkg/badgerfx"
	"github.com/google/uuid"
)

const prefixByID = "history:id:"

// entryModel is the persisted form of an Entry. UUIDv7 keys keep the
// chronological order in the key space.
type entryModel struct {
	storage.BaseEntity

	Command string  `json:"command"`
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
	Detail  string  `json:"detail,omitempty"`
}

func newEntryModel(draft *EntryDraft) *entryModel {
	if draft == nil {
		return nil
	}

	now := time.Now()
	return &entryModel{
		BaseEntity: storage.BaseEntity{
			ID:        uuid.Must(uuid.NewV7()),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Command: draft.Command,
		Name:    draft.Name,
		Outcome: draft.Outcome,
		Detail:  draft.Detail,
	}
}

func newEntry(model *entryModel) *Entry {
	if model == nil {
		return nil
	}

	return &Entry{
		EntryDraft: EntryDraft{
			Command: model.Command,
			Name:    model.Name,
			Outcome: model.Outcome,
			Detail:  model.Detail,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
	}
}

// StorageKey implements badgerfx.Entity.
func (m *entryModel) StorageKey() string {
	return prefixByID + m.ID.String()
}

// StorageIndexes implements badgerfx.Entity.
func (m *entryModel) StorageIndexes() []string {
	return nil
}

// MarshalStorage implements badgerfx.Entity.
func (m *entryModel) MarshalStorage() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history entry: %w", err)
	}

	return data, nil
}

// UnmarshalStorage implements badgerfx.Entity.
func (m *entryModel) UnmarshalStorage(data []byte) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("failed to unmarshal history entry: %w", err)
	}

	return nil
}

var _ badgerfx.Entity = (*entryModel)(nil)
