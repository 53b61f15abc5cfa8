package badgerfx

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
)

type testRecord struct {
	Key   string `json:"key"`
	Alias string `json:"alias,omitempty"`
	Value string `json:"value"`
}

func (r *testRecord) StorageKey() string {
	return "record:id:" + r.Key
}

func (r *testRecord) StorageIndexes() []string {
	if r.Alias == "" {
		return nil
	}

	return []string{"record:alias:" + r.Alias}
}

func (r *testRecord) MarshalStorage() ([]byte, error) {
	return json.Marshal(r)
}

func (r *testRecord) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, r)
}

var _ Entity = (*testRecord)(nil)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := Config{Dir: t.TempDir()}.Build()
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newTestRepository() *Repository[*testRecord] {
	return NewRepository(func() *testRecord { return &testRecord{} })
}

func TestRepository_WriteAndRead(t *testing.T) {
	db := openTestDB(t)
	repo := newTestRepository()

	record := &testRecord{Key: "a", Value: "first"}
	if err := db.Update(func(txn *badger.Txn) error {
		return repo.Write(txn, record)
	}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	err := db.View(func(txn *badger.Txn) error {
		got, readErr := repo.Read(txn, record.StorageKey())
		if readErr != nil {
			return readErr
		}
		if got.Value != "first" {
			t.Errorf("Expected value %q, got %q", "first", got.Value)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
}

func TestRepository_ReadMissing(t *testing.T) {
	db := openTestDB(t)
	repo := newTestRepository()

	err := db.View(func(txn *badger.Txn) error {
		_, readErr := repo.Read(txn, "record:id:ghost")
		return readErr
	})
	if !errors.Is(err, badger.ErrKeyNotFound) {
		t.Fatalf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestRepository_ReadByIndex(t *testing.T) {
	db := openTestDB(t)
	repo := newTestRepository()

	record := &testRecord{Key: "a", Alias: "primary", Value: "first"}
	if err := db.Update(func(txn *badger.Txn) error {
		return repo.Write(txn, record)
	}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	err := db.View(func(txn *badger.Txn) error {
		got, readErr := repo.ReadByIndex(txn, "record:alias:primary")
		if readErr != nil {
			return readErr
		}
		if got.Key != "a" {
			t.Errorf("Expected key %q, got %q", "a", got.Key)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ReadByIndex failed: %v", err)
	}
}

func TestRepository_DeleteRemovesIndexes(t *testing.T) {
	db := openTestDB(t)
	repo := newTestRepository()

	record := &testRecord{Key: "a", Alias: "primary", Value: "first"}
	if err := db.Update(func(txn *badger.Txn) error {
		return repo.Write(txn, record)
	}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := db.Update(func(txn *badger.Txn) error {
		return repo.Delete(txn, record.StorageKey())
	}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	err := db.View(func(txn *badger.Txn) error {
		if _, readErr := repo.Read(txn, record.StorageKey()); !errors.Is(readErr, badger.ErrKeyNotFound) {
			t.Errorf("Expected entity to be gone, got %v", readErr)
		}
		if _, readErr := repo.ReadByIndex(txn, "record:alias:primary"); !errors.Is(readErr, badger.ErrKeyNotFound) {
			t.Errorf("Expected index to be gone, got %v", readErr)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestRepository_ListReverse(t *testing.T) {
	db := openTestDB(t)
	repo := newTestRepository()

	if err := db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{"a", "b", "c"} {
			if err := repo.Write(txn, &testRecord{Key: key, Value: key}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		records, listErr := repo.List(txn, "record:id:", opts)
		if listErr != nil {
			return listErr
		}

		if len(records) != 3 {
			t.Fatalf("Expected 3 records, got %d", len(records))
		}
		if records[0].Key != "c" || records[2].Key != "a" {
			t.Errorf("Unexpected order: %q, %q, %q",
				records[0].Key, records[1].Key, records[2].Key)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
}
