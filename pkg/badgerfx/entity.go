package badgerfx

// Entity is anything the generic repository can persist. StorageKey returns
// the primary key; StorageIndexes returns secondary keys whose values point
// back at the primary key.
type Entity interface {
	StorageKey() string
	StorageIndexes() []string
	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}
