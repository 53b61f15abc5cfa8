package configurations

import "errors"

var (
	ErrStoreCorrupt  = errors.New("configuration store is corrupt")
	ErrNotADirectory = errors.New("path exists but is not a directory")
)
