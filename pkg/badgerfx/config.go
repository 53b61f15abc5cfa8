package badgerfx

import "github.com/dgraph-io/badger/v4"

type Config struct {
	// Dir is the BadgerDB data directory, created on open if absent.
	Dir string
}

func (c Config) Build() badger.Options {
	return badger.DefaultOptions(c.Dir)
}
