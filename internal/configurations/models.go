package configurations

import (
	"sort"

	"github.com/samber/lo"
)

// Configuration is one named project: where it lives, whether it takes part
// in clone/start/stop, and where it has been cloned to.
type Configuration struct {
	Active    bool   `toml:"active"`
	URL       string `toml:"url" validate:"required"`
	ClonePath string `toml:"clone_path,omitempty"`
}

// Cloned reports whether the project has a known local clone.
func (c Configuration) Cloned() bool {
	return c.ClonePath != ""
}

// Store is the full configuration mapping, keyed by unique name. It is loaded
// once per invocation and written back once at the end.
type Store map[string]Configuration

// Names returns every configuration name in lexicographic order.
func (s Store) Names() []string {
	names := lo.Keys(s)
	sort.Strings(names)

	return names
}

// ActiveNames returns the names of active configurations in lexicographic order.
func (s Store) ActiveNames() []string {
	return lo.Filter(s.Names(), func(name string, _ int) bool {
		return s[name].Active
	})
}
