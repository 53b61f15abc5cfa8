package network

type Config struct {
	// Name of the shared bridge network all started projects attach to.
	Name string
}
