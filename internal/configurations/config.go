package configurations

type Config struct {
	// Path of the TOML store file. The parent directory is created on save.
	Path string
}
