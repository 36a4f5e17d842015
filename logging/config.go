package logging

// Config contains the configurable items for this package.
type Config struct {
	Environment string     `long:"env" choice:"dev" choice:"prod" description:"dev gives a console encoder, anything else json"`
	Level       string     `long:"level" description:"debug, info, warning, error"`
	File        FileConfig `group:"File" namespace:"file"`
}

// FileConfig enables an additional, rotated, log file next to stdout.
type FileConfig struct {
	Path       string `long:"path" description:"leave empty to log to stdout only"`
	MaxSizeMB  int    `long:"max-size-mb"`
	MaxBackups int    `long:"max-backups"`
	MaxAgeDays int    `long:"max-age-days"`
	Compress   bool   `long:"compress"`
}

// NewDefaultConfig creates an instance of the package-specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Environment: "prod",
		Level:       "info",
		File: FileConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
