package metrics

import "code.vegaprotocol.io/stockstream/config/encoding"

const (
	defaultPort = 2112
	defaultPath = "/metrics"
)

// Config represents the configuration of the metric package.
type Config struct {
	Port    int           `long:"port"`
	Path    string        `long:"path"`
	Enabled encoding.Bool `long:"enabled"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Port:    defaultPort,
		Path:    defaultPath,
		Enabled: false,
	}
}
