package feeds

import (
	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
)

const namedLogger = "feeds"

// Config represent the configuration of the redis price feed.
type Config struct {
	Level      encoding.LogLevel `long:"log-level"`
	Enabled    encoding.Bool     `long:"enabled" description:"connect to the redis price feed, required by the external-feed price model"`
	Address    string            `long:"address"`
	Password   string            `long:"password"`
	DB         int               `long:"db"`
	BufferSize int               `long:"buffer-size" description:"ticks buffered per subscription before dropping"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:      encoding.LogLevel{Level: logging.InfoLevel},
		Enabled:    false,
		Address:    "127.0.0.1:6379",
		BufferSize: 64,
	}
}
