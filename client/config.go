package client

import (
	"time"

	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
)

const namedLogger = "client"

// Config represents the configuration of the stock client.
type Config struct {
	Level   encoding.LogLevel `long:"log-level"`
	Address string            `long:"address" description:"host:port of the stock node"`
	Timeout encoding.Duration `long:"timeout" description:"deadline of unary calls"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Address: "127.0.0.1:9090",
		Timeout: encoding.Duration{Duration: 5 * time.Second},
	}
}
