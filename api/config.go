package api

import (
	"time"

	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'api.grpc'.
const namedLogger = "api.grpc"

// Config represents the configuration of the api package.
type Config struct {
	Level        encoding.LogLevel `long:"log-level"`
	IP           string            `long:"ip" description:"Bind to address <ip>"`
	Port         int               `long:"port" description:"Listen for connection on port <port>"`
	Timeout      encoding.Duration `long:"timeout" description:"deadline applied to unary calls"`
	StopTimeout  encoding.Duration `long:"stop-timeout" description:"grace period for open calls on shutdown"`
	MaxRecvBytes int               `long:"max-recv-bytes" description:"largest message accepted from a client"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:        encoding.LogLevel{Level: logging.InfoLevel},
		IP:           "0.0.0.0",
		Port:         9090,
		Timeout:      encoding.Duration{Duration: 5 * time.Second},
		StopTimeout:  encoding.Duration{Duration: 10 * time.Second},
		MaxRecvBytes: 4 << 20,
	}
}
