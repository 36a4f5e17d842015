package broker

import (
	"time"

	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
)

const namedLogger = "broker"

// Config represents the configuration of the broker.
type Config struct {
	Level        encoding.LogLevel `long:"log-level"`
	Enabled      encoding.Bool     `long:"enabled" description:"publish completed order summaries to kafka"`
	Brokers      []string          `long:"brokers" description:"kafka broker addresses"`
	Topic        string            `long:"topic"`
	BatchTimeout encoding.Duration `long:"batch-timeout"`
	WriteTimeout encoding.Duration `long:"write-timeout" description:"upper bound on publishing one summary"`
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Level:        encoding.LogLevel{Level: logging.InfoLevel},
		Enabled:      false,
		Brokers:      []string{"127.0.0.1:9092"},
		Topic:        "order-summaries",
		BatchTimeout: encoding.Duration{Duration: 10 * time.Millisecond},
		WriteTimeout: encoding.Duration{Duration: 5 * time.Second},
	}
}
