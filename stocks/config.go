package stocks

import (
	"fmt"
	"time"

	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/types"
)

const namedLogger = "stocks"

// Backend selects the storage of the price records.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendBadger Backend = "badger"
	BackendPebble Backend = "pebble"
	BackendRedis  Backend = "redis"
)

func (b *Backend) UnmarshalText(text []byte) error {
	switch v := Backend(text); v {
	case BackendMemory, BackendBadger, BackendPebble, BackendRedis:
		*b = v
		return nil
	default:
		return fmt.Errorf("unknown stock store backend %q", string(text))
	}
}

func (b *Backend) UnmarshalFlag(s string) error {
	return b.UnmarshalText([]byte(s))
}

func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b), nil
}

// RedisConfig is the connection to the redis holding the `stock:<SYM>` hashes.
type RedisConfig struct {
	Address     string            `long:"address"`
	Password    string            `long:"password"`
	DB          int               `long:"db"`
	DialTimeout encoding.Duration `long:"dial-timeout"`
}

// Config represent the configuration of the stock store.
type Config struct {
	Level     encoding.LogLevel `long:"log-level"`
	Backend   Backend           `long:"backend" description:"memory, badger, pebble or redis"`
	BadgerDir string            `long:"badger-dir" description:"badger data directory, empty keeps the data in memory"`
	PebbleDir string            `long:"pebble-dir" description:"pebble data directory, empty keeps the data in memory"`
	Redis     RedisConfig       `group:"Redis" namespace:"redis"`

	// Seed is written to the store at start up.
	Seed []types.PriceRecord
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Backend: BackendMemory,
		Redis: RedisConfig{
			Address:     "127.0.0.1:6379",
			DialTimeout: encoding.Duration{Duration: 5 * time.Second},
		},
		Seed: []types.PriceRecord{
			{Symbol: "AAPL", Price: 150.5},
			{Symbol: "GOOGL", Price: 2700.0},
			{Symbol: "TSLA", Price: 700.0},
		},
	}
}
