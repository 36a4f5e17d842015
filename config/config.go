package config

import (
	"bytes"
	"os"
	"path/filepath"

	"code.vegaprotocol.io/stockstream/api"
	"code.vegaprotocol.io/stockstream/broker"
	"code.vegaprotocol.io/stockstream/feeds"
	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/metrics"
	"code.vegaprotocol.io/stockstream/orders"
	"code.vegaprotocol.io/stockstream/prices"
	"code.vegaprotocol.io/stockstream/stocks"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	configFileName = "config.toml"
	defaultDirName = ".stockstream"
)

// ErrConfigExists is returned by Save when a configuration is already present.
var ErrConfigExists = errors.New("configuration file already exists")

// Config ties together all other application configuration types.
type Config struct {
	API     api.Config     `group:"API" namespace:"api"`
	Logging logging.Config `group:"Logging" namespace:"logging"`
	Prices  prices.Config  `group:"Prices" namespace:"prices"`
	Orders  orders.Config  `group:"Orders" namespace:"orders"`
	Stocks  stocks.Config  `group:"Stocks" namespace:"stocks"`
	Feeds   feeds.Config   `group:"Feeds" namespace:"feeds"`
	Broker  broker.Config  `group:"Broker" namespace:"broker"`
	Metrics metrics.Config `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns a set of default configs for all packages, as specified at the per package
// config level.
func NewDefaultConfig() Config {
	return Config{
		API:     api.NewDefaultConfig(),
		Logging: logging.NewDefaultConfig(),
		Prices:  prices.NewDefaultConfig(),
		Orders:  orders.NewDefaultConfig(),
		Stocks:  stocks.NewDefaultConfig(),
		Feeds:   feeds.NewDefaultConfig(),
		Broker:  broker.NewDefaultConfig(),
		Metrics: metrics.NewDefaultConfig(),
	}
}

// DefaultRootPath is the directory holding the configuration file when none is given.
func DefaultRootPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

// Path returns the configuration file under rootPath.
func Path(rootPath string) string {
	return filepath.Join(rootPath, configFileName)
}

// Read loads the configuration file under rootPath over the defaults.
func Read(rootPath string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := decodeFile(Path(rootPath), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg under rootPath, an existing file is only replaced when
// force is set.
func Save(rootPath string, cfg Config, force bool) error {
	path := Path(rootPath)
	if _, err := os.Stat(path); err == nil && !force {
		return ErrConfigExists
	}
	if err := os.MkdirAll(rootPath, 0o700); err != nil {
		return errors.Wrap(err, "creating configuration directory")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "encoding configuration")
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}

func decodeFile(path string, cfg *Config) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := toml.Decode(string(buf), cfg); err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}
	return nil
}
