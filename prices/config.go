package prices

import (
	"fmt"
	"time"

	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
)

const namedLogger = "prices"

// PriceModel selects how generated prices are produced.
type PriceModel string

const (
	// PriceModelUniform draws every price uniformly from the configured range.
	PriceModelUniform PriceModel = "synthetic-uniform"
	// PriceModelExternalFeed relays prices published on the feed.
	PriceModelExternalFeed PriceModel = "external-feed"
)

func (m *PriceModel) UnmarshalText(text []byte) error {
	switch pm := PriceModel(text); pm {
	case PriceModelUniform, PriceModelExternalFeed:
		*m = pm
		return nil
	default:
		return fmt.Errorf("unknown price model %q", string(text))
	}
}

func (m *PriceModel) UnmarshalFlag(s string) error {
	return m.UnmarshalText([]byte(s))
}

func (m PriceModel) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// PriceRange is the half open interval [Min, Max) uniform prices are drawn from.
type PriceRange struct {
	Min float64 `long:"min"`
	Max float64 `long:"max"`
}

// Config represent the configuration of the price generators.
type Config struct {
	Level        encoding.LogLevel `long:"log-level"`
	TickCount    uint64            `long:"tick-count" description:"number of ticks sent per subscription, 0 to only bound by max-duration"`
	TickInterval encoding.Duration `long:"tick-interval" description:"pause before each tick"`
	MaxDuration  encoding.Duration `long:"max-duration" description:"maximum lifetime of a subscription, 0 to disable"`
	PriceRange   PriceRange        `group:"PriceRange" namespace:"pricerange"`
	PriceModel   PriceModel        `long:"price-model" description:"synthetic-uniform or external-feed"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:        encoding.LogLevel{Level: logging.InfoLevel},
		TickCount:    10,
		TickInterval: encoding.Duration{Duration: time.Second},
		PriceRange:   PriceRange{Min: 0, Max: 200},
		PriceModel:   PriceModelUniform,
	}
}

func (c Config) validate() error {
	if c.TickCount == 0 && c.MaxDuration.Get() <= 0 {
		return ErrUnboundedStream
	}
	if c.TickInterval.Get() < 0 {
		return fmt.Errorf("negative tick interval %s", c.TickInterval.Get())
	}
	if c.PriceModel == PriceModelUniform && !(c.PriceRange.Min < c.PriceRange.Max) {
		return fmt.Errorf("invalid price range [%v, %v)", c.PriceRange.Min, c.PriceRange.Max)
	}
	return nil
}
