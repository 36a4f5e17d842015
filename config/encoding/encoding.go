// Package encoding holds the scalar types of the configuration that are
// written as text both in config.toml and on the command line.
package encoding

import (
	"strconv"
	"time"

	"code.vegaprotocol.io/stockstream/logging"

	"github.com/pkg/errors"
)

// Duration is written as "1s", "250ms" and so on.
type Duration struct {
	time.Duration
}

func (d Duration) Get() time.Duration {
	return d.Duration
}

func (d *Duration) UnmarshalFlag(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrap(err, "invalid duration")
	}
	d.Duration = v
	return nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	return d.UnmarshalFlag(string(text))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// LogLevel is written by name: debug, info, warning or error.
type LogLevel struct {
	logging.Level
}

func (l LogLevel) Get() logging.Level {
	return l.Level
}

func (l *LogLevel) UnmarshalFlag(s string) error {
	lvl, err := logging.ParseLevel(s)
	if err != nil {
		return err
	}
	l.Level = lvl
	return nil
}

func (l *LogLevel) UnmarshalText(text []byte) error {
	return l.UnmarshalFlag(string(text))
}

func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.Level.String()), nil
}

// Bool only accepts the literals true and false. A bare command line
// switch arrives empty and means true.
type Bool bool

func (b *Bool) UnmarshalFlag(s string) error {
	switch s {
	case "":
		*b = true
		return nil
	case "true", "false":
		v, _ := strconv.ParseBool(s)
		*b = Bool(v)
		return nil
	default:
		return errors.Errorf("only true and false are valid values, not %q", s)
	}
}

func (b *Bool) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return errors.New("empty boolean")
	}
	return b.UnmarshalFlag(string(text))
}

func (b Bool) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(b))), nil
}
