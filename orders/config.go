package orders

import (
	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
)

const namedLogger = "orders"

// Config represent the configuration of the bulk order service.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
	// RejectInvalid counts malformed orders as rejected instead of folding them.
	RejectInvalid encoding.Bool `long:"reject-invalid" description:"count orders without symbol, side, positive price or quantity as rejected"`
	// PartialSummaryOnError answers a failed upload with what was folded so
	// far. Cancelled uploads never get a summary.
	PartialSummaryOnError encoding.Bool `long:"partial-summary-on-error" description:"send a partial summary when the client stream fails"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:                 encoding.LogLevel{Level: logging.InfoLevel},
		RejectInvalid:         false,
		PartialSummaryOnError: false,
	}
}
