package stocks

import (
	"context"
	"encoding/json"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound signals there is no record for the symbol.
	ErrNotFound = errors.New("stock not found")
	// ErrEmptySymbol signals a record or lookup without a symbol.
	ErrEmptySymbol = errors.New("empty stock symbol")
)

// Store holds the last known price of each stock. Implementations are safe
// for concurrent use.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/store_mock.go -package mocks code.vegaprotocol.io/stockstream/stocks Store
type Store interface {
	Get(ctx context.Context, symbol string) (*types.PriceRecord, error)
	Put(ctx context.Context, rec types.PriceRecord) error
	Close() error
}

// New opens the store selected by the configuration and writes the seed.
func New(ctx context.Context, log *logging.Logger, cfg Config) (Store, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	var (
		store Store
		err   error
	)
	switch cfg.Backend {
	case BackendMemory, "":
		store = NewMemory()
	case BackendBadger:
		store, err = NewBadger(log, cfg.BadgerDir)
	case BackendPebble:
		store, err = NewPebble(cfg.PebbleDir, nil)
	case BackendRedis:
		store, err = NewRedis(ctx, cfg.Redis)
	default:
		err = errors.Errorf("unknown stock store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s stock store", cfg.Backend)
	}

	if err := Seed(ctx, store, cfg.Seed); err != nil {
		store.Close()
		return nil, err
	}
	log.Info("stock store ready",
		logging.String("backend", string(cfg.Backend)),
		logging.Int("seeded", len(cfg.Seed)),
	)
	return store, nil
}

// Seed writes every record, stopping at the first failure.
func Seed(ctx context.Context, store Store, recs []types.PriceRecord) error {
	for _, rec := range recs {
		if err := store.Put(ctx, rec); err != nil {
			return errors.Wrapf(err, "seeding %s", rec.Symbol)
		}
	}
	return nil
}

func recordKey(symbol string) []byte {
	return []byte(keyPrefix + symbol)
}

func encodeRecord(rec types.PriceRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func decodeRecord(buf []byte) (*types.PriceRecord, error) {
	rec := &types.PriceRecord{}
	if err := json.Unmarshal(buf, rec); err != nil {
		return nil, errors.Wrap(err, "decoding stock record")
	}
	return rec, nil
}
