package stocks

import (
	"context"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
)

const badgerNamedLogger = "badger"

// Badger keeps the records in a badger database, an empty dir keeps the
// database in memory.
type Badger struct {
	db *badger.DB
}

func NewBadger(log *logging.Logger, dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1).
		WithLogger(log.Named(badgerNamedLogger))
	if len(dir) == 0 {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Get(_ context.Context, symbol string) (*types.PriceRecord, error) {
	var rec *types.PriceRecord
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(symbol))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			rec, err = decodeRecord(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (b *Badger) Put(_ context.Context, rec types.PriceRecord) error {
	if len(rec.Symbol) == 0 {
		return ErrEmptySymbol
	}
	buf, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rec.Symbol), buf)
	})
}

func (b *Badger) Close() error {
	return b.db.Close()
}
