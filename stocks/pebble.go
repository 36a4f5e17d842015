package stocks

import (
	"context"

	"code.vegaprotocol.io/stockstream/types"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/pkg/errors"
)

// Pebble keeps the records in a pebble database. With an empty dir and no
// filesystem the database lives in memory.
type Pebble struct {
	db *pebble.DB
}

func NewPebble(dir string, fs vfs.FS) (*Pebble, error) {
	if fs == nil {
		if len(dir) == 0 {
			fs = vfs.NewMem()
		} else {
			fs = vfs.Default
		}
	}
	db, err := pebble.Open(dir, &pebble.Options{FS: fs})
	if err != nil {
		return nil, err
	}
	return &Pebble{db: db}, nil
}

func (p *Pebble) Get(_ context.Context, symbol string) (*types.PriceRecord, error) {
	val, closer, err := p.db.Get(recordKey(symbol))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return decodeRecord(val)
}

func (p *Pebble) Put(_ context.Context, rec types.PriceRecord) error {
	if len(rec.Symbol) == 0 {
		return ErrEmptySymbol
	}
	buf, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return p.db.Set(recordKey(rec.Symbol), buf, pebble.Sync)
}

func (p *Pebble) Close() error {
	return p.db.Close()
}
