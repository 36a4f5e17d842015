package stocks

import (
	"context"
	"sync"

	"code.vegaprotocol.io/stockstream/types"
)

// Memory keeps the records in a map.
type Memory struct {
	mu   sync.RWMutex
	recs map[string]types.PriceRecord
}

func NewMemory() *Memory {
	return &Memory{recs: map[string]types.PriceRecord{}}
}

func (m *Memory) Get(_ context.Context, symbol string) (*types.PriceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[symbol]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *Memory) Put(_ context.Context, rec types.PriceRecord) error {
	if len(rec.Symbol) == 0 {
		return ErrEmptySymbol
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[rec.Symbol] = rec
	return nil
}

func (m *Memory) Close() error { return nil }
