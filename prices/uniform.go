package prices

import (
	"context"
	"math/rand"
	"time"

	"code.vegaprotocol.io/stockstream/types"
)

type uniformGenerator struct {
	symbol   string
	min, max float64
	rnd      *rand.Rand
	pace     *pacer
	now      func() time.Time
	closed   bool
}

func newUniformGenerator(symbol string, cfg Config, rnd *rand.Rand, now func() time.Time) *uniformGenerator {
	return &uniformGenerator{
		symbol: symbol,
		min:    cfg.PriceRange.Min,
		max:    cfg.PriceRange.Max,
		rnd:    rnd,
		pace:   newPacer(cfg, now),
		now:    now,
	}
}

func (u *uniformGenerator) Next(ctx context.Context) (types.PriceTick, error) {
	if u.closed {
		return types.PriceTick{}, ErrGeneratorClosed
	}
	if err := u.pace.wait(ctx); err != nil {
		return types.PriceTick{}, err
	}
	u.pace.emitted++
	return types.PriceTick{
		Symbol:    u.symbol,
		Price:     u.min + u.rnd.Float64()*(u.max-u.min),
		Timestamp: u.now(),
	}, nil
}

func (u *uniformGenerator) Close() error {
	u.closed = true
	return nil
}
