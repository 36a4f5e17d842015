package prices

import (
	"context"
	"time"

	"code.vegaprotocol.io/stockstream/types"
)

// feedGenerator relays the feed at most once per tick interval, keeping the
// same bounds as the synthetic generator.
type feedGenerator struct {
	sub    FeedSubscription
	pace   *pacer
	closed bool
}

func newFeedGenerator(cfg Config, sub FeedSubscription, now func() time.Time) *feedGenerator {
	return &feedGenerator{
		sub:  sub,
		pace: newPacer(cfg, now),
	}
}

func (f *feedGenerator) Next(ctx context.Context) (types.PriceTick, error) {
	if f.closed {
		return types.PriceTick{}, ErrGeneratorClosed
	}
	if err := f.pace.wait(ctx); err != nil {
		return types.PriceTick{}, err
	}
	var expired <-chan time.Time
	if rem, ok := f.pace.remaining(); ok {
		timer := time.NewTimer(rem)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case <-ctx.Done():
		return types.PriceTick{}, ctx.Err()
	case <-expired:
		return types.PriceTick{}, ErrEndOfStream
	case tick, ok := <-f.sub.Ticks():
		if !ok {
			return types.PriceTick{}, ErrEndOfStream
		}
		f.pace.emitted++
		return tick, nil
	}
}

func (f *feedGenerator) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.sub.Close()
}
