package prices

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
)

var (
	// ErrEndOfStream is returned by Next once the generator is exhausted.
	ErrEndOfStream = errors.New("end of price stream")
	// ErrEmptySymbol signals a subscription without a stock symbol.
	ErrEmptySymbol = errors.New("empty stock symbol")
	// ErrUnboundedStream signals a configuration where neither a tick count nor a max duration is set.
	ErrUnboundedStream = errors.New("price stream has no tick count nor max duration")
	// ErrNoFeed signals the external-feed model is used without a feed.
	ErrNoFeed = errors.New("no price feed configured")
	// ErrGeneratorClosed is returned by Next after Close.
	ErrGeneratorClosed = errors.New("price generator closed")
)

// TickGenerator yields a bounded, paced sequence of ticks for one symbol.
// A generator is owned by a single call and cannot be restarted.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/tick_generator_mock.go -package mocks code.vegaprotocol.io/stockstream/prices TickGenerator
type TickGenerator interface {
	Next(ctx context.Context) (types.PriceTick, error)
	Close() error
}

// Feed provides live prices per symbol.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/feed_mock.go -package mocks code.vegaprotocol.io/stockstream/prices Feed
type Feed interface {
	Subscribe(ctx context.Context, symbol string) (FeedSubscription, error)
}

// FeedSubscription is closed by the subscriber, Ticks is closed once the
// subscription ends.
type FeedSubscription interface {
	Ticks() <-chan types.PriceTick
	Close() error
}

// pacer bounds a sequence by count and duration and waits before each tick.
type pacer struct {
	count    uint64
	maxDur   time.Duration
	interval time.Duration
	now      func() time.Time

	started time.Time
	emitted uint64
}

func newPacer(cfg Config, now func() time.Time) *pacer {
	return &pacer{
		count:    cfg.TickCount,
		maxDur:   cfg.MaxDuration.Get(),
		interval: cfg.TickInterval.Get(),
		now:      now,
		started:  now(),
	}
}

func (p *pacer) exhausted() bool {
	if p.count > 0 && p.emitted >= p.count {
		return true
	}
	return p.maxDur > 0 && p.now().Sub(p.started) >= p.maxDur
}

// remaining is the time left before the max duration, ok is false when
// the sequence has no duration bound.
func (p *pacer) remaining() (d time.Duration, ok bool) {
	if p.maxDur <= 0 {
		return 0, false
	}
	return p.maxDur - p.now().Sub(p.started), true
}

// wait blocks for one interval, it returns ErrEndOfStream when the sequence
// is exhausted before or after the pause.
func (p *pacer) wait(ctx context.Context) error {
	if p.exhausted() {
		return ErrEndOfStream
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := time.NewTimer(p.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	if p.maxDur > 0 && p.now().Sub(p.started) >= p.maxDur {
		return ErrEndOfStream
	}
	return nil
}

// Option customises the generators built by Generators.
type Option func(*Generators)

// WithRandSource sets the source of randomness for each uniform generator.
func WithRandSource(f func() *rand.Rand) Option {
	return func(g *Generators) {
		g.newRand = f
	}
}

// WithClock sets the time source used for timestamps and max duration.
func WithClock(now func() time.Time) Option {
	return func(g *Generators) {
		g.now = now
	}
}

// Generators builds a fresh generator per subscription from the current
// configuration.
type Generators struct {
	log  *logging.Logger
	feed Feed

	newRand func() *rand.Rand
	now     func() time.Time

	mu  sync.RWMutex
	cfg Config
}

// NewGenerators returns a factory of tick generators, feed may be nil when
// the external-feed model is not used.
func NewGenerators(log *logging.Logger, cfg Config, feed Feed, opts ...Option) *Generators {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	g := &Generators{
		log:  log,
		feed: feed,
		cfg:  cfg,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// ReloadConf updates the configuration, only subscriptions started after
// the reload see the change.
func (g *Generators) ReloadConf(cfg Config) {
	g.log.Info("reloading configuration")
	if g.log.GetLevel() != cfg.Level.Get() {
		g.log.Info("updating log level",
			logging.String("old", g.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		g.log.SetLevel(cfg.Level.Get())
	}

	g.mu.Lock()
	g.cfg = cfg
	g.mu.Unlock()
}

func (g *Generators) config() Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg
}

// Model is the price model new generators are built with.
func (g *Generators) Model() PriceModel {
	return g.config().PriceModel
}

// NewGenerator builds the generator of one subscription.
func (g *Generators) NewGenerator(ctx context.Context, symbol string) (TickGenerator, error) {
	if len(symbol) == 0 {
		return nil, ErrEmptySymbol
	}
	cfg := g.config()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	switch cfg.PriceModel {
	case PriceModelUniform, "":
		return newUniformGenerator(symbol, cfg, g.newRand(), g.now), nil
	case PriceModelExternalFeed:
		if g.feed == nil {
			return nil, ErrNoFeed
		}
		sub, err := g.feed.Subscribe(ctx, symbol)
		if err != nil {
			return nil, errors.Wrapf(err, "subscribing to feed for %s", symbol)
		}
		return newFeedGenerator(cfg, sub, g.now), nil
	default:
		return nil, errors.Errorf("unknown price model %q", cfg.PriceModel)
	}
}
