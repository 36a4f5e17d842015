package prices_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/prices"
	"code.vegaprotocol.io/stockstream/prices/mocks"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscription struct {
	ch     chan types.PriceTick
	closed bool
}

func (f *fakeSubscription) Ticks() <-chan types.PriceTick { return f.ch }

func (f *fakeSubscription) Close() error {
	f.closed = true
	return nil
}

func testConfig(count uint64) prices.Config {
	cfg := prices.NewDefaultConfig()
	cfg.Level = encoding.LogLevel{Level: logging.DebugLevel}
	cfg.TickCount = count
	cfg.TickInterval = encoding.Duration{Duration: time.Millisecond}
	return cfg
}

func seeded(seed int64) prices.Option {
	return prices.WithRandSource(func() *rand.Rand {
		return rand.New(rand.NewSource(seed))
	})
}

func drain(t *testing.T, gen prices.TickGenerator) []types.PriceTick {
	t.Helper()
	var ticks []types.PriceTick
	for {
		tick, err := gen.Next(context.Background())
		if err == prices.ErrEndOfStream {
			return ticks
		}
		require.NoError(t, err)
		ticks = append(ticks, tick)
	}
}

func TestUniformGenerator(t *testing.T) {
	t.Run("yields exactly tick count ticks in range", testUniformBoundedByCount)
	t.Run("same seed gives the same prices", testUniformSeeded)
	t.Run("cancellation interrupts the pause", testUniformCancelled)
	t.Run("max duration ends the sequence", testUniformMaxDuration)
	t.Run("next after close fails", testUniformClosed)
}

func TestGenerators(t *testing.T) {
	t.Run("empty symbol is refused", testGeneratorsEmptySymbol)
	t.Run("unbounded configuration is refused", testGeneratorsUnbounded)
	t.Run("external feed requires a feed", testGeneratorsNoFeed)
	t.Run("reload only affects later generators", testGeneratorsReload)
}

func TestFeedGenerator(t *testing.T) {
	t.Run("relays feed ticks up to the bound", testFeedRelaysTicks)
	t.Run("closed feed ends the sequence", testFeedClosed)
}

func testUniformBoundedByCount(t *testing.T) {
	gens := prices.NewGenerators(logging.NewTestLogger(), testConfig(10), nil)
	gen, err := gens.NewGenerator(context.Background(), "AAPL")
	require.NoError(t, err)
	defer gen.Close()

	ticks := drain(t, gen)
	require.Len(t, ticks, 10)
	for _, tick := range ticks {
		assert.Equal(t, "AAPL", tick.Symbol)
		assert.GreaterOrEqual(t, tick.Price, 0.0)
		assert.Less(t, tick.Price, 200.0)
		assert.False(t, tick.Timestamp.IsZero())
	}

	// exhausted generators stay exhausted
	_, err = gen.Next(context.Background())
	assert.ErrorIs(t, err, prices.ErrEndOfStream)
}

func testUniformSeeded(t *testing.T) {
	cfg := testConfig(5)
	cfg.PriceRange = prices.PriceRange{Min: 100, Max: 101}

	a := prices.NewGenerators(logging.NewTestLogger(), cfg, nil, seeded(42))
	b := prices.NewGenerators(logging.NewTestLogger(), cfg, nil, seeded(42))
	genA, err := a.NewGenerator(context.Background(), "TSLA")
	require.NoError(t, err)
	genB, err := b.NewGenerator(context.Background(), "TSLA")
	require.NoError(t, err)

	ticksA, ticksB := drain(t, genA), drain(t, genB)
	require.Len(t, ticksA, 5)
	for i := range ticksA {
		assert.Equal(t, ticksA[i].Price, ticksB[i].Price)
		assert.GreaterOrEqual(t, ticksA[i].Price, 100.0)
		assert.Less(t, ticksA[i].Price, 101.0)
	}
}

func testUniformCancelled(t *testing.T) {
	cfg := testConfig(10)
	cfg.TickInterval = encoding.Duration{Duration: time.Hour}
	gens := prices.NewGenerators(logging.NewTestLogger(), cfg, nil)
	gen, err := gens.NewGenerator(context.Background(), "AAPL")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err = gen.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Minute)
}

func testUniformMaxDuration(t *testing.T) {
	cfg := testConfig(0)
	cfg.TickInterval = encoding.Duration{Duration: 10 * time.Millisecond}
	cfg.MaxDuration = encoding.Duration{Duration: 35 * time.Millisecond}
	gens := prices.NewGenerators(logging.NewTestLogger(), cfg, nil)
	gen, err := gens.NewGenerator(context.Background(), "GOOGL")
	require.NoError(t, err)

	ticks := drain(t, gen)
	assert.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 3)
}

func testUniformClosed(t *testing.T) {
	gens := prices.NewGenerators(logging.NewTestLogger(), testConfig(3), nil)
	gen, err := gens.NewGenerator(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NoError(t, gen.Close())

	_, err = gen.Next(context.Background())
	assert.ErrorIs(t, err, prices.ErrGeneratorClosed)
}

func testGeneratorsEmptySymbol(t *testing.T) {
	gens := prices.NewGenerators(logging.NewTestLogger(), testConfig(3), nil)
	_, err := gens.NewGenerator(context.Background(), "")
	assert.ErrorIs(t, err, prices.ErrEmptySymbol)
}

func testGeneratorsUnbounded(t *testing.T) {
	gens := prices.NewGenerators(logging.NewTestLogger(), testConfig(0), nil)
	_, err := gens.NewGenerator(context.Background(), "AAPL")
	assert.ErrorIs(t, err, prices.ErrUnboundedStream)
}

func testGeneratorsNoFeed(t *testing.T) {
	cfg := testConfig(3)
	cfg.PriceModel = prices.PriceModelExternalFeed
	gens := prices.NewGenerators(logging.NewTestLogger(), cfg, nil)
	_, err := gens.NewGenerator(context.Background(), "AAPL")
	assert.ErrorIs(t, err, prices.ErrNoFeed)
}

func testGeneratorsReload(t *testing.T) {
	gens := prices.NewGenerators(logging.NewTestLogger(), testConfig(2), nil)
	before, err := gens.NewGenerator(context.Background(), "AAPL")
	require.NoError(t, err)

	gens.ReloadConf(testConfig(1))
	after, err := gens.NewGenerator(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Len(t, drain(t, before), 2)
	assert.Len(t, drain(t, after), 1)
}

func newFeedGenerators(t *testing.T, count uint64, sub *fakeSubscription) (*gomock.Controller, *prices.Generators) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockFeed(ctrl)
	feed.EXPECT().Subscribe(gomock.Any(), "AAPL").Times(1).Return(sub, nil)

	cfg := testConfig(count)
	cfg.PriceModel = prices.PriceModelExternalFeed
	return ctrl, prices.NewGenerators(logging.NewTestLogger(), cfg, feed)
}

func testFeedRelaysTicks(t *testing.T) {
	sub := &fakeSubscription{ch: make(chan types.PriceTick, 5)}
	ctrl, gens := newFeedGenerators(t, 2, sub)
	defer ctrl.Finish()

	now := time.Now()
	for i := 0; i < 5; i++ {
		sub.ch <- types.PriceTick{Symbol: "AAPL", Price: float64(150 + i), Timestamp: now}
	}

	gen, err := gens.NewGenerator(context.Background(), "AAPL")
	require.NoError(t, err)
	ticks := drain(t, gen)
	require.Len(t, ticks, 2)
	assert.Equal(t, 150.0, ticks[0].Price)
	assert.Equal(t, 151.0, ticks[1].Price)

	require.NoError(t, gen.Close())
	assert.True(t, sub.closed)
}

func testFeedClosed(t *testing.T) {
	sub := &fakeSubscription{ch: make(chan types.PriceTick, 1)}
	ctrl, gens := newFeedGenerators(t, 10, sub)
	defer ctrl.Finish()

	sub.ch <- types.PriceTick{Symbol: "AAPL", Price: 150.5}
	close(sub.ch)

	gen, err := gens.NewGenerator(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Len(t, drain(t, gen), 1)
}
