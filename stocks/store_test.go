package stocks_test

import (
	"context"
	"testing"
	"time"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/stocks"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T) stocks.Store
}

var backends = []backend{
	{"memory", func(t *testing.T) stocks.Store { return stocks.NewMemory() }},
	{"badger", func(t *testing.T) stocks.Store {
		s, err := stocks.NewBadger(logging.NewTestLogger(), "")
		require.NoError(t, err)
		return s
	}},
	{"pebble", func(t *testing.T) stocks.Store {
		s, err := stocks.NewPebble("", vfs.NewMem())
		require.NoError(t, err)
		return s
	}},
	{"redis", func(t *testing.T) stocks.Store {
		mr := miniredis.RunT(t)
		return stocks.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	}},
}

func TestStores(t *testing.T) {
	for _, b := range backends {
		b := b
		t.Run(b.name+" - missing symbol is not found", func(t *testing.T) { testNotFound(t, b) })
		t.Run(b.name+" - put then get", func(t *testing.T) { testPutGet(t, b) })
		t.Run(b.name+" - record without update time", func(t *testing.T) { testNoTimestamp(t, b) })
		t.Run(b.name+" - empty symbol is refused", func(t *testing.T) { testEmptySymbol(t, b) })
	}
}

func testNotFound(t *testing.T, b backend) {
	s := b.open(t)
	defer s.Close()

	_, err := s.Get(context.Background(), "NOPE")
	assert.ErrorIs(t, err, stocks.ErrNotFound)
}

func testPutGet(t *testing.T, b backend) {
	s := b.open(t)
	defer s.Close()

	at := time.Date(2024, 5, 1, 9, 30, 0, 123000000, time.UTC)
	require.NoError(t, s.Put(context.Background(), types.PriceRecord{Symbol: "AAPL", Price: 150.5, LastUpdated: &at}))

	rec, err := s.Get(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", rec.Symbol)
	assert.Equal(t, 150.5, rec.Price)
	require.NotNil(t, rec.LastUpdated)
	assert.True(t, at.Equal(*rec.LastUpdated))

	require.NoError(t, s.Put(context.Background(), types.PriceRecord{Symbol: "AAPL", Price: 151}))
	rec, err = s.Get(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 151.0, rec.Price)
	assert.Nil(t, rec.LastUpdated)
}

func testNoTimestamp(t *testing.T, b backend) {
	s := b.open(t)
	defer s.Close()

	require.NoError(t, stocks.Seed(context.Background(), s, stocks.NewDefaultConfig().Seed))
	rec, err := s.Get(context.Background(), "GOOGL")
	require.NoError(t, err)
	assert.Equal(t, 2700.0, rec.Price)
	assert.Equal(t, types.TimestampNotAvailable, rec.IntoProto().Timestamp)
}

func testEmptySymbol(t *testing.T, b backend) {
	s := b.open(t)
	defer s.Close()

	assert.ErrorIs(t, s.Put(context.Background(), types.PriceRecord{Price: 1}), stocks.ErrEmptySymbol)
}

func TestNew(t *testing.T) {
	t.Run("default config seeds the memory store", testNewDefault)
	t.Run("redis backend reads the configured address", testNewRedis)
	t.Run("unknown backend fails", testNewUnknown)
}

func testNewDefault(t *testing.T) {
	s, err := stocks.New(context.Background(), logging.NewTestLogger(), stocks.NewDefaultConfig())
	require.NoError(t, err)
	defer s.Close()

	for sym, price := range map[string]float64{"AAPL": 150.5, "GOOGL": 2700.0, "TSLA": 700.0} {
		rec, err := s.Get(context.Background(), sym)
		require.NoError(t, err)
		assert.Equal(t, price, rec.Price)
	}
}

func testNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := stocks.NewDefaultConfig()
	cfg.Backend = stocks.BackendRedis
	cfg.Redis.Address = mr.Addr()

	s, err := stocks.New(context.Background(), logging.NewTestLogger(), cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "700", mr.HGet("stock:TSLA", "price"))
}

func testNewUnknown(t *testing.T) {
	cfg := stocks.NewDefaultConfig()
	cfg.Backend = "floppy"
	_, err := stocks.New(context.Background(), logging.NewTestLogger(), cfg)
	assert.Error(t, err)

	var b stocks.Backend
	assert.Error(t, b.UnmarshalText([]byte("floppy")))
	assert.NoError(t, b.UnmarshalText([]byte("pebble")))
	assert.Equal(t, stocks.BackendPebble, b)
}
