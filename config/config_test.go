package config_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"code.vegaprotocol.io/stockstream/config"
	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/prices"
	"code.vegaprotocol.io/stockstream/stocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults match the documented values", testDefaults)
	t.Run("saved configuration reads back", testSaveRead)
	t.Run("save does not overwrite without force", testSaveNoOverwrite)
	t.Run("partial file keeps the other defaults", testPartialFile)
}

func TestWatcher(t *testing.T) {
	t.Run("listeners get the updated configuration", testWatcherReload)
	t.Run("override is applied after every load", testWatcherOverride)
}

func testDefaults(t *testing.T) {
	cfg := config.NewDefaultConfig()
	assert.Equal(t, uint64(10), cfg.Prices.TickCount)
	assert.Equal(t, time.Second, cfg.Prices.TickInterval.Get())
	assert.Equal(t, prices.PriceRange{Min: 0, Max: 200}, cfg.Prices.PriceRange)
	assert.Equal(t, prices.PriceModelUniform, cfg.Prices.PriceModel)
	assert.Equal(t, time.Duration(0), cfg.Prices.MaxDuration.Get())
	assert.Equal(t, stocks.BackendMemory, cfg.Stocks.Backend)
	assert.False(t, bool(cfg.Orders.RejectInvalid))
	assert.False(t, bool(cfg.Orders.PartialSummaryOnError))
}

func testSaveRead(t *testing.T) {
	root := t.TempDir()
	cfg := config.NewDefaultConfig()
	cfg.Prices.TickCount = 3
	cfg.Prices.PriceModel = prices.PriceModelExternalFeed
	cfg.Stocks.Backend = stocks.BackendPebble
	require.NoError(t, config.Save(root, cfg, false))

	got, err := config.Read(root)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got.Prices.TickCount)
	assert.Equal(t, prices.PriceModelExternalFeed, got.Prices.PriceModel)
	assert.Equal(t, stocks.BackendPebble, got.Stocks.Backend)
	assert.Equal(t, time.Second, got.Prices.TickInterval.Get())
	require.Len(t, got.Stocks.Seed, 3)
	assert.Equal(t, "AAPL", got.Stocks.Seed[0].Symbol)
	assert.Nil(t, got.Stocks.Seed[0].LastUpdated)
}

func testSaveNoOverwrite(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, config.Save(root, config.NewDefaultConfig(), false))
	assert.ErrorIs(t, config.Save(root, config.NewDefaultConfig(), false), config.ErrConfigExists)
	assert.NoError(t, config.Save(root, config.NewDefaultConfig(), true))
}

func testPartialFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[Prices]\nTickInterval = \"250ms\"\n")

	got, err := config.Read(root)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, got.Prices.TickInterval.Get())
	assert.Equal(t, uint64(10), got.Prices.TickCount)
}

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(content), 0o600))
}

func testWatcherReload(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[Prices]\nTickCount = 5\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := config.NewWatcher(ctx, logging.NewTestLogger(), root)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), w.Get().Prices.TickCount)

	var mu sync.Mutex
	var seen []uint64
	w.OnConfigUpdate(func(cfg config.Config) {
		mu.Lock()
		seen = append(seen, cfg.Prices.TickCount)
		mu.Unlock()
	})

	writeConfig(t, root, "[Prices]\nTickCount = 7\n")
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0 && seen[len(seen)-1] == 7
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, uint64(7), w.Get().Prices.TickCount)
}

func testWatcherOverride(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[Prices]\nTickCount = 5\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := config.NewWatcher(ctx, logging.NewTestLogger(), root, config.WithOverride(func(cfg *config.Config) error {
		cfg.Prices.TickCount = 1
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), w.Get().Prices.TickCount)
}
