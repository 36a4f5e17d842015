package client_test

import (
	"context"
	"net"
	"testing"
	"time"

	"code.vegaprotocol.io/stockstream/api"
	"code.vegaprotocol.io/stockstream/client"
	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/orders"
	"code.vegaprotocol.io/stockstream/prices"
	"code.vegaprotocol.io/stockstream/stocks"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func getTestClient(t *testing.T) *client.StockClient {
	log := logging.NewTestLogger()
	store, err := stocks.New(context.Background(), log, stocks.NewDefaultConfig())
	require.NoError(t, err)

	pcfg := prices.NewDefaultConfig()
	pcfg.TickInterval = encoding.Duration{Duration: time.Millisecond}
	srv := api.NewGRPCServer(log, api.NewDefaultConfig(), store,
		prices.NewGenerators(log, pcfg, nil),
		orders.NewService(log, orders.NewDefaultConfig()),
		nil,
	)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx, lis) }()

	cfg := client.NewDefaultConfig()
	cfg.Address = "passthrough:///bufnet"
	c, err := client.Dial(log, cfg, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)

	t.Cleanup(func() {
		c.Close()
		cancel()
		<-done
		store.Close()
	})
	return c
}

func TestStockClient(t *testing.T) {
	t.Run("get price of a seeded stock", testGetPrice)
	t.Run("get price of an unknown stock", testGetPriceNotFound)
	t.Run("subscription delivers ten updates", testSubscribePrice)
	t.Run("callback error stops the subscription", testSubscribeCallbackError)
	t.Run("sample bulk order totals 20605", testSendBulkOrders)
}

func testGetPrice(t *testing.T) {
	c := getTestClient(t)
	resp, err := c.GetPrice(context.Background(), "GOOGL")
	require.NoError(t, err)
	assert.Equal(t, 2700.0, resp.Price)
	assert.Equal(t, types.TimestampNotAvailable, resp.Timestamp)
}

func testGetPriceNotFound(t *testing.T) {
	c := getTestClient(t)
	_, err := c.GetPrice(context.Background(), "MSFT")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func testSubscribePrice(t *testing.T) {
	c := getTestClient(t)
	var ticks []types.PriceTick
	n, err := c.SubscribePrice(context.Background(), "TSLA", func(tick types.PriceTick) error {
		ticks = append(ticks, tick)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	require.Len(t, ticks, 10)
	assert.Equal(t, "TSLA", ticks[9].Symbol)
}

func testSubscribeCallbackError(t *testing.T) {
	c := getTestClient(t)
	stopErr := errors.New("enough")
	n, err := c.SubscribePrice(context.Background(), "AAPL", func(types.PriceTick) error {
		return stopErr
	})
	assert.Equal(t, stopErr, err)
	assert.Equal(t, 1, n)
}

func testSendBulkOrders(t *testing.T) {
	c := getTestClient(t)
	summary, err := c.SendBulkOrders(context.Background(), client.SampleOrders())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), summary.TotalOrders)
	assert.Equal(t, uint64(3), summary.SuccessCount)
	assert.Equal(t, 20605.0, summary.TotalAmount)
	assert.Equal(t, "20605", summary.ExactAmount.String())
}
