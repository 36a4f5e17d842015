// Package client is a thin caller of the stock trading service.
package client

import (
	"context"
	"io"

	"code.vegaprotocol.io/stockstream/logging"
	stockpb "code.vegaprotocol.io/stockstream/protos/stock/v1"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type StockClient struct {
	log     *logging.Logger
	conf    Config
	conn    *grpc.ClientConn
	service stockpb.StockTradingServiceClient
}

// Dial connects lazily to the configured address.
func Dial(log *logging.Logger, cfg Config, opts ...grpc.DialOption) (*StockClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", cfg.Address)
	}
	c := New(log, cfg, stockpb.NewStockTradingServiceClient(conn))
	c.conn = conn
	return c, nil
}

func New(log *logging.Logger, cfg Config, service stockpb.StockTradingServiceClient) *StockClient {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &StockClient{
		log:     log,
		conf:    cfg,
		service: service,
	}
}

func (c *StockClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// GetPrice returns the stored price of the symbol.
func (c *StockClient) GetPrice(ctx context.Context, symbol string) (*stockpb.StockResponse, error) {
	if timeout := c.conf.Timeout.Get(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return c.service.GetStockPrice(ctx, &stockpb.StockRequest{StockSymbol: symbol})
}

// SubscribePrice calls onTick for each update until the server completes
// the stream. An error from onTick cancels the subscription. It returns the
// number of updates received.
func (c *StockClient) SubscribePrice(ctx context.Context, symbol string, onTick func(types.PriceTick) error) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.service.SubscribeStockPrice(ctx, &stockpb.StockRequest{StockSymbol: symbol})
	if err != nil {
		return 0, err
	}

	var received int
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			c.log.Debug("price stream completed", logging.String("symbol", symbol), logging.Int("received", received))
			return received, nil
		}
		if err != nil {
			return received, err
		}
		tick, err := types.PriceTickFromProto(msg)
		if err != nil {
			return received, errors.Wrap(err, "invalid price update")
		}
		received++
		if err := onTick(tick); err != nil {
			return received, err
		}
	}
}

// SendBulkOrders streams the orders in order and returns the summary the
// server answers with once the stream is closed.
func (c *StockClient) SendBulkOrders(ctx context.Context, orders []*types.Order) (*types.OrderSummary, error) {
	stream, err := c.service.PlaceBulkOrder(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if err := stream.Send(o.IntoProto()); err != nil {
			// the status is only known once the stream is closed
			if err == io.EOF {
				_, err = stream.CloseAndRecv()
			}
			return nil, errors.Wrapf(err, "sending order %s", o.OrderID)
		}
	}
	resp, err := stream.CloseAndRecv()
	if err != nil {
		return nil, err
	}
	return types.OrderSummaryFromProto(resp)
}

// SampleOrders is the default upload of the bulk order command.
func SampleOrders() []*types.Order {
	return []*types.Order{
		{OrderID: "1", Symbol: "AAPL", Side: types.SideBuy, Price: 150.5, Quantity: 10},
		{OrderID: "2", Symbol: "GOOGL", Side: types.SideSell, Price: 2700.0, Quantity: 5},
		{OrderID: "3", Symbol: "TSLA", Side: types.SideBuy, Price: 700.0, Quantity: 8},
	}
}
