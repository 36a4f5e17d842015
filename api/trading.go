package api

import (
	"context"
	"fmt"
	"sync"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/metrics"
	"code.vegaprotocol.io/stockstream/orders"
	"code.vegaprotocol.io/stockstream/prices"
	stockpb "code.vegaprotocol.io/stockstream/protos/stock/v1"
	"code.vegaprotocol.io/stockstream/stocks"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
)

// StockStore is the read side of the stock price store.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/stock_store_mock.go -package mocks code.vegaprotocol.io/stockstream/api StockStore
type StockStore interface {
	Get(ctx context.Context, symbol string) (*types.PriceRecord, error)
}

// SummaryPublisher receives every completed bulk order summary.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/summary_publisher_mock.go -package mocks code.vegaprotocol.io/stockstream/api SummaryPublisher
type SummaryPublisher interface {
	PublishSummary(ctx context.Context, session string, s types.OrderSummary) error
}

// OrderSessions hands out one bulk order session per call.
type OrderSessions interface {
	NewSession(stream orders.Stream) *orders.BulkOrderSession
}

type tradingService struct {
	stockpb.UnimplementedStockTradingServiceServer

	log        *logging.Logger
	conf       func() Config
	store      StockStore
	generators prices.GeneratorFactory
	orders     OrderSessions
	publisher  SummaryPublisher

	// closed when the server stops so open streams end
	shutdown context.Context
	// in flight summary publications
	publishing sync.WaitGroup
}

func (t *tradingService) GetStockPrice(ctx context.Context, req *stockpb.StockRequest) (*stockpb.StockResponse, error) {
	symbol := req.GetStockSymbol()
	if len(symbol) == 0 {
		return nil, apiError(codes.InvalidArgument, ErrEmptyMissingSymbol)
	}
	if timeout := t.conf().Timeout.Get(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	rec, err := t.store.Get(ctx, symbol)
	if err != nil {
		if errors.Is(err, stocks.ErrNotFound) {
			return nil, apiErrorWithMessage(codes.NotFound,
				fmt.Sprintf("Stock %s is not available in system", symbol),
				ErrStockNotFound, err)
		}
		t.log.Error("unable to read stock price", logging.String("symbol", symbol), logging.Error(err))
		return nil, apiError(codes.Internal, ErrStockStore, err)
	}
	return rec.IntoProto(), nil
}

func (t *tradingService) SubscribeStockPrice(req *stockpb.StockRequest, srv stockpb.StockTradingService_SubscribeStockPriceServer) error {
	defer metrics.StartActiveStream("price")()

	ctx, cancel := context.WithCancel(srv.Context())
	defer cancel()
	stop := context.AfterFunc(t.shutdown, cancel)
	defer stop()

	sess := prices.NewPriceStreamSession(t.log, t.generators, &priceSender{srv: srv}, req.GetStockSymbol())
	if err := sess.Run(ctx); err != nil {
		if t.shutdown.Err() != nil {
			return apiError(codes.Unavailable, ErrServerShutdown, err)
		}
		return streamError(err)
	}
	return nil
}

func (t *tradingService) PlaceBulkOrder(srv stockpb.StockTradingService_PlaceBulkOrderServer) error {
	defer metrics.StartActiveStream("orders")()

	ctx, cancel := context.WithCancel(srv.Context())
	defer cancel()
	stop := context.AfterFunc(t.shutdown, cancel)
	defer stop()

	sess := t.orders.NewSession(&orderStream{srv: srv})
	summary, err := sess.Run(ctx)
	if err != nil {
		// the partial summary is the answer, a failing status would hide it
		if sess.SentPartial() {
			return nil
		}
		if t.shutdown.Err() != nil {
			return apiError(codes.Unavailable, ErrServerShutdown, err)
		}
		return streamError(err)
	}

	if t.publisher != nil {
		t.publishing.Add(1)
		go func() {
			defer t.publishing.Done()
			if err := t.publisher.PublishSummary(context.WithoutCancel(ctx), sess.Ref(), summary); err != nil {
				t.log.Error("unable to publish order summary",
					logging.String("session", sess.Ref()),
					logging.Error(err),
				)
			}
		}()
	}
	return nil
}

type priceSender struct {
	srv stockpb.StockTradingService_SubscribeStockPriceServer
}

func (p *priceSender) Send(tick types.PriceTick) error {
	return p.srv.Send(tick.IntoProto())
}

type orderStream struct {
	srv stockpb.StockTradingService_PlaceBulkOrderServer
}

func (o *orderStream) Recv() (*types.Order, error) {
	msg, err := o.srv.Recv()
	if err != nil {
		return nil, err
	}
	return types.NewOrderFromProto(msg), nil
}

func (o *orderStream) SendAndClose(s *types.OrderSummary) error {
	return o.srv.SendAndClose(s.IntoProto())
}
