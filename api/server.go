package api

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/metrics"
	"code.vegaprotocol.io/stockstream/prices"
	stockpb "code.vegaprotocol.io/stockstream/protos/stock/v1"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// GRPCServer represent the grpc api provided by the stock node.
type GRPCServer struct {
	log *logging.Logger
	srv *grpc.Server

	mu   sync.RWMutex
	conf Config

	trading *tradingService

	// used in order to gracefully close streams
	ctx   context.Context
	cfunc context.CancelFunc
}

// NewGRPCServer create a new instance of the GPRC api, publisher may be nil.
func NewGRPCServer(
	log *logging.Logger,
	config Config,
	store StockStore,
	generators prices.GeneratorFactory,
	orderSessions OrderSessions,
	publisher SummaryPublisher,
) *GRPCServer {
	// setup logger
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())
	ctx, cfunc := context.WithCancel(context.Background())

	g := &GRPCServer{
		log:   log,
		conf:  config,
		ctx:   ctx,
		cfunc: cfunc,
	}
	g.trading = &tradingService{
		log:        log,
		conf:       g.config,
		store:      store,
		generators: generators,
		orders:     orderSessions,
		publisher:  publisher,
		shutdown:   ctx,
	}
	return g
}

func (g *GRPCServer) config() Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.conf
}

// ReloadConf update the internal configuration of the GRPC server.
func (g *GRPCServer) ReloadConf(cfg Config) {
	g.log.Info("reloading configuration")
	if g.log.GetLevel() != cfg.Level.Get() {
		g.log.Info("updating log level",
			logging.String("old", g.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		g.log.SetLevel(cfg.Level.Get())
	}

	// the listener is not moved, only per call settings apply
	g.mu.Lock()
	g.conf = cfg
	g.mu.Unlock()
}

func remoteAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p != nil && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

func unaryInterceptor(log *logging.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		done := metrics.StartAPIRequestAndTimeGRPC(info.FullMethod)
		resp, err := handler(ctx, req)
		done(status.Code(err).String())

		log.Debug("Invoked RPC call",
			logging.String("method", info.FullMethod),
			logging.String("remote-ip-addr", remoteAddr(ctx)),
			logging.Error(err),
		)
		return resp, err
	}
}

func streamInterceptor(log *logging.Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		log.Debug("Stream opened",
			logging.String("method", info.FullMethod),
			logging.String("remote-ip-addr", remoteAddr(ss.Context())),
		)
		done := metrics.StartAPIRequestAndTimeGRPC(info.FullMethod)
		err := handler(srv, ss)
		done(status.Code(err).String())

		log.Debug("Stream closed",
			logging.String("method", info.FullMethod),
			logging.Error(err),
		)
		return err
	}
}

func (g *GRPCServer) getTCPListener() (net.Listener, error) {
	conf := g.config()
	ip := conf.IP
	port := strconv.Itoa(conf.Port)

	g.log.Info("Starting gRPC based API", logging.String("addr", ip), logging.String("port", port))

	tpcLis, err := net.Listen("tcp", net.JoinHostPort(ip, port))
	if err != nil {
		return nil, err
	}

	return tpcLis, nil
}

// Start start the grpc server.
// Uses default TCP listener if no provided.
func (g *GRPCServer) Start(ctx context.Context, lis net.Listener) error {
	if lis == nil {
		tpcLis, err := g.getTCPListener()
		if err != nil {
			return err
		}

		lis = tpcLis
	}

	conf := g.config()
	g.srv = grpc.NewServer(
		grpc.ForceServerCodec(stockpb.Codec{}),
		grpc.MaxRecvMsgSize(conf.MaxRecvBytes),
		grpc.UnaryInterceptor(unaryInterceptor(g.log)),
		grpc.StreamInterceptor(streamInterceptor(g.log)),
	)
	stockpb.RegisterStockTradingServiceServer(g.srv, g.trading)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()
		g.stop()
		return ctx.Err()
	})

	eg.Go(func() error {
		return g.srv.Serve(lis)
	})

	return eg.Wait()
}

func (g *GRPCServer) stop() {
	if g.srv == nil {
		return
	}

	// ends the open streams, their clients get an unavailable status
	g.cfunc()

	done := make(chan struct{})
	go func() {
		g.log.Info("Gracefully stopping gRPC based API")
		g.srv.GracefulStop()
		g.trading.publishing.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(g.config().StopTimeout.Get()):
		g.log.Info("Force stopping gRPC based API")
		g.srv.Stop()
	}
}
