package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.vegaprotocol.io/stockstream/api"
	"code.vegaprotocol.io/stockstream/broker"
	"code.vegaprotocol.io/stockstream/config"
	"code.vegaprotocol.io/stockstream/feeds"
	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/metrics"
	"code.vegaprotocol.io/stockstream/orders"
	"code.vegaprotocol.io/stockstream/prices"
	"code.vegaprotocol.io/stockstream/stocks"

	"github.com/cenkalti/backoff/v4"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	connectRetries  = 5
	metricsShutdown = 5 * time.Second
)

type nodeCmd struct {
	ctx context.Context

	config.RootPathFlag
	config.Config
}

func (cmd *nodeCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	// we define this option to parse the cli args each time the config is
	// loaded. So that we can respect the cli flag precedence.
	parseFlagOpt := func(cfg *config.Config) error {
		_, err := flags.NewParser(cfg, flags.Default|flags.IgnoreUnknown).Parse()
		return err
	}

	ctx, cancel := context.WithCancel(cmd.ctx)
	defer cancel()

	confWatcher, err := config.NewWatcher(ctx, log, cmd.RootPath, config.WithOverride(parseFlagOpt))
	if err != nil {
		return errors.Wrap(err, "could not load the configuration, run init first")
	}
	conf := confWatcher.Get()

	log = logging.NewLoggerFromConfig(conf.Logging)
	defer log.AtExit()

	n, err := newStockNode(ctx, log, conf)
	if err != nil {
		return err
	}
	defer n.close()

	confWatcher.OnConfigUpdate(n.reloadConf)

	return n.run(ctx)
}

func Node(ctx context.Context, parser *flags.Parser) error {
	cmd, err := parser.AddCommand("node", "Runs a stockstream node", "Runs a stockstream node as defined by the config file", &nodeCmd{
		ctx:          ctx,
		RootPathFlag: config.NewRootPathFlag(),
		Config:       config.NewDefaultConfig(),
	})
	if err != nil {
		return err
	}

	// Print nested groups under parent's name using `::` as the separator.
	for _, parent := range cmd.Groups() {
		for _, grp := range parent.Groups() {
			grp.ShortDescription = parent.ShortDescription + "::" + grp.ShortDescription
		}
	}
	return nil
}

// stockNode owns the services of a running node.
type stockNode struct {
	log *logging.Logger

	store      stocks.Store
	feed       *feeds.RedisFeed
	generators *prices.Generators
	orders     *orders.Svc
	publisher  *broker.KafkaPublisher
	server     *api.GRPCServer
	metrics    *http.Server
}

func newStockNode(ctx context.Context, log *logging.Logger, conf config.Config) (_ *stockNode, err error) {
	n := &stockNode{log: log}
	defer func() {
		if err != nil {
			n.close()
		}
	}()

	openStore := func() error {
		store, err := stocks.New(ctx, log, conf.Stocks)
		if err != nil {
			return err
		}
		n.store = store
		return nil
	}
	if conf.Stocks.Backend == stocks.BackendRedis {
		err = retry(ctx, log, "stock store", openStore)
	} else {
		err = openStore()
	}
	if err != nil {
		return nil, err
	}

	var feed prices.Feed
	if conf.Feeds.Enabled {
		n.feed = feeds.NewRedisFeed(log, conf.Feeds)
		if err = retry(ctx, log, "price feed", func() error { return n.feed.Ping(ctx) }); err != nil {
			return nil, errors.Wrap(err, "could not reach the price feed")
		}
		feed = n.feed
	} else if conf.Prices.PriceModel == prices.PriceModelExternalFeed {
		log.Warn("external-feed price model without an enabled feed, price subscriptions will fail")
	}

	n.generators = prices.NewGenerators(log, conf.Prices, feed)
	n.orders = orders.NewService(log, conf.Orders)

	// a nil *KafkaPublisher must not end up in the interface
	var publisher api.SummaryPublisher
	if conf.Broker.Enabled {
		n.publisher = broker.NewKafkaPublisher(log, conf.Broker)
		publisher = n.publisher
	}

	if n.metrics, err = metrics.Start(conf.Metrics); err != nil {
		return nil, err
	}

	n.server = api.NewGRPCServer(log, conf.API, n.store, n.generators, n.orders, publisher)
	return n, nil
}

func (n *stockNode) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return n.server.Start(ctx, nil)
	})

	if n.metrics != nil {
		eg.Go(func() error {
			n.log.Info("starting metrics server", logging.String("addr", n.metrics.Addr))
			if err := n.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			sctx, scancel := context.WithTimeout(context.Background(), metricsShutdown)
			defer scancel()
			return metrics.Shutdown(sctx, n.metrics)
		})
	}

	eg.Go(func() error {
		waitSig(ctx, n.log)
		cancel()
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	n.log.Info("stockstream node stopped")
	return nil
}

func (n *stockNode) reloadConf(cfg config.Config) {
	if lvl, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		n.log.SetLevel(lvl)
	}
	n.server.ReloadConf(cfg.API)
	n.generators.ReloadConf(cfg.Prices)
	n.orders.ReloadConf(cfg.Orders)
}

func (n *stockNode) close() {
	if n.publisher != nil {
		if err := n.publisher.Close(); err != nil {
			n.log.Error("unable to close the summary publisher", logging.Error(err))
		}
	}
	if n.feed != nil {
		if err := n.feed.Close(); err != nil {
			n.log.Error("unable to close the price feed", logging.Error(err))
		}
	}
	if n.store != nil {
		if err := n.store.Close(); err != nil {
			n.log.Error("unable to close the stock store", logging.Error(err))
		}
	}
}

func retry(ctx context.Context, log *logging.Logger, what string, op func() error) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectRetries), ctx)
	return backoff.RetryNotify(op, b, func(err error, next time.Duration) {
		log.Warn("connection attempt failed",
			logging.String("dependency", what),
			logging.Error(err),
			logging.Duration("retry-in", next),
		)
	})
}

// waitSig will wait for a sigterm or sigint interrupt.
func waitSig(ctx context.Context, log *logging.Logger) {
	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(gracefulStop)

	select {
	case sig := <-gracefulStop:
		log.Info("Caught signal", logging.String("name", fmt.Sprintf("%+v", sig)))
	case <-ctx.Done():
	}
}
