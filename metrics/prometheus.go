package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stockstream"

// collectors are the instruments of the service, nil until registered.
type collectors struct {
	activeStreams       *prometheus.GaugeVec
	ticksSent           *prometheus.CounterVec
	ordersReceived      *prometheus.CounterVec
	orderSummaries      *prometheus.CounterVec
	grpcRequests        *prometheus.CounterVec
	grpcRequestDuration *prometheus.HistogramVec
}

var (
	current atomic.Pointer[collectors]

	setupOnce sync.Once
	setupErr  error
)

func newCollectors() *collectors {
	return &collectors{
		activeStreams: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_streams",
			Help:      "Number of streaming calls currently open",
		}, []string{"type"}),
		ticksSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_sent_total",
			Help:      "Number of price ticks written to subscribers",
		}, []string{"model"}),
		ordersReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_received_total",
			Help:      "Number of orders folded into bulk summaries",
		}, []string{"result"}),
		orderSummaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_summaries_total",
			Help:      "Number of bulk order calls by outcome",
		}, []string{"outcome"}),
		grpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Count of gRPC calls",
		}, []string{"method", "code"}),
		grpcRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "Time spent in each gRPC call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Register creates the instruments on reg and routes the helpers of this
// package to them.
func Register(reg prometheus.Registerer) error {
	c := newCollectors()
	for _, col := range []prometheus.Collector{
		c.activeStreams,
		c.ticksSent,
		c.ordersReceived,
		c.orderSummaries,
		c.grpcRequests,
		c.grpcRequestDuration,
	} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	current.Store(c)
	return nil
}

// Setup registers the service instruments on the default registerer once,
// later calls return the outcome of the first one.
func Setup() error {
	setupOnce.Do(func() {
		setupErr = Register(prometheus.DefaultRegisterer)
	})
	return setupErr
}

// Start enable metrics (given config). The returned server is nil when
// metrics are disabled.
func Start(conf Config) (*http.Server, error) {
	if !conf.Enabled {
		return nil, nil
	}
	if err := Setup(); err != nil {
		return nil, errors.Wrap(err, "could not set up metrics")
	}
	mux := http.NewServeMux()
	mux.Handle(conf.Path, promhttp.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, nil
}

// Shutdown stops a server returned by Start, nil is allowed.
func Shutdown(ctx context.Context, srv *http.Server) error {
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// StartActiveStream increments the active stream gauge, the returned func
// decrements it.
func StartActiveStream(streamType string) func() {
	c := current.Load()
	if c == nil {
		return func() {}
	}
	g := c.activeStreams.WithLabelValues(streamType)
	g.Inc()
	return g.Dec
}

// TickSentInc counts one tick written to a subscriber.
func TickSentInc(model string) {
	if c := current.Load(); c != nil {
		c.ticksSent.WithLabelValues(model).Inc()
	}
}

// OrderReceivedInc counts one order, result is accepted or rejected.
func OrderReceivedInc(result string) {
	if c := current.Load(); c != nil {
		c.ordersReceived.WithLabelValues(result).Inc()
	}
}

// OrderSummaryInc counts one finished bulk order call.
func OrderSummaryInc(outcome string) {
	if c := current.Load(); c != nil {
		c.orderSummaries.WithLabelValues(outcome).Inc()
	}
}

// StartAPIRequestAndTimeGRPC updates the metrics for GRPC API calls, the
// returned func is called with the status code once the call is done.
func StartAPIRequestAndTimeGRPC(method string) func(code string) {
	startTime := time.Now()
	return func(code string) {
		c := current.Load()
		if c == nil {
			return
		}
		c.grpcRequests.WithLabelValues(method, code).Inc()
		c.grpcRequestDuration.WithLabelValues(method).Observe(time.Since(startTime).Seconds())
	}
}
