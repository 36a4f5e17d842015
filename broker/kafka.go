package broker

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Writer is the part of the kafka writer used to publish.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/writer_mock.go -package mocks code.vegaprotocol.io/stockstream/broker Writer
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SummaryEvent is the message published for each completed bulk order.
type SummaryEvent struct {
	Session       string    `json:"session"`
	TotalOrders   uint64    `json:"total_orders"`
	SuccessCount  uint64    `json:"success_count"`
	RejectedCount uint64    `json:"rejected_count"`
	// TotalAmount is null when the float total overflowed, ExactAmount
	// still carries the value.
	TotalAmount *float64  `json:"total_amount"`
	ExactAmount   string    `json:"exact_amount"`
	CompletedAt   time.Time `json:"completed_at"`
}

// KafkaPublisher sends order summaries to a kafka topic keyed by session.
type KafkaPublisher struct {
	log     *logging.Logger
	w       Writer
	timeout time.Duration
	now     func() time.Time
}

func NewKafkaPublisher(log *logging.Logger, cfg Config) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(log, cfg, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout.Get(),
	})
}

func NewKafkaPublisherWithWriter(log *logging.Logger, cfg Config, w Writer) *KafkaPublisher {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &KafkaPublisher{
		log:     log,
		w:       w,
		timeout: cfg.WriteTimeout.Get(),
		now:     time.Now,
	}
}

// PublishSummary writes one summary event, the call is bounded by the
// configured write timeout.
func (p *KafkaPublisher) PublishSummary(ctx context.Context, session string, s types.OrderSummary) error {
	var total *float64
	if !math.IsInf(s.TotalAmount, 0) && !math.IsNaN(s.TotalAmount) {
		total = &s.TotalAmount
	}
	payload, err := json.Marshal(SummaryEvent{
		Session:       session,
		TotalOrders:   s.TotalOrders,
		SuccessCount:  s.SuccessCount,
		RejectedCount: s.RejectedCount,
		TotalAmount:   total,
		ExactAmount:   s.ExactAmount.String(),
		CompletedAt:   p.now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "encoding summary event")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.w.WriteMessages(ctx, kafka.Message{Key: []byte(session), Value: payload}); err != nil {
		return errors.Wrap(err, "publishing summary event")
	}
	p.log.Debug("summary published", logging.String("session", session))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
