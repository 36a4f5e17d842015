package feeds

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/prices"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "prices."
	keyPrefix     = "stock:"
)

// Update is the payload published on `prices.<SYM>`.
type Update struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	// Timestamp is in unix microseconds.
	Timestamp int64 `json:"timestamp"`
	// SeqID increases per symbol, updates at or below the last seen one are dropped.
	SeqID int64 `json:"seq_id,omitempty"`
}

// RedisFeed relays prices published on redis channels.
type RedisFeed struct {
	log        *logging.Logger
	client     *redis.Client
	bufferSize int
}

func NewRedisFeed(log *logging.Logger, cfg Config) *RedisFeed {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisFeedFromClient(log, cfg, client)
}

// NewRedisFeedFromClient takes ownership of the client.
func NewRedisFeedFromClient(log *logging.Logger, cfg Config, client *redis.Client) *RedisFeed {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	size := cfg.BufferSize
	if size <= 0 {
		size = 1
	}
	return &RedisFeed{
		log:        log,
		client:     client,
		bufferSize: size,
	}
}

// Ping checks the connection to redis.
func (f *RedisFeed) Ping(ctx context.Context) error {
	return f.client.Ping(ctx).Err()
}

// Subscribe listens on the channel of the symbol until the subscription is
// closed or ctx is done.
func (f *RedisFeed) Subscribe(ctx context.Context, symbol string) (prices.FeedSubscription, error) {
	ps := f.client.Subscribe(ctx, channelPrefix+symbol)
	// wait for the subscription to be confirmed so no publish is missed
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, errors.Wrapf(err, "subscribing to %s", channelPrefix+symbol)
	}

	sub := &subscription{
		log:   f.log.With(logging.String("symbol", symbol)),
		ps:    ps,
		ticks: make(chan types.PriceTick, f.bufferSize),
		done:  make(chan struct{}),
	}
	go sub.run(ctx, ps.Channel())
	return sub, nil
}

// Publish stores the latest price and notifies the subscribers of the symbol
// in one pipeline.
func (f *RedisFeed) Publish(ctx context.Context, u Update) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	ts := time.UnixMicro(u.Timestamp)
	pipe := f.client.TxPipeline()
	pipe.HSet(ctx, keyPrefix+u.Symbol,
		"price", u.Price,
		"last_updated", types.FormatTimestamp(ts),
	)
	pipe.Publish(ctx, channelPrefix+u.Symbol, payload)
	_, err = pipe.Exec(ctx)
	return err
}

func (f *RedisFeed) Close() error {
	return f.client.Close()
}

type subscription struct {
	log   *logging.Logger
	ps    *redis.PubSub
	ticks chan types.PriceTick
	done  chan struct{}
	once  sync.Once
}

func (s *subscription) Ticks() <-chan types.PriceTick {
	return s.ticks
}

func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}

func (s *subscription) run(ctx context.Context, msgs <-chan *redis.Message) {
	defer close(s.ticks)

	var lastSeq int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var u Update
			if err := json.Unmarshal([]byte(msg.Payload), &u); err != nil {
				s.log.Warn("invalid price update", logging.Error(err))
				continue
			}
			if u.SeqID > 0 {
				if u.SeqID <= lastSeq {
					s.log.Debug("skipping stale price update", logging.Int64("seq-id", u.SeqID))
					continue
				}
				lastSeq = u.SeqID
			}
			tick := types.PriceTick{
				Symbol:    u.Symbol,
				Price:     u.Price,
				Timestamp: time.UnixMicro(u.Timestamp).UTC(),
			}
			select {
			case s.ticks <- tick:
			case <-s.done:
				return
			case <-ctx.Done():
				return
			default:
				s.log.Warn("dropping price update, subscriber is slow")
			}
		}
	}
}
