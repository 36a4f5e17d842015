package stocks

import (
	"context"
	"strconv"
	"time"

	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "stock:"

	fieldPrice       = "price"
	fieldLastUpdated = "last_updated"
)

// Redis keeps every record in a `stock:<SYM>` hash.
type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Address,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout.Get(),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return NewRedisFromClient(client), nil
}

// NewRedisFromClient takes ownership of the client.
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, symbol string) (*types.PriceRecord, error) {
	fields, err := r.client.HGetAll(ctx, keyPrefix+symbol).Result()
	if err != nil {
		return nil, err
	}
	raw, ok := fields[fieldPrice]
	if !ok {
		return nil, ErrNotFound
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid price for %s", symbol)
	}
	rec := &types.PriceRecord{Symbol: symbol, Price: price}
	if ts, ok := fields[fieldLastUpdated]; ok && len(ts) > 0 {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid update time for %s", symbol)
		}
		rec.LastUpdated = &t
	}
	return rec, nil
}

func (r *Redis) Put(ctx context.Context, rec types.PriceRecord) error {
	if len(rec.Symbol) == 0 {
		return ErrEmptySymbol
	}
	key := keyPrefix + rec.Symbol
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldPrice, strconv.FormatFloat(rec.Price, 'f', -1, 64))
		if rec.LastUpdated != nil {
			pipe.HSet(ctx, key, fieldLastUpdated, types.FormatTimestamp(*rec.LastUpdated))
		} else {
			pipe.HDel(ctx, key, fieldLastUpdated)
		}
		return nil
	})
	return err
}

func (r *Redis) Close() error {
	return r.client.Close()
}
