package commands

import (
	"context"
	"time"

	"code.vegaprotocol.io/stockstream/feeds"
	"code.vegaprotocol.io/stockstream/logging"

	"github.com/jessevdk/go-flags"
)

type publishPriceCmd struct {
	ctx context.Context
	feeds.Config

	Symbol string  `short:"s" long:"symbol" required:"true" description:"Stock symbol of the update"`
	Price  float64 `short:"p" long:"price" required:"true"`
	SeqID  int64   `long:"seq" description:"sequence number of the update, 0 is never deduplicated"`
}

func (cmd *publishPriceCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	feed := feeds.NewRedisFeed(log, cmd.Config)
	defer feed.Close()

	u := feeds.Update{
		Symbol:    cmd.Symbol,
		Price:     cmd.Price,
		Timestamp: time.Now().UnixMicro(),
		SeqID:     cmd.SeqID,
	}
	if err := feed.Publish(cmd.ctx, u); err != nil {
		return err
	}
	log.Info("price published", logging.String("symbol", u.Symbol), logging.Float64("price", u.Price))
	return nil
}

func PublishPrice(ctx context.Context, parser *flags.Parser) error {
	_, err := parser.AddCommand("publish-price", "Publish a price on the feed", "Store a price and publish it to the subscribers of the redis price feed", &publishPriceCmd{
		ctx:    ctx,
		Config: feeds.NewDefaultConfig(),
	})
	return err
}
