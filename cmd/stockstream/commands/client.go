package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"code.vegaprotocol.io/stockstream/client"
	"code.vegaprotocol.io/stockstream/logging"
	stockpb "code.vegaprotocol.io/stockstream/protos/stock/v1"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type getPriceCmd struct {
	ctx context.Context
	client.Config

	Symbol string `short:"s" long:"symbol" required:"true" description:"Stock symbol to look up"`
}

func (cmd *getPriceCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	c, err := client.Dial(log, cmd.Config)
	if err != nil {
		return err
	}
	defer c.Close()

	resp, err := c.GetPrice(cmd.ctx, cmd.Symbol)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %v (last updated: %s)\n", resp.GetStockSymbol(), resp.GetPrice(), resp.GetTimestamp())
	return nil
}

func GetPrice(ctx context.Context, parser *flags.Parser) error {
	_, err := parser.AddCommand("get-price", "Get the stored price of a stock", "Get the stored price of a stock from a stockstream node", &getPriceCmd{
		ctx:    ctx,
		Config: client.NewDefaultConfig(),
	})
	return err
}

type subscribeCmd struct {
	ctx context.Context
	client.Config

	Symbol string `short:"s" long:"symbol" required:"true" description:"Stock symbol to subscribe to"`
}

func (cmd *subscribeCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	c, err := client.Dial(log, cmd.Config)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(cmd.ctx)
	defer cancel()
	go func() {
		waitSig(ctx, log)
		cancel()
	}()

	_, err = c.SubscribePrice(ctx, cmd.Symbol, printTick(os.Stdout))
	if err != nil {
		return err
	}
	fmt.Println("Stock price streaming completed.")
	return nil
}

func printTick(w io.Writer) func(types.PriceTick) error {
	return func(t types.PriceTick) error {
		_, err := fmt.Fprintf(w, "Stock Price Update: %s Price: %v Time: %s\n",
			t.Symbol, t.Price, types.FormatTimestamp(t.Timestamp))
		return err
	}
}

func Subscribe(ctx context.Context, parser *flags.Parser) error {
	_, err := parser.AddCommand("subscribe", "Stream the prices of a stock", "Stream generated prices of a stock until the node completes the stream", &subscribeCmd{
		ctx:    ctx,
		Config: client.NewDefaultConfig(),
	})
	return err
}

type bulkOrderCmd struct {
	ctx context.Context
	client.Config

	File string `long:"file" description:"JSON file holding an array of orders, the sample orders are sent when empty"`
}

func (cmd *bulkOrderCmd) Execute(_ []string) error {
	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	orders := client.SampleOrders()
	if cmd.File != "" {
		var err error
		if orders, err = readOrders(cmd.File); err != nil {
			return err
		}
	}

	c, err := client.Dial(log, cmd.Config)
	if err != nil {
		return err
	}
	defer c.Close()

	summary, err := c.SendBulkOrders(cmd.ctx, orders)
	if err != nil {
		return err
	}
	printSummary(os.Stdout, summary)
	return nil
}

func readOrders(path string) ([]*types.Order, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var msgs []*stockpb.StockOrder
	if err := json.Unmarshal(buf, &msgs); err != nil {
		return nil, errors.Wrapf(err, "reading orders from %s", path)
	}
	orders := make([]*types.Order, 0, len(msgs))
	for _, m := range msgs {
		orders = append(orders, types.NewOrderFromProto(m))
	}
	return orders, nil
}

func printSummary(w io.Writer, s *types.OrderSummary) {
	fmt.Fprintln(w, "Order Summary Received from Server:")
	fmt.Fprintf(w, "Total Orders: %d\n", s.TotalOrders)
	fmt.Fprintf(w, "Successful Orders: %d\n", s.SuccessCount)
	if s.RejectedCount > 0 {
		fmt.Fprintf(w, "Rejected Orders: %d\n", s.RejectedCount)
	}
	fmt.Fprintf(w, "Total Amount: $%v (exact %s)\n", s.TotalAmount, s.ExactAmount.String())
	if s.Partial {
		fmt.Fprintln(w, "The upload was aborted, the summary is partial.")
	}
}

func BulkOrder(ctx context.Context, parser *flags.Parser) error {
	_, err := parser.AddCommand("bulk-order", "Upload a batch of orders", "Stream a batch of orders to a stockstream node and print the summary", &bulkOrderCmd{
		ctx:    ctx,
		Config: client.NewDefaultConfig(),
	})
	return err
}
