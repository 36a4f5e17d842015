package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"code.vegaprotocol.io/stockstream/config"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/jessevdk/go-flags"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	t.Run("all subcommands register", testRegister)
	t.Run("init writes a configuration once", testInit)
	t.Run("orders are read from a json file", testReadOrders)
	t.Run("ticks are printed one per line", testPrintTick)
	t.Run("summary prints rejected and partial only when set", testPrintSummary)
}

func testRegister(t *testing.T) {
	parser := flags.NewParser(&empty{}, flags.None)
	require.NoError(t, Register(context.Background(), parser,
		Init, Node, GetPrice, Subscribe, BulkOrder, PublishPrice, Version,
	))
	for _, name := range []string{"init", "node", "get-price", "subscribe", "bulk-order", "publish-price", "version"} {
		assert.NotNil(t, parser.Find(name), name)
	}
}

func testInit(t *testing.T) {
	root := t.TempDir()
	cmd := &initCmd{RootPathFlag: config.RootPathFlag{RootPath: root}}
	require.NoError(t, cmd.Execute(nil))
	_, err := os.Stat(config.Path(root))
	require.NoError(t, err)

	assert.Error(t, cmd.Execute(nil))
	cmd.Force = true
	assert.NoError(t, cmd.Execute(nil))
}

func testReadOrders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	content := `[
		{"order_id":"1","stock_symbol":"AAPL","order_type":"BUY","price":150.5,"quantity":10},
		{"order_id":"2","stock_symbol":"TSLA","order_type":"sell","price":700,"quantity":2}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	orders, err := readOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "AAPL", orders[0].Symbol)
	assert.Equal(t, types.SideBuy, orders[0].Side)
	assert.Equal(t, types.SideSell, orders[1].Side)
	assert.Equal(t, uint32(2), orders[1].Quantity)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = readOrders(path)
	assert.Error(t, err)
}

func testPrintTick(t *testing.T) {
	var buf bytes.Buffer
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, printTick(&buf)(types.PriceTick{Symbol: "AAPL", Price: 12.5, Timestamp: ts}))
	assert.Equal(t, "Stock Price Update: AAPL Price: 12.5 Time: 2024-01-02T03:04:05Z\n", buf.String())
}

func testPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &types.OrderSummary{
		TotalOrders:  3,
		SuccessCount: 3,
		TotalAmount:  20605,
		ExactAmount:  decimal.NewFromInt(20605),
	})
	out := buf.String()
	assert.Contains(t, out, "Total Orders: 3\n")
	assert.Contains(t, out, "Total Amount: $20605 (exact 20605)\n")
	assert.NotContains(t, out, "Rejected")
	assert.NotContains(t, out, "partial")

	buf.Reset()
	printSummary(&buf, &types.OrderSummary{TotalOrders: 2, SuccessCount: 1, RejectedCount: 1, Partial: true})
	assert.Contains(t, buf.String(), "Rejected Orders: 1\n")
	assert.Contains(t, buf.String(), "partial")
}
