package types_test

import (
	"testing"
	"time"

	stockpb "code.vegaprotocol.io/stockstream/protos/stock/v1"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	t.Run("side parsing is case insensitive", testSideFromString)
	t.Run("record without update time renders N/A", testPriceRecordWithoutTimestamp)
	t.Run("tick timestamp survives the wire", testPriceTickFromProto)
	t.Run("order from proto", testOrderFromProto)
	t.Run("summary exact amount survives the wire", testOrderSummaryFromProto)
	t.Run("terminal states", testStreamStateTerminal)
}

func testSideFromString(t *testing.T) {
	assert.Equal(t, types.SideBuy, types.SideFromString("buy"))
	assert.Equal(t, types.SideSell, types.SideFromString(" SELL "))
	assert.Equal(t, types.SideUnspecified, types.SideFromString("HOLD"))
	assert.Equal(t, "SELL", types.SideSell.String())
}

func testPriceRecordWithoutTimestamp(t *testing.T) {
	rec := types.PriceRecord{Symbol: "AAPL", Price: 150.5}
	assert.Equal(t, types.TimestampNotAvailable, rec.IntoProto().Timestamp)

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rec.LastUpdated = &at
	assert.Equal(t, "2024-03-01T10:00:00Z", rec.IntoProto().Timestamp)
}

func testPriceTickFromProto(t *testing.T) {
	tick := types.PriceTick{Symbol: "TSLA", Price: 12.25, Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 1500, time.UTC)}

	back, err := types.PriceTickFromProto(tick.IntoProto())
	require.NoError(t, err)
	assert.Equal(t, tick.Symbol, back.Symbol)
	assert.Equal(t, tick.Price, back.Price)
	assert.True(t, tick.Timestamp.Equal(back.Timestamp))

	_, err = types.PriceTickFromProto(&stockpb.StockResponse{Timestamp: types.TimestampNotAvailable})
	assert.Error(t, err)
}

func testOrderFromProto(t *testing.T) {
	o := types.NewOrderFromProto(&stockpb.StockOrder{
		OrderId:     "2",
		StockSymbol: "GOOGL",
		OrderType:   "SELL",
		Price:       2700.0,
		Quantity:    5,
	})
	assert.Equal(t, types.Order{OrderID: "2", Symbol: "GOOGL", Side: types.SideSell, Price: 2700.0, Quantity: 5}, *o)
}

func testOrderSummaryFromProto(t *testing.T) {
	sum := types.OrderSummary{
		TotalOrders:  3,
		SuccessCount: 3,
		TotalAmount:  20605.0,
		ExactAmount:  decimal.RequireFromString("20605"),
	}
	back, err := types.OrderSummaryFromProto(sum.IntoProto())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), back.TotalOrders)
	assert.True(t, back.ExactAmount.Equal(sum.ExactAmount))

	_, err = types.OrderSummaryFromProto(&stockpb.OrderSummary{ExactAmount: "lots"})
	assert.Error(t, err)
}

func testStreamStateTerminal(t *testing.T) {
	assert.False(t, types.StreamStateStreaming.IsTerminal())
	assert.False(t, types.StreamStateReceiving.IsTerminal())
	assert.True(t, types.StreamStateClosed.IsTerminal())
	assert.True(t, types.StreamStateFailed.IsTerminal())
}
