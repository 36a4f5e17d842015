package types

import (
	"strings"

	stockpb "code.vegaprotocol.io/stockstream/protos/stock/v1"

	"github.com/shopspring/decimal"
)

type Side int32

const (
	SideUnspecified Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNSPECIFIED"
	}
}

// SideFromString is case insensitive, anything but buy or sell is unspecified.
func SideFromString(s string) Side {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return SideBuy
	case "SELL":
		return SideSell
	default:
		return SideUnspecified
	}
}

// Order is one inbound message of a bulk upload. It is folded into a
// summary and then discarded.
type Order struct {
	OrderID  string
	Symbol   string
	Side     Side
	Price    float64
	Quantity uint32
}

func NewOrderFromProto(p *stockpb.StockOrder) *Order {
	return &Order{
		OrderID:  p.GetOrderId(),
		Symbol:   p.GetStockSymbol(),
		Side:     SideFromString(p.GetOrderType()),
		Price:    p.GetPrice(),
		Quantity: p.GetQuantity(),
	}
}

func (o Order) IntoProto() *stockpb.StockOrder {
	return &stockpb.StockOrder{
		OrderId:     o.OrderID,
		StockSymbol: o.Symbol,
		OrderType:   o.Side.String(),
		Price:       o.Price,
		Quantity:    o.Quantity,
	}
}

// OrderSummary is the running aggregate of a bulk upload.
// SuccessCount + RejectedCount == TotalOrders at all times.
type OrderSummary struct {
	TotalOrders   uint64
	SuccessCount  uint64
	RejectedCount uint64
	// TotalAmount is accumulated with plain float64 additions in arrival order.
	TotalAmount float64
	ExactAmount decimal.Decimal
	Partial     bool
}

func (s OrderSummary) IntoProto() *stockpb.OrderSummary {
	return &stockpb.OrderSummary{
		TotalOrders:   s.TotalOrders,
		SuccessCount:  s.SuccessCount,
		TotalAmount:   s.TotalAmount,
		RejectedCount: s.RejectedCount,
		ExactAmount:   s.ExactAmount.String(),
		Partial:       s.Partial,
	}
}

func OrderSummaryFromProto(p *stockpb.OrderSummary) (*OrderSummary, error) {
	exact := decimal.Zero
	if len(p.ExactAmount) > 0 {
		var err error
		if exact, err = decimal.NewFromString(p.ExactAmount); err != nil {
			return nil, err
		}
	}
	return &OrderSummary{
		TotalOrders:   p.GetTotalOrders(),
		SuccessCount:  p.GetSuccessCount(),
		RejectedCount: p.GetRejectedCount(),
		TotalAmount:   p.GetTotalAmount(),
		ExactAmount:   exact,
		Partial:       p.Partial,
	}, nil
}
