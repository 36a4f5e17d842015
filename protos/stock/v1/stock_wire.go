package v1

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the stock.v1 messages. Fields holding their zero value
// are not written, and unknown fields are skipped when reading.
const (
	stockRequestSymbol protowire.Number = 1

	stockResponseSymbol    protowire.Number = 1
	stockResponsePrice     protowire.Number = 2
	stockResponseTimestamp protowire.Number = 3

	stockOrderID       protowire.Number = 1
	stockOrderSymbol   protowire.Number = 2
	stockOrderType     protowire.Number = 3
	stockOrderPrice    protowire.Number = 4
	stockOrderQuantity protowire.Number = 5

	summaryTotalOrders   protowire.Number = 1
	summarySuccessCount  protowire.Number = 2
	summaryTotalAmount   protowire.Number = 3
	summaryRejectedCount protowire.Number = 4
	summaryExactAmount   protowire.Number = 5
	summaryPartial       protowire.Number = 6
)

func (x *StockRequest) Marshal() ([]byte, error) {
	return appendString(nil, stockRequestSymbol, x.GetStockSymbol()), nil
}

func (x *StockRequest) Unmarshal(b []byte) error {
	*x = StockRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == stockRequestSymbol {
			return consumeString(typ, b, &x.StockSymbol)
		}
		return 0
	})
}

func (x *StockResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, stockResponseSymbol, x.GetStockSymbol())
	b = appendDouble(b, stockResponsePrice, x.GetPrice())
	b = appendString(b, stockResponseTimestamp, x.GetTimestamp())
	return b, nil
}

func (x *StockResponse) Unmarshal(b []byte) error {
	*x = StockResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case stockResponseSymbol:
			return consumeString(typ, b, &x.StockSymbol)
		case stockResponsePrice:
			return consumeDouble(typ, b, &x.Price)
		case stockResponseTimestamp:
			return consumeString(typ, b, &x.Timestamp)
		}
		return 0
	})
}

func (x *StockOrder) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, stockOrderID, x.GetOrderId())
	b = appendString(b, stockOrderSymbol, x.GetStockSymbol())
	b = appendString(b, stockOrderType, x.GetOrderType())
	b = appendDouble(b, stockOrderPrice, x.GetPrice())
	b = appendVarint(b, stockOrderQuantity, uint64(x.GetQuantity()))
	return b, nil
}

func (x *StockOrder) Unmarshal(b []byte) error {
	*x = StockOrder{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case stockOrderID:
			return consumeString(typ, b, &x.OrderId)
		case stockOrderSymbol:
			return consumeString(typ, b, &x.StockSymbol)
		case stockOrderType:
			return consumeString(typ, b, &x.OrderType)
		case stockOrderPrice:
			return consumeDouble(typ, b, &x.Price)
		case stockOrderQuantity:
			var v uint64
			n := consumeVarint(typ, b, &v)
			if n > 0 {
				x.Quantity = uint32(v)
			}
			return n
		}
		return 0
	})
}

func (x *OrderSummary) Marshal() ([]byte, error) {
	var b []byte
	b = appendVarint(b, summaryTotalOrders, x.GetTotalOrders())
	b = appendVarint(b, summarySuccessCount, x.GetSuccessCount())
	b = appendDouble(b, summaryTotalAmount, x.GetTotalAmount())
	b = appendVarint(b, summaryRejectedCount, x.GetRejectedCount())
	b = appendString(b, summaryExactAmount, x.GetExactAmount())
	if x.GetPartial() {
		b = appendVarint(b, summaryPartial, protowire.EncodeBool(true))
	}
	return b, nil
}

func (x *OrderSummary) Unmarshal(b []byte) error {
	*x = OrderSummary{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case summaryTotalOrders:
			return consumeVarint(typ, b, &x.TotalOrders)
		case summarySuccessCount:
			return consumeVarint(typ, b, &x.SuccessCount)
		case summaryTotalAmount:
			return consumeDouble(typ, b, &x.TotalAmount)
		case summaryRejectedCount:
			return consumeVarint(typ, b, &x.RejectedCount)
		case summaryExactAmount:
			return consumeString(typ, b, &x.ExactAmount)
		case summaryPartial:
			var v uint64
			n := consumeVarint(typ, b, &v)
			if n > 0 {
				x.Partial = protowire.DecodeBool(v)
			}
			return n
		}
		return 0
	})
}

// decode walks the fields of b. set reads a known field and returns the
// bytes it consumed, or 0 to have the field skipped.
func decode(b []byte, set func(protowire.Number, protowire.Type, []byte) int) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n = set(num, typ, b)
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	bits := math.Float64bits(v)
	if bits == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, bits)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func consumeString(typ protowire.Type, b []byte, dst *string) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeString(b)
	if n > 0 {
		*dst = v
	}
	return n
}

func consumeDouble(typ protowire.Type, b []byte, dst *float64) int {
	if typ != protowire.Fixed64Type {
		return 0
	}
	v, n := protowire.ConsumeFixed64(b)
	if n > 0 {
		*dst = math.Float64frombits(v)
	}
	return n
}

func consumeVarint(typ protowire.Type, b []byte, dst *uint64) int {
	if typ != protowire.VarintType {
		return 0
	}
	v, n := protowire.ConsumeVarint(b)
	if n > 0 {
		*dst = v
	}
	return n
}
