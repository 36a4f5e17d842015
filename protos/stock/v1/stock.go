// Package v1 holds the wire messages and the gRPC service descriptor of the
// stock trading API. Messages are written in protobuf wire format with the
// field numbers of stock.v1, so protoc generated clients interoperate.
package v1

// StockRequest selects a stock by its symbol.
type StockRequest struct {
	StockSymbol string `json:"stock_symbol"`
}

func (x *StockRequest) GetStockSymbol() string {
	if x != nil {
		return x.StockSymbol
	}
	return ""
}

// StockResponse is a single price for a stock. Timestamp is RFC3339 text, or
// "N/A" when the stored record has never been updated.
type StockResponse struct {
	StockSymbol string  `json:"stock_symbol"`
	Price       float64 `json:"price"`
	Timestamp   string  `json:"timestamp"`
}

func (x *StockResponse) GetStockSymbol() string {
	if x != nil {
		return x.StockSymbol
	}
	return ""
}

func (x *StockResponse) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *StockResponse) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

// StockOrder is one message of a bulk order upload. OrderType is "BUY" or "SELL".
type StockOrder struct {
	OrderId     string  `json:"order_id"`
	StockSymbol string  `json:"stock_symbol"`
	OrderType   string  `json:"order_type"`
	Price       float64 `json:"price"`
	Quantity    uint32  `json:"quantity"`
}

func (x *StockOrder) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *StockOrder) GetStockSymbol() string {
	if x != nil {
		return x.StockSymbol
	}
	return ""
}

func (x *StockOrder) GetOrderType() string {
	if x != nil {
		return x.OrderType
	}
	return ""
}

func (x *StockOrder) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *StockOrder) GetQuantity() uint32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

// OrderSummary is the single response of a bulk order upload.
type OrderSummary struct {
	TotalOrders   uint64  `json:"total_orders"`
	SuccessCount  uint64  `json:"success_count"`
	TotalAmount   float64 `json:"total_amount"`
	RejectedCount uint64  `json:"rejected_count,omitempty"`
	// ExactAmount is the decimal rendering of the total, free of float drift.
	ExactAmount string `json:"exact_amount,omitempty"`
	// Partial is only ever set when the server is configured to answer
	// aborted uploads with what was folded so far.
	Partial bool `json:"partial,omitempty"`
}

func (x *OrderSummary) GetTotalOrders() uint64 {
	if x != nil {
		return x.TotalOrders
	}
	return 0
}

func (x *OrderSummary) GetSuccessCount() uint64 {
	if x != nil {
		return x.SuccessCount
	}
	return 0
}

func (x *OrderSummary) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *OrderSummary) GetRejectedCount() uint64 {
	if x != nil {
		return x.RejectedCount
	}
	return 0
}

func (x *OrderSummary) GetExactAmount() string {
	if x != nil {
		return x.ExactAmount
	}
	return ""
}

func (x *OrderSummary) GetPartial() bool {
	if x != nil {
		return x.Partial
	}
	return false
}
