package types

import (
	"time"

	stockpb "code.vegaprotocol.io/stockstream/protos/stock/v1"
)

// TimestampNotAvailable is sent in place of a timestamp for records which
// have never been updated.
const TimestampNotAvailable = "N/A"

// PriceTick is one price update of a subscription.
type PriceTick struct {
	Symbol    string
	Price     float64
	Timestamp time.Time
}

func (p PriceTick) IntoProto() *stockpb.StockResponse {
	return &stockpb.StockResponse{
		StockSymbol: p.Symbol,
		Price:       p.Price,
		Timestamp:   FormatTimestamp(p.Timestamp),
	}
}

// PriceTickFromProto is used by clients reading a subscription.
func PriceTickFromProto(p *stockpb.StockResponse) (PriceTick, error) {
	ts, err := time.Parse(time.RFC3339Nano, p.GetTimestamp())
	if err != nil {
		return PriceTick{}, err
	}
	return PriceTick{
		Symbol:    p.GetStockSymbol(),
		Price:     p.GetPrice(),
		Timestamp: ts,
	}, nil
}

// PriceRecord is the stored price of a stock. LastUpdated is nil when the
// record has never been updated.
type PriceRecord struct {
	Symbol      string     `json:"symbol"`
	Price       float64    `json:"price"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

func (p PriceRecord) IntoProto() *stockpb.StockResponse {
	ts := TimestampNotAvailable
	if p.LastUpdated != nil {
		ts = FormatTimestamp(*p.LastUpdated)
	}
	return &stockpb.StockResponse{
		StockSymbol: p.Symbol,
		Price:       p.Price,
		Timestamp:   ts,
	}
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
