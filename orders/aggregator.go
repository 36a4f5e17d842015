package orders

import (
	"math"

	"code.vegaprotocol.io/stockstream/types"

	"github.com/shopspring/decimal"
)

// Aggregator folds orders into a summary. It does no I/O.
type Aggregator struct {
	rejectInvalid bool
}

func NewAggregator(rejectInvalid bool) Aggregator {
	return Aggregator{rejectInvalid: rejectInvalid}
}

// Accepts reports whether the order is counted as a success.
func (a Aggregator) Accepts(o *types.Order) bool {
	if o == nil {
		return false
	}
	if !a.rejectInvalid {
		return true
	}
	return len(o.Symbol) > 0 &&
		o.Side != types.SideUnspecified &&
		o.Quantity > 0 &&
		o.Price > 0 && finite(o.Price)
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Apply returns the summary with the order folded in. Amounts accumulate in
// call order so the same sequence always yields the same summary. A
// non-finite price still feeds TotalAmount but is left out of ExactAmount,
// which has no representation for it.
func (a Aggregator) Apply(s types.OrderSummary, o *types.Order) types.OrderSummary {
	s.TotalOrders++
	if !a.Accepts(o) {
		s.RejectedCount++
		return s
	}
	s.SuccessCount++
	s.TotalAmount += o.Price * float64(o.Quantity)
	if !finite(o.Price) {
		return s
	}
	s.ExactAmount = s.ExactAmount.Add(
		decimal.NewFromFloat(o.Price).Mul(decimal.NewFromInt(int64(o.Quantity))),
	)
	return s
}
