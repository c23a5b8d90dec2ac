package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of one bidirectional optimization. Profit 0 means
// "no arbitrage found", not an error. Profit is denominated in asset for
// SpotToConditional and in stable for ConditionalToSpot.
type Result struct {
	Amount    uint64
	Profit    uint64
	Direction Direction
}

// Profitable reports whether the result carries any arbitrage at all.
func (r Result) Profitable() bool {
	return r.Profit > 0
}

// Opportunity is a detected arbitrage opportunity enriched with reporting
// metadata. All display values are pre-calculated here; reporters render
// them without doing math of their own.
type Opportunity struct {
	Result

	MarketID  string
	Sequence  uint64
	Timestamp time.Time
	Outcomes  int
	// EdgeBps is profit relative to trade size in basis points, for
	// display only.
	EdgeBps decimal.Decimal
	// Evaluations is the number of profit-function probes both searches
	// spent, the liveness budget the optimizer is contracted to.
	Evaluations int
}

// NewOpportunity builds an Opportunity from an optimization result.
func NewOpportunity(marketID string, seq uint64, outcomes int, res Result, evals int) *Opportunity {
	edge := decimal.Zero
	if res.Amount > 0 {
		edge = decimal.NewFromUint64(res.Profit).
			Div(decimal.NewFromUint64(res.Amount)).
			Mul(decimal.NewFromInt(10_000))
	}
	return &Opportunity{
		MarketID:    marketID,
		Sequence:    seq,
		Timestamp:   time.Now(),
		Result:      res,
		Outcomes:    outcomes,
		EdgeBps:     edge,
		Evaluations: evals,
	}
}

// IsProfitable reports whether this opportunity has positive profit.
func (o *Opportunity) IsProfitable() bool {
	return o.Result.Profitable()
}
