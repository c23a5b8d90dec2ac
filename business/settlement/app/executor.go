package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	arbDomain "github.com/quantagov/quantum-arb/business/arbitrage/domain"
	"github.com/quantagov/quantum-arb/business/settlement/domain"
	"github.com/quantagov/quantum-arb/internal/apperror"
	"github.com/quantagov/quantum-arb/internal/logger"
	"github.com/quantagov/quantum-arb/internal/numeric"
)

const (
	tracerName = "github.com/quantagov/quantum-arb/business/settlement/app"
	meterName  = "github.com/quantagov/quantum-arb/business/settlement/app"
)

// executorMetrics holds OTEL metric instruments.
type executorMetrics struct {
	settlements    metric.Int64Counter
	rejections     metric.Int64Counter
	profitRealized metric.Int64Counter
	dustReturned   metric.Int64Counter
}

// Executor performs complete-set accounting: it turns a winning
// (amount, direction) into real swaps, a quantum split, a complete-set burn
// and a dust remainder. The whole sequence is atomic per market: if the
// realized profit falls below the caller's minimum, no mutation survives.
type Executor struct {
	ledger *Ledger
	logger logger.LoggerInterface

	tracer  trace.Tracer
	metrics *executorMetrics
}

// NewExecutor creates a settlement executor over the given ledger.
func NewExecutor(ledger *Ledger, log logger.LoggerInterface) (*Executor, error) {
	e := &Executor{
		ledger: ledger,
		logger: log,
		tracer: otel.Tracer(tracerName),
	}
	if err := e.initMetrics(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Executor) initMetrics() error {
	meter := otel.Meter(meterName)
	var err error

	e.metrics = &executorMetrics{}

	e.metrics.settlements, err = meter.Int64Counter(
		"settlement_executions_total",
		metric.WithDescription("Total settled arbitrage attempts"),
		metric.WithUnit("{settlement}"),
	)
	if err != nil {
		return err
	}

	e.metrics.rejections, err = meter.Int64Counter(
		"settlement_rejections_total",
		metric.WithDescription("Attempts rejected with no surviving mutation"),
		metric.WithUnit("{rejection}"),
	)
	if err != nil {
		return err
	}

	e.metrics.profitRealized, err = meter.Int64Counter(
		"settlement_profit_total",
		metric.WithDescription("Cumulative realized profit"),
		metric.WithUnit("{token}"),
	)
	if err != nil {
		return err
	}

	e.metrics.dustReturned, err = meter.Int64Counter(
		"settlement_dust_total",
		metric.WithDescription("Cumulative dust returned to callers"),
		metric.WithUnit("{token}"),
	)
	return err
}

// Settle executes the trade against the market's live pools and returns the
// receipt. Pools mutate only when the attempt clears the minimum-profit
// floor.
func (e *Executor) Settle(ctx context.Context, marketID string, trade arbDomain.Result, minProfit uint64, recipient string) (*domain.Receipt, error) {
	ctx, span := e.tracer.Start(ctx, "settlement.settle",
		trace.WithAttributes(
			attribute.String("market_id", marketID),
			attribute.String("direction", string(trade.Direction)),
			attribute.Int64("amount", int64(trade.Amount)),
		),
	)
	defer span.End()

	if trade.Amount == 0 {
		return nil, apperror.New(apperror.CodeInvalidTradeSize,
			apperror.WithContext("settlement requires a positive trade size"))
	}

	var receipt *domain.Receipt
	err := e.ledger.withExclusive(marketID, func(m *arbDomain.Market) error {
		var err error
		switch trade.Direction {
		case arbDomain.ConditionalToSpot:
			receipt, err = e.settleConditionalToSpot(m, trade.Amount, minProfit)
		default:
			receipt, err = e.settleSpotToConditional(m, trade.Amount, minProfit)
		}
		return err
	})
	if err != nil {
		e.metrics.rejections.Add(ctx, 1)
		span.RecordError(err)
		return nil, err
	}

	receipt.MarketID = marketID
	receipt.Recipient = recipient

	e.metrics.settlements.Add(ctx, 1)
	e.metrics.profitRealized.Add(ctx, int64(receipt.Profit))
	e.metrics.dustReturned.Add(ctx, int64(dustTotal(receipt.Dust)))
	span.SetAttributes(attribute.Int64("profit", int64(receipt.Profit)))

	e.logger.Info(ctx, "settlement executed",
		"market_id", marketID,
		"direction", trade.Direction,
		"amount", trade.Amount,
		"profit", receipt.Profit,
		"recipient", recipient,
	)
	return receipt, nil
}

// Sync mirrors authoritative pool state into the ledger. Satisfies the
// detector's settlement port.
func (e *Executor) Sync(marketID string, m arbDomain.Market) {
	e.ledger.Register(marketID, m)
}

// Execute satisfies the detector's settlement port.
func (e *Executor) Execute(ctx context.Context, marketID string, trade arbDomain.Result, minProfit uint64, recipient string) error {
	_, err := e.Settle(ctx, marketID, trade, minProfit, recipient)
	return err
}

// settleSpotToConditional sells amount asset on spot, quantum-splits the
// stable proceeds across every outcome, swaps each split into conditional
// asset and burns the largest complete set back into real asset.
// Profit is denominated in asset.
func (e *Executor) settleSpotToConditional(m *arbDomain.Market, amount, minProfit uint64) (*domain.Receipt, error) {
	stableOut, spotAfter := m.Spot.SwapAssetIn(amount)
	if stableOut == 0 {
		return nil, apperror.New(apperror.CodePoolExhausted,
			apperror.WithContext("spot pool cannot absorb the trade"))
	}

	bal := domain.NewQuantumBalance(m.Outcomes())
	bal.DepositStable(stableOut)

	condsAfter := make([]arbDomain.ConditionalPool, m.Outcomes())
	for i := range m.Conditionals {
		out, after := m.Conditionals[i].SwapStableIn(stableOut)
		bal.Stable[i] -= stableOut
		bal.Asset[i] = out
		condsAfter[i] = arbDomain.ConditionalPool{Pool: after, Outcome: i}
	}

	completeSet := bal.CompleteSetAsset()
	profit := numeric.SatSub(completeSet, amount)
	if profit == 0 || profit < minProfit {
		return nil, apperror.New(apperror.CodeInsufficientProfit,
			apperror.WithContext("realized profit below minimum"))
	}

	bal.BurnAsset(completeSet)

	m.Spot = spotAfter
	m.Conditionals = condsAfter

	return &domain.Receipt{
		Direction: arbDomain.SpotToConditional,
		Amount:    amount,
		Profit:    profit,
		Dust:      bal,
	}, nil
}

// settleConditionalToSpot mints a complete set of amount asset (quantum
// split priced at the worst pool), swaps for exactly amount in every
// conditional pool, burns the set and sells the recombined asset on spot.
// Profit is denominated in stable.
func (e *Executor) settleConditionalToSpot(m *arbDomain.Market, amount, minProfit uint64) (*domain.Receipt, error) {
	cost, ok := arbDomain.AggregateBuyCost(m.Conditionals, amount)
	if !ok || cost == numeric.MaxUint64 {
		return nil, apperror.New(apperror.CodePoolExhausted,
			apperror.WithContext("conditional pools cannot serve the complete set"))
	}

	bal := domain.NewQuantumBalance(m.Outcomes())
	bal.DepositStable(cost)

	condsAfter := make([]arbDomain.ConditionalPool, m.Outcomes())
	for i := range m.Conditionals {
		in, after, ok := m.Conditionals[i].BuyAssetExact(amount)
		if !ok {
			return nil, apperror.New(apperror.CodePoolExhausted,
				apperror.WithContext("conditional pool exhausted mid-settlement"))
		}
		// cost is the MAX of per-pool quotes, so every input fits.
		bal.Stable[i] -= in
		bal.Asset[i] = amount
		condsAfter[i] = arbDomain.ConditionalPool{Pool: after, Outcome: i}
	}

	// A full complete set of amount exists by construction; burn it for
	// the backing asset and sell on spot.
	bal.BurnAsset(amount)
	proceeds, spotAfter := m.Spot.SwapAssetIn(amount)

	profit := numeric.SatSub(proceeds, cost)
	if profit == 0 || profit < minProfit {
		return nil, apperror.New(apperror.CodeInsufficientProfit,
			apperror.WithContext("realized profit below minimum"))
	}

	m.Spot = spotAfter
	m.Conditionals = condsAfter

	return &domain.Receipt{
		Direction: arbDomain.ConditionalToSpot,
		Amount:    amount,
		Profit:    profit,
		Dust:      bal,
	}, nil
}

func dustTotal(b *domain.QuantumBalance) uint64 {
	if b == nil {
		return 0
	}
	var total uint64
	for _, v := range b.Asset {
		total = numeric.SatAdd(total, v)
	}
	for _, v := range b.Stable {
		total = numeric.SatAdd(total, v)
	}
	return total
}
