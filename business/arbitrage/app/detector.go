package app

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/quantagov/quantum-arb/business/arbitrage/domain"
	marketDomain "github.com/quantagov/quantum-arb/business/market/domain"
	"github.com/quantagov/quantum-arb/internal/logger"
	"github.com/quantagov/quantum-arb/internal/ratelimit"
)

const (
	tracerName = "github.com/quantagov/quantum-arb/business/arbitrage/app"
	meterName  = "github.com/quantagov/quantum-arb/business/arbitrage/app"
)

// DetectorConfig holds configuration for the arbitrage detector.
type DetectorConfig struct {
	// ScansPerMinute caps how often markets are re-optimized; snapshots
	// above the cap are dropped, never queued.
	ScansPerMinute int

	// Execute enables settlement of profitable results.
	Execute bool

	// MinProfit is the settlement rejection floor, in output-token units.
	MinProfit uint64

	// ProfitRecipient receives realized profit when execution is enabled.
	ProfitRecipient string
}

// detectorMetrics holds OTEL metric instruments.
type detectorMetrics struct {
	snapshotsSeen      metric.Int64Counter
	opportunitiesFound metric.Int64Counter
	quoteEvaluations   metric.Int64Histogram
	profitFound        metric.Int64Counter
	settlementRejects  metric.Int64Counter
}

// Detector orchestrates arbitrage detection over a snapshot feed.
type Detector struct {
	optimizer  *Optimizer
	source     SnapshotSource
	reporter   Reporter
	settlement SettlementPort
	limiter    *ratelimit.Limiter
	config     DetectorConfig
	logger     logger.LoggerInterface

	tracer  trace.Tracer
	metrics *detectorMetrics
}

// NewDetector creates a new arbitrage Detector.
func NewDetector(
	optimizer *Optimizer,
	source SnapshotSource,
	reporter Reporter,
	settlement SettlementPort,
	config DetectorConfig,
	log logger.LoggerInterface,
) (*Detector, error) {
	if config.ScansPerMinute <= 0 {
		config.ScansPerMinute = 600
	}
	d := &Detector{
		optimizer:  optimizer,
		source:     source,
		reporter:   reporter,
		settlement: settlement,
		limiter:    ratelimit.New(config.ScansPerMinute),
		config:     config,
		logger:     log,
		tracer:     otel.Tracer(tracerName),
	}
	if err := d.initMetrics(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Detector) initMetrics() error {
	meter := otel.Meter(meterName)
	var err error

	d.metrics = &detectorMetrics{}

	d.metrics.snapshotsSeen, err = meter.Int64Counter(
		"arb_snapshots_total",
		metric.WithDescription("Total market snapshots received"),
		metric.WithUnit("{snapshot}"),
	)
	if err != nil {
		return err
	}

	d.metrics.opportunitiesFound, err = meter.Int64Counter(
		"arb_opportunities_total",
		metric.WithDescription("Total profitable opportunities found"),
		metric.WithUnit("{opportunity}"),
	)
	if err != nil {
		return err
	}

	d.metrics.quoteEvaluations, err = meter.Int64Histogram(
		"arb_quote_evaluations",
		metric.WithDescription("Profit-function evaluations per bidirectional search"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return err
	}

	d.metrics.profitFound, err = meter.Int64Counter(
		"arb_profit_total",
		metric.WithDescription("Cumulative optimizer profit across opportunities"),
		metric.WithUnit("{token}"),
	)
	if err != nil {
		return err
	}

	d.metrics.settlementRejects, err = meter.Int64Counter(
		"arb_settlement_rejects_total",
		metric.WithDescription("Settlements rejected below the minimum-profit floor"),
		metric.WithUnit("{reject}"),
	)
	return err
}

// Start begins the detection loop.
func (d *Detector) Start(ctx context.Context) error {
	d.logger.Info(ctx, "starting arbitrage detector",
		"scans_per_minute", d.config.ScansPerMinute,
		"execute", d.config.Execute,
	)

	snapshots, err := d.source.Subscribe(ctx)
	if err != nil {
		return err
	}

	if err := d.reporter.Start(ctx); err != nil {
		return err
	}

	go d.run(ctx, snapshots)
	return nil
}

func (d *Detector) run(ctx context.Context, snapshots <-chan *marketDomain.Snapshot) {
	for {
		select {
		case <-ctx.Done():
			d.logger.Info(ctx, "detector stopping", "reason", ctx.Err())
			return
		case snap, ok := <-snapshots:
			if !ok {
				d.logger.Info(ctx, "snapshot feed closed")
				return
			}
			if snap == nil {
				continue
			}
			d.metrics.snapshotsSeen.Add(ctx, 1)
			if !d.limiter.Allow() {
				continue
			}
			d.onSnapshot(ctx, snap)
		}
	}
}

func (d *Detector) onSnapshot(ctx context.Context, snap *marketDomain.Snapshot) {
	ctx, span := d.tracer.Start(ctx, "arb.optimize",
		trace.WithAttributes(
			attribute.String("market_id", snap.MarketID),
			attribute.Int64("sequence", int64(snap.Sequence)),
			attribute.Int("outcomes", len(snap.Conditionals)),
		),
	)
	defer span.End()

	d.reporter.UpdateMarket(snap)

	market, err := snap.Market()
	if err != nil {
		d.logger.Warn(ctx, "invalid market snapshot", "market_id", snap.MarketID, "error", err)
		span.RecordError(err)
		return
	}

	var hint *Hint
	if snap.HasHint() {
		hint = &Hint{Lo: snap.HintLo, Hi: snap.HintHi}
	}

	result, evals := d.optimizer.BestTrade(market, hint)
	d.metrics.quoteEvaluations.Record(ctx, int64(evals))
	span.SetAttributes(
		attribute.Int("evaluations", evals),
		attribute.String("direction", string(result.Direction)),
		attribute.Int64("amount", int64(result.Amount)),
	)

	opp := domain.NewOpportunity(snap.MarketID, snap.Sequence, market.Outcomes(), result, evals)
	d.reporter.Report(opp)

	if !result.Profitable() {
		return
	}

	d.metrics.opportunitiesFound.Add(ctx, 1)
	d.metrics.profitFound.Add(ctx, int64(result.Profit))
	d.logger.Info(ctx, "arbitrage opportunity",
		"market_id", snap.MarketID,
		"direction", result.Direction,
		"amount", result.Amount,
		"profit", result.Profit,
		"evaluations", evals,
	)

	if !d.config.Execute || d.settlement == nil {
		return
	}

	d.settlement.Sync(snap.MarketID, market)
	if err := d.settlement.Execute(ctx, snap.MarketID, result, d.config.MinProfit, d.config.ProfitRecipient); err != nil {
		d.metrics.settlementRejects.Add(ctx, 1)
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		d.logger.Warn(ctx, "settlement rejected", "market_id", snap.MarketID, "error", err)
	}
}

// Stop gracefully shuts down the detector.
func (d *Detector) Stop() error {
	d.logger.Info(context.Background(), "stopping arbitrage detector")
	if err := d.source.Close(); err != nil {
		d.logger.Warn(context.Background(), "closing snapshot source", "error", err)
	}
	return d.reporter.Stop()
}
