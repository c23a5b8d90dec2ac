// Package arbitrage implements the arbitrage bounded context: sizing the
// optimal trade for each market snapshot and reporting the result.
package arbitrage

import (
	"context"

	"github.com/quantagov/quantum-arb/business/arbitrage/app"
	arbDI "github.com/quantagov/quantum-arb/business/arbitrage/di"
	"github.com/quantagov/quantum-arb/business/arbitrage/infra"
	marketDI "github.com/quantagov/quantum-arb/business/market/di"
	settlementDI "github.com/quantagov/quantum-arb/business/settlement/di"
	"github.com/quantagov/quantum-arb/internal/config"
	"github.com/quantagov/quantum-arb/internal/di"
	"github.com/quantagov/quantum-arb/internal/logger"
	"github.com/quantagov/quantum-arb/internal/monolith"
)

// Module implements the arbitrage bounded context.
type Module struct{}

// RegisterServices registers all arbitrage services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, arbDI.Optimizer, func(sr di.ServiceRegistry) *app.Optimizer {
		optimizer, err := app.NewOptimizer()
		if err != nil {
			panic("failed to create optimizer: " + err.Error())
		}
		return optimizer
	})

	di.RegisterToken(c, arbDI.Reporter, func(sr di.ServiceRegistry) app.Reporter {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		if cfg.App.TUIMode {
			return infra.NewTUIReporter(log)
		}
		return infra.NewConsoleReporter(log)
	})

	di.RegisterToken(c, arbDI.Detector, func(sr di.ServiceRegistry) *app.Detector {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		detector, err := app.NewDetector(
			arbDI.GetOptimizer(sr),
			marketDI.GetSnapshotSource(sr),
			arbDI.GetReporter(sr),
			settlementDI.GetExecutor(sr),
			app.DetectorConfig{
				ScansPerMinute:  cfg.Optimizer.ScansPerMinute,
				Execute:         cfg.Settlement.Execute,
				MinProfit:       cfg.Settlement.MinProfit,
				ProfitRecipient: cfg.Settlement.ProfitRecipient,
			},
			log,
		)
		if err != nil {
			panic("failed to create detector: " + err.Error())
		}
		return detector
	})

	return nil
}

// Startup initializes the arbitrage module. The detection loop itself is
// started by main once all modules are up.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "arbitrage module started",
		"scans_per_minute", mono.Config().Optimizer.ScansPerMinute,
	)
	return nil
}
