// Package settlement implements the settlement bounded context: applying
// winning trades to the pool ledger under a minimum-profit floor.
package settlement

import (
	"context"

	"github.com/quantagov/quantum-arb/business/settlement/app"
	settlementDI "github.com/quantagov/quantum-arb/business/settlement/di"
	"github.com/quantagov/quantum-arb/internal/di"
	"github.com/quantagov/quantum-arb/internal/logger"
	"github.com/quantagov/quantum-arb/internal/monolith"
)

// Module implements the settlement bounded context.
type Module struct{}

// RegisterServices registers all settlement services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, settlementDI.Ledger, func(sr di.ServiceRegistry) *app.Ledger {
		return app.NewLedger()
	})

	di.RegisterToken(c, settlementDI.Executor, func(sr di.ServiceRegistry) *app.Executor {
		log := sr.Get("logger").(logger.LoggerInterface)
		ledger := settlementDI.GetLedger(sr)

		executor, err := app.NewExecutor(ledger, log)
		if err != nil {
			panic("failed to create settlement executor: " + err.Error())
		}
		return executor
	})

	return nil
}

// Startup initializes the settlement module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "settlement module started",
		"execute", mono.Config().Settlement.Execute,
		"min_profit", mono.Config().Settlement.MinProfit,
	)
	return nil
}
