// Package di contains dependency injection tokens for the settlement context.
package di

import (
	"github.com/quantagov/quantum-arb/business/settlement/app"
	"github.com/quantagov/quantum-arb/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Executor = di.NewToken[*app.Executor]("settlement.Executor")
)

// Private dependency tokens - internal to settlement module
var (
	Ledger = di.NewToken[*app.Ledger]("settlement:ledger")
)

// GetExecutor resolves the settlement executor.
func GetExecutor(c di.ServiceRegistry) *app.Executor {
	return di.GetToken(c, Executor)
}

// GetLedger resolves the market ledger.
func GetLedger(c di.ServiceRegistry) *app.Ledger {
	return di.GetToken(c, Ledger)
}
