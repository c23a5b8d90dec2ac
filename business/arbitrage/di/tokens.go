// Package di contains dependency injection tokens for the arbitrage context.
package di

import (
	"github.com/quantagov/quantum-arb/business/arbitrage/app"
	"github.com/quantagov/quantum-arb/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Detector = di.NewToken[*app.Detector]("arbitrage.Detector")
)

// Private dependency tokens - internal to arbitrage module
var (
	Optimizer = di.NewToken[*app.Optimizer]("arbitrage:optimizer")
	Reporter  = di.NewToken[app.Reporter]("arbitrage:reporter")
)

// GetDetector resolves the arbitrage detector.
func GetDetector(c di.ServiceRegistry) *app.Detector {
	return di.GetToken(c, Detector)
}

// GetOptimizer resolves the trade-size optimizer.
func GetOptimizer(c di.ServiceRegistry) *app.Optimizer {
	return di.GetToken(c, Optimizer)
}

// GetReporter resolves the opportunity reporter.
func GetReporter(c di.ServiceRegistry) app.Reporter {
	return di.GetToken(c, Reporter)
}
