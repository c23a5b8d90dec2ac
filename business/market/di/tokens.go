// Package di contains dependency injection tokens for the market context.
package di

import (
	arbApp "github.com/quantagov/quantum-arb/business/arbitrage/app"
	"github.com/quantagov/quantum-arb/internal/di"
)

// Public service tokens - exposed to other modules
var (
	SnapshotSource = di.NewToken[arbApp.SnapshotSource]("market.SnapshotSource")
)

// GetSnapshotSource resolves the snapshot source.
func GetSnapshotSource(c di.ServiceRegistry) arbApp.SnapshotSource {
	return di.GetToken(c, SnapshotSource)
}
