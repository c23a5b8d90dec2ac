package app

import (
	"context"
	"time"

	"github.com/quantagov/quantum-arb/business/arbitrage/domain"
	marketDomain "github.com/quantagov/quantum-arb/business/market/domain"
)

// SnapshotSource delivers market snapshots from the governance runtime.
type SnapshotSource interface {
	// Subscribe starts the feed and returns the snapshot channel.
	Subscribe(ctx context.Context) (<-chan *marketDomain.Snapshot, error)

	// Close shuts the feed down.
	Close() error
}

// Reporter defines the interface for reporting arbitrage opportunities.
type Reporter interface {
	// Start initializes the reporter.
	Start(ctx context.Context) error

	// Report sends an arbitrage opportunity to be displayed/logged.
	Report(opp *domain.Opportunity)

	// UpdateMarket updates the market display for a fresh snapshot.
	UpdateMarket(snap *marketDomain.Snapshot)

	// UpdateConnectionStatus updates a connection status display.
	UpdateConnectionStatus(name string, connected bool, latency time.Duration)

	// Stop gracefully shuts down the reporter.
	Stop() error
}

// SettlementPort executes a winning trade against live pools. It is
// satisfied by the settlement executor; the detector only drives it when
// execution is enabled.
type SettlementPort interface {
	// Sync mirrors the latest authoritative pool state into the
	// settlement ledger before an attempt.
	Sync(marketID string, m domain.Market)

	Execute(ctx context.Context, marketID string, trade domain.Result, minProfit uint64, recipient string) error
}
