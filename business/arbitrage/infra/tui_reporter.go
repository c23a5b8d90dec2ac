// Package infra contains infrastructure adapters for the arbitrage context.
package infra

import (
	"context"
	"time"

	"github.com/quantagov/quantum-arb/business/arbitrage/domain"
	marketDomain "github.com/quantagov/quantum-arb/business/market/domain"
	"github.com/quantagov/quantum-arb/internal/logger"
	"github.com/quantagov/quantum-arb/pkg/ui"
)

// TUIReporter implements Reporter for the Bubble Tea dashboard. The program
// itself is owned by main; the reporter only sends messages into it.
type TUIReporter struct {
	logger logger.LoggerInterface
}

// NewTUIReporter creates a new TUIReporter.
func NewTUIReporter(log logger.LoggerInterface) *TUIReporter {
	return &TUIReporter{logger: log}
}

// Start initializes the TUI reporter.
func (r *TUIReporter) Start(ctx context.Context) error {
	ui.Send(ui.StartupMsg{Step: "feed", Status: "connecting"})
	return nil
}

// Report sends a sizing result to the TUI.
func (r *TUIReporter) Report(opp *domain.Opportunity) {
	ui.Send(ui.OpportunityMsg{Opportunity: opp})
}

// UpdateMarket sends a fresh snapshot to the TUI.
func (r *TUIReporter) UpdateMarket(snap *marketDomain.Snapshot) {
	ui.Send(ui.MarketUpdateMsg{Snapshot: snap})
}

// UpdateConnectionStatus sends connection status to the TUI.
func (r *TUIReporter) UpdateConnectionStatus(name string, connected bool, latency time.Duration) {
	ui.Send(ui.ConnectionStatusMsg{
		Name:      name,
		Connected: connected,
		Latency:   latency,
	})
}

// Stop gracefully shuts down the TUI reporter.
func (r *TUIReporter) Stop() error {
	return nil
}
