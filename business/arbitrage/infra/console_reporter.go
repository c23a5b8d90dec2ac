// Package infra contains infrastructure adapters for the arbitrage context.
package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quantagov/quantum-arb/business/arbitrage/domain"
	marketDomain "github.com/quantagov/quantum-arb/business/market/domain"
	"github.com/quantagov/quantum-arb/internal/logger"
)

// ConsoleReporter implements Reporter for CLI output.
type ConsoleReporter struct {
	out    io.Writer
	logger logger.LoggerInterface
}

// NewConsoleReporter creates a new ConsoleReporter.
func NewConsoleReporter(log logger.LoggerInterface) *ConsoleReporter {
	return &ConsoleReporter{
		out:    os.Stdout,
		logger: log,
	}
}

// Start initializes the console reporter.
func (r *ConsoleReporter) Start(ctx context.Context) error {
	fmt.Fprintln(r.out, "Quantum Arbitrage Engine Started")
	fmt.Fprintln(r.out, "================================")
	return nil
}

// Report outputs a profitable sizing result to the console. Unprofitable
// runs are skipped to keep the CLI readable.
func (r *ConsoleReporter) Report(opp *domain.Opportunity) {
	if !opp.IsProfitable() {
		return
	}

	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintln(r.out, "ARBITRAGE OPPORTUNITY DETECTED")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintf(r.out, "Market:         %s\n", opp.MarketID)
	fmt.Fprintf(r.out, "Sequence:       #%d\n", opp.Sequence)
	fmt.Fprintf(r.out, "Timestamp:      %s\n", opp.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(r.out, "Direction:      %s\n", opp.Direction.String())
	fmt.Fprintf(r.out, "Outcomes:       %d\n", opp.Outcomes)
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "TRADE")
	fmt.Fprintf(r.out, "  Size:           %d\n", opp.Amount)
	fmt.Fprintf(r.out, "  Profit:         %d\n", opp.Profit)
	fmt.Fprintf(r.out, "  Edge:           %s bps\n", opp.EdgeBps.StringFixed(2))
	fmt.Fprintf(r.out, "  Evaluations:    %d\n", opp.Evaluations)
	fmt.Fprintln(r.out, "================================================================================")
}

// UpdateMarket is a no-op for the console; snapshots are too frequent to log.
func (r *ConsoleReporter) UpdateMarket(snap *marketDomain.Snapshot) {
}

// UpdateConnectionStatus outputs connection status changes.
func (r *ConsoleReporter) UpdateConnectionStatus(name string, connected bool, latency time.Duration) {
	status := "disconnected"
	if connected {
		status = fmt.Sprintf("connected (%s)", latency)
	}
	fmt.Fprintf(r.out, "[%s] %s: %s\n", time.Now().Format("15:04:05"), name, status)
}

// Stop gracefully shuts down the console reporter.
func (r *ConsoleReporter) Stop() error {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "Quantum Arbitrage Engine Stopped")
	return nil
}
