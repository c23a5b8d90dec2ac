// Package ui provides the Bubble Tea TUI for the arbitrage engine.
package ui

import (
	"time"

	"github.com/quantagov/quantum-arb/business/arbitrage/domain"
	marketDomain "github.com/quantagov/quantum-arb/business/market/domain"
)

// Message types for TUI updates

// OpportunityMsg is sent when a sizing run completes.
type OpportunityMsg struct {
	Opportunity *domain.Opportunity
}

// MarketUpdateMsg is sent when a fresh market snapshot arrives.
type MarketUpdateMsg struct {
	Snapshot *marketDomain.Snapshot
}

// ConnectionStatusMsg is sent when connection status changes.
type ConnectionStatusMsg struct {
	Name      string
	Connected bool
	Latency   time.Duration
}

// ErrorMsg is sent when an error occurs.
type ErrorMsg struct {
	Error error
}

// TickMsg is sent periodically for UI updates.
type TickMsg struct{}

// StartModulesMsg signals that modules should start loading.
type StartModulesMsg struct{}

// LogMsg is sent to display a log message in the UI.
type LogMsg struct {
	Level   string // "info", "warn", "error"
	Message string
}

// StartupMsg is sent during application startup to show progress.
type StartupMsg struct {
	Step    string // Current step name
	Status  string // "connecting", "connected", "failed"
	Message string // Optional message
}
