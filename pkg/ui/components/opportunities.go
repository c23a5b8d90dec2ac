// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// OpportunityRow represents an opportunity in the list.
type OpportunityRow struct {
	Timestamp  string
	MarketID   string
	Sequence   uint64
	Direction  string
	Amount     uint64
	Profit     uint64
	EdgeBps    decimal.Decimal
	Outcomes   int
	Evals      int
	Profitable bool
	Status     string
}

// OpportunitiesComponent renders the opportunities list.
type OpportunitiesComponent struct {
	rows    []OpportunityRow
	maxRows int
	offset  int
	visible int
}

// NewOpportunitiesComponent creates a new opportunities component.
func NewOpportunitiesComponent(maxRows int) *OpportunitiesComponent {
	return &OpportunitiesComponent{
		rows:    make([]OpportunityRow, 0),
		maxRows: maxRows,
		visible: 10,
	}
}

// Add adds a new opportunity to the top of the list.
func (o *OpportunitiesComponent) Add(row OpportunityRow) {
	o.rows = append([]OpportunityRow{row}, o.rows...)
	if len(o.rows) > o.maxRows {
		o.rows = o.rows[:o.maxRows]
	}
}

// Clear clears all opportunities.
func (o *OpportunitiesComponent) Clear() {
	o.rows = make([]OpportunityRow, 0)
	o.offset = 0
}

// ScrollUp scrolls the list toward newer rows.
func (o *OpportunitiesComponent) ScrollUp() {
	if o.offset > 0 {
		o.offset--
	}
}

// ScrollDown scrolls the list toward older rows.
func (o *OpportunitiesComponent) ScrollDown() {
	if o.offset+o.visible < len(o.rows) {
		o.offset++
	}
}

// View renders the opportunities component.
func (o *OpportunitiesComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	profitableStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	unprofitableStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	if len(o.rows) == 0 {
		return headerStyle.Render("OPPORTUNITIES") + "\n\n  No opportunities detected yet..."
	}

	result := headerStyle.Render(fmt.Sprintf("OPPORTUNITIES (last %d)\n", o.maxRows))
	result += "┌──────────┬────────────┬──────┬───────────┬────────────┬────────────┬─────────┬───────┐\n"
	result += "│   Time   │   Market   │ Seq  │ Direction │   Amount   │   Profit   │  Edge   │ Evals │\n"
	result += "├──────────┼────────────┼──────┼───────────┼────────────┼────────────┼─────────┼───────┤\n"

	end := o.offset + o.visible
	if end > len(o.rows) {
		end = len(o.rows)
	}

	for _, row := range o.rows[o.offset:end] {
		style := profitableStyle
		if !row.Profitable {
			style = unprofitableStyle
		}

		line := fmt.Sprintf("│ %-8s │ %-10s │%5d │ %-9s │ %10d │ %10d │ %6sbp │ %5d │",
			row.Timestamp,
			truncate(row.MarketID, 10),
			row.Sequence,
			row.Direction,
			row.Amount,
			row.Profit,
			row.EdgeBps.StringFixed(1),
			row.Evals,
		)
		result += style.Render(line) + "\n"
	}

	result += "└──────────┴────────────┴──────┴───────────┴────────────┴────────────┴─────────┴───────┘"

	return result
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
