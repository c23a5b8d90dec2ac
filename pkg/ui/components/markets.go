package components

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// MarketRow represents one tracked market in the table.
type MarketRow struct {
	MarketID      string
	Outcomes      int
	SpotAsset     uint64
	SpotStable    uint64
	SpotFeeBps    uint16
	Sequence      uint64
	LastSnapshot  time.Time
}

// MarketsComponent renders the tracked-markets table.
type MarketsComponent struct {
	rows map[string]MarketRow
}

// NewMarketsComponent creates a new markets component.
func NewMarketsComponent() *MarketsComponent {
	return &MarketsComponent{
		rows: make(map[string]MarketRow),
	}
}

// Update upserts one market's latest state.
func (m *MarketsComponent) Update(row MarketRow) {
	m.rows[row.MarketID] = row
}

// Count returns the number of tracked markets.
func (m *MarketsComponent) Count() int {
	return len(m.rows)
}

// View renders the markets component.
func (m *MarketsComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	staleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("MARKETS"))
	sb.WriteString("\n\n")

	if len(m.rows) == 0 {
		sb.WriteString(dimStyle.Render("  Waiting for snapshots..."))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  %-14s %8s %14s %14s %6s %8s %8s\n",
		"Market", "Outcomes", "Spot Asset", "Spot Stable", "Fee", "Seq", "Age"))
	sb.WriteString(dimStyle.Render("  " + strings.Repeat("─", 78)))
	sb.WriteString("\n")

	ids := make([]string, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		row := m.rows[id]
		age := time.Since(row.LastSnapshot).Round(time.Second)
		ageStr := age.String()
		ageStyle := dimStyle
		if age > 5*time.Second {
			ageStyle = staleStyle
		}

		sb.WriteString(fmt.Sprintf("  %-14s %8d %14d %14d %5.2f%% %8d %s\n",
			truncate(row.MarketID, 14),
			row.Outcomes,
			row.SpotAsset,
			row.SpotStable,
			float64(row.SpotFeeBps)/100,
			row.Sequence,
			ageStyle.Render(fmt.Sprintf("%8s", ageStr)),
		))
	}

	return sb.String()
}
