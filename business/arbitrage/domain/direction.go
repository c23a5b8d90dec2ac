// Package domain contains the core domain types for the arbitrage context.
package domain

// Direction represents the arbitrage trade direction between the spot
// market and the conditional markets.
type Direction string

const (
	// SpotToConditional means sell asset on spot, recombine a complete
	// set from the conditional pools.
	SpotToConditional Direction = "SPOT_TO_CONDITIONAL"

	// ConditionalToSpot means mint a complete set from the conditional
	// pools, sell the recombined asset on spot.
	ConditionalToSpot Direction = "CONDITIONAL_TO_SPOT"
)

// String returns a human-readable description of the direction.
func (d Direction) String() string {
	switch d {
	case SpotToConditional:
		return "Spot → Conditional (sell spot, recombine from outcomes)"
	case ConditionalToSpot:
		return "Conditional → Spot (mint complete set, sell spot)"
	default:
		return "Unknown"
	}
}
