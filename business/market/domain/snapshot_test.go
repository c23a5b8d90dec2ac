package domain

import (
	"encoding/json"
	"testing"
)

func validSnapshot() *Snapshot {
	return &Snapshot{
		MarketID: "gov-42",
		Sequence: 7,
		Spot:     PoolState{AssetReserve: 1000, StableReserve: 1000, FeeBps: 30},
		Conditionals: []PoolState{
			{AssetReserve: 1000, StableReserve: 1000, FeeBps: 30},
			{AssetReserve: 2000, StableReserve: 500, FeeBps: 30},
		},
	}
}

func TestSnapshotMarket(t *testing.T) {
	s := validSnapshot()

	m, err := s.Market()
	if err != nil {
		t.Fatalf("Market() error = %v", err)
	}
	if m.Outcomes() != 2 {
		t.Errorf("Outcomes() = %d, want 2", m.Outcomes())
	}
	if m.Spot.AssetReserve != 1000 || m.Spot.FeeBps != 30 {
		t.Errorf("spot pool mismatch: %+v", m.Spot)
	}
	if m.Conditionals[1].StableReserve != 500 || m.Conditionals[1].Outcome != 1 {
		t.Errorf("conditional 1 mismatch: %+v", m.Conditionals[1])
	}
}

func TestSnapshotMarketRejects(t *testing.T) {
	s := validSnapshot()
	s.MarketID = ""
	if _, err := s.Market(); err == nil {
		t.Error("Market() accepted a snapshot without an id")
	}

	s = validSnapshot()
	s.Conditionals = s.Conditionals[:1]
	if _, err := s.Market(); err == nil {
		t.Error("Market() accepted a single conditional pool")
	}

	s = validSnapshot()
	s.Spot.AssetReserve = 0
	if _, err := s.Market(); err == nil {
		t.Error("Market() accepted an empty spot reserve")
	}
}

func TestSnapshotHasHint(t *testing.T) {
	s := validSnapshot()
	if s.HasHint() {
		t.Error("hintless snapshot reported a hint")
	}
	s.HintHi = 500
	if !s.HasHint() {
		t.Error("snapshot with HintHi reported no hint")
	}
}

func TestSnapshotDecode(t *testing.T) {
	raw := `{
		"market_id": "gov-9",
		"sequence": 3,
		"spot": {"asset_reserve": 1000, "stable_reserve": 2000, "fee_bps": 30},
		"conditionals": [
			{"asset_reserve": 100, "stable_reserve": 100, "fee_bps": 0},
			{"asset_reserve": 200, "stable_reserve": 100, "fee_bps": 0}
		],
		"hint_lo": 10,
		"hint_hi": 90
	}`

	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if s.MarketID != "gov-9" || s.Sequence != 3 {
		t.Errorf("header mismatch: %+v", s)
	}
	if s.Spot.StableReserve != 2000 {
		t.Errorf("spot stable = %d, want 2000", s.Spot.StableReserve)
	}
	if len(s.Conditionals) != 2 || s.Conditionals[1].AssetReserve != 200 {
		t.Errorf("conditionals mismatch: %+v", s.Conditionals)
	}
	if !s.HasHint() || s.HintLo != 10 || s.HintHi != 90 {
		t.Errorf("hint mismatch: lo=%d hi=%d", s.HintLo, s.HintHi)
	}
}
