package engine

import (
	"math"
	"sort"
)

// Report is the final column-labeled table plus its summary statistics.
type Report struct {
	Columns []string
	Rows    [][]interface{}
	Trades  []RankedTrade

	DistinctItems  int // distinct item names across kept rows
	DistinctClaims int // distinct claim names across both trade sides
}

// Empty reports whether the final table has no rows.
func (r *Report) Empty() bool { return len(r.Rows) == 0 }

// BuildReport enriches every match with distances and per-profile results,
// applies the completeness filter (rows with an unknown distance or a
// non-finite ratio are dropped), and stable-sorts descending by the
// primary profile's profit per 1k distance.
func BuildReport(homeClaimID string, matches []TradeMatch, resolver *DistanceResolver) *Report {
	primary := 0
	for i, p := range VehicleProfiles {
		if p.Name == PrimaryProfile {
			primary = i
		}
	}

	trades := make([]RankedTrade, 0, len(matches))
	for _, m := range matches {
		dist, ok := resolver.Lookup(m.CounterpartyID(homeClaimID))
		if !ok {
			continue
		}
		rt := RankedTrade{
			TradeMatch: m,
			Distance:   dist,
			Profiles:   make([]ProfileResult, len(VehicleProfiles)),
		}
		complete := true
		for i, p := range VehicleProfiles {
			rt.Profiles[i] = ApplyCapacity(m, p, PlayerCapacity, dist)
			r := rt.Profiles[i].ProfitPer1kDist
			if math.IsNaN(r) || math.IsInf(r, 0) {
				complete = false
			}
		}
		if !complete {
			continue
		}
		trades = append(trades, rt)
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Profiles[primary].ProfitPer1kDist > trades[j].Profiles[primary].ProfitPer1kDist
	})

	rep := &Report{
		Columns: reportColumns(),
		Trades:  trades,
	}
	items := make(map[string]bool)
	claims := make(map[string]bool)
	for _, t := range trades {
		rep.Rows = append(rep.Rows, t.row())
		items[t.ItemName] = true
		claims[t.SellingClaim] = true
		claims[t.BuyingClaim] = true
	}
	rep.DistinctItems = len(items)
	rep.DistinctClaims = len(claims)
	return rep
}

// reportColumns returns the display header, with internal join columns
// (raw ids, type code, volume) already pruned.
func reportColumns() []string {
	cols := []string{
		"Item",
		"Item Type",
		"Selling Price",
		"Selling Quantity",
		"Selling Claim",
		"Selling Region",
		"Buying Price",
		"Buying Quantity",
		"Buying Claim",
		"Buying Region",
		"Trade Quantity",
		"Unit Profit",
		"Distance",
	}
	for _, p := range VehicleProfiles {
		cols = append(cols,
			p.Name+" Quantity",
			p.Name+" Profit",
			p.Name+" Profit per 1k Dist",
		)
	}
	return cols
}

func (t RankedTrade) row() []interface{} {
	row := []interface{}{
		t.ItemName,
		t.ItemTypeLabel,
		t.SellingPrice,
		t.SellingQuantity,
		t.SellingClaim,
		t.SellingRegion,
		t.BuyingPrice,
		t.BuyingQuantity,
		t.BuyingClaim,
		t.BuyingRegion,
		t.TradeQuantity,
		t.UnitProfit,
		t.Distance,
	}
	for _, p := range t.Profiles {
		row = append(row, p.Quantity, p.Profit, p.ProfitPer1kDist)
	}
	return row
}
