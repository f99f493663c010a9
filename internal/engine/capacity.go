package engine

import "math"

// EffectiveCapacity is the total volume the profile can carry for the
// given item type, including the home-storage allowance. Unrecognized
// type labels carry nothing.
func (p CapacityProfile) EffectiveCapacity(typeLabel string, base CapacityProfile) int64 {
	switch typeLabel {
	case "Item":
		return p.ItemSlots*p.ItemSlotSize + base.ItemSlots*base.ItemSlotSize
	case "Cargo":
		return p.CargoSlots*p.CargoSlotSize + base.CargoSlots*base.CargoSlotSize
	}
	return 0
}

// ApplyCapacity caps a trade's quantity by what the profile can physically
// move and derives the profile's profit and profit per 1000 distance units.
// A zero or unknown distance makes the ratio NaN rather than Inf; such
// rows are excluded by the report's completeness filter.
func ApplyCapacity(m TradeMatch, p CapacityProfile, base CapacityProfile, dist float64) ProfileResult {
	capacity := p.EffectiveCapacity(m.ItemTypeLabel, base)

	var maxUnits int64
	if m.ItemVolume > 0 {
		maxUnits = capacity / m.ItemVolume
	}
	qty := m.TradeQuantity
	if maxUnits < qty {
		qty = maxUnits
	}
	profit := qty * m.UnitProfit

	ratio := math.NaN()
	if dist > 0 && !math.IsInf(dist, 0) && !math.IsNaN(dist) {
		ratio = round2(1000 * float64(profit) / dist)
	}
	return ProfileResult{Quantity: qty, Profit: profit, ProfitPer1kDist: ratio}
}
