package engine

import (
	"sort"

	"bc-mercantile/internal/bitjita"
)

// NormalizeOrders converts one side of an item's raw order book into a
// normalized pool: item metadata is attached to every order, and orders
// sharing the same (item, claim, price) key are collapsed into a single
// record with their quantities summed. Output is sorted by price, then
// claim id, and re-normalizing an output yields it unchanged.
func NormalizeOrders(item bitjita.MarketItem, typeLabel string, raw []bitjita.RawOrder) []OrderRecord {
	type key struct {
		price   int64
		claimID string
	}

	merged := make(map[key]*OrderRecord, len(raw))
	for _, o := range raw {
		k := key{int64(o.PriceThreshold), o.ClaimEntityID}
		if rec, ok := merged[k]; ok {
			rec.Quantity += int64(o.Quantity)
			continue
		}
		merged[k] = &OrderRecord{
			ItemName:      item.Name,
			ItemTypeLabel: typeLabel,
			ItemID:        int64(item.ID),
			ItemType:      item.ItemType,
			ItemVolume:    int64(item.Volume),
			Price:         int64(o.PriceThreshold),
			Quantity:      int64(o.Quantity),
			ClaimID:       o.ClaimEntityID,
			ClaimName:     o.ClaimName,
			RegionName:    o.RegionName,
		}
	}

	pool := make([]OrderRecord, 0, len(merged))
	for _, rec := range merged {
		pool = append(pool, *rec)
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].Price != pool[j].Price {
			return pool[i].Price < pool[j].Price
		}
		return pool[i].ClaimID < pool[j].ClaimID
	})
	return pool
}
