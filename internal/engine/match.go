package engine

// MatchOrders inner-joins an item's sell pool against its buy pool.
// The join keys on item identity only, never on price, so every sell order
// is paired with every buy order for the same item. Pairs are kept when
// either side is the home claim and the buy price strictly exceeds the
// sell price. Either pool being empty yields no matches.
func MatchOrders(homeClaimID string, sells, buys []OrderRecord) []TradeMatch {
	var matches []TradeMatch
	for _, s := range sells {
		for _, b := range buys {
			if s.ItemID != b.ItemID || s.ItemType != b.ItemType || s.ItemVolume != b.ItemVolume {
				continue
			}
			if s.ClaimID != homeClaimID && b.ClaimID != homeClaimID {
				continue
			}
			profit := b.Price - s.Price
			if profit <= 0 {
				continue
			}
			qty := s.Quantity
			if b.Quantity < qty {
				qty = b.Quantity
			}
			matches = append(matches, TradeMatch{
				ItemName:      s.ItemName,
				ItemTypeLabel: s.ItemTypeLabel,
				ItemID:        s.ItemID,
				ItemType:      s.ItemType,
				ItemVolume:    s.ItemVolume,

				SellingPrice:    s.Price,
				SellingQuantity: s.Quantity,
				SellClaimID:     s.ClaimID,
				SellingClaim:    s.ClaimName,
				SellingRegion:   s.RegionName,

				BuyingPrice:    b.Price,
				BuyingQuantity: b.Quantity,
				BuyClaimID:     b.ClaimID,
				BuyingClaim:    b.ClaimName,
				BuyingRegion:   b.RegionName,

				TradeQuantity: qty,
				UnitProfit:    profit,
			})
		}
	}
	return matches
}
