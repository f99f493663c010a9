package engine

import "testing"

const homeID = "home"

func sellRec(claimID string, price, qty int64) OrderRecord {
	return OrderRecord{
		ItemName: "Rough Plank", ItemTypeLabel: "Item", ItemID: 101, ItemVolume: 5,
		Price: price, Quantity: qty, ClaimID: claimID, ClaimName: "Claim " + claimID,
	}
}

func TestMatchOrders_SimpleMatch(t *testing.T) {
	sells := []OrderRecord{sellRec(homeID, 10, 100)}
	buys := []OrderRecord{sellRec("b", 15, 50)}

	matches := MatchOrders(homeID, sells, buys)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	m := matches[0]
	if m.UnitProfit != 5 {
		t.Errorf("UnitProfit = %d, want 5", m.UnitProfit)
	}
	if m.TradeQuantity != 50 {
		t.Errorf("TradeQuantity = %d, want 50", m.TradeQuantity)
	}
	if m.SellClaimID != homeID || m.BuyClaimID != "b" {
		t.Errorf("claims = %s/%s, want home/b", m.SellClaimID, m.BuyClaimID)
	}
}

func TestMatchOrders_UnprofitablePairDiscarded(t *testing.T) {
	sells := []OrderRecord{sellRec(homeID, 20, 10)}
	buys := []OrderRecord{sellRec("b", 15, 10)}
	if matches := MatchOrders(homeID, sells, buys); len(matches) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(matches))
	}
}

func TestMatchOrders_EqualPriceDiscarded(t *testing.T) {
	sells := []OrderRecord{sellRec(homeID, 15, 10)}
	buys := []OrderRecord{sellRec("b", 15, 10)}
	if matches := MatchOrders(homeID, sells, buys); len(matches) != 0 {
		t.Errorf("zero-profit pair kept: %d matches", len(matches))
	}
}

func TestMatchOrders_HomeParticipationRequired(t *testing.T) {
	sells := []OrderRecord{sellRec("a", 10, 10)}
	buys := []OrderRecord{sellRec("b", 15, 10)}
	if matches := MatchOrders(homeID, sells, buys); len(matches) != 0 {
		t.Errorf("non-home trade kept: %d matches", len(matches))
	}
}

func TestMatchOrders_HomeOnEitherSide(t *testing.T) {
	sells := []OrderRecord{sellRec("a", 10, 10)}
	buys := []OrderRecord{sellRec(homeID, 15, 10)}
	matches := MatchOrders(homeID, sells, buys)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	for _, m := range matches {
		if m.SellClaimID != homeID && m.BuyClaimID != homeID {
			t.Errorf("match without home participation: %+v", m)
		}
	}
}

func TestMatchOrders_CrossProductPerItem(t *testing.T) {
	// Two home sell orders at different prices against two remote buy
	// orders: the join is not keyed on price, so all four pairs appear.
	sells := []OrderRecord{sellRec(homeID, 5, 10), sellRec(homeID, 6, 10)}
	buys := []OrderRecord{sellRec("b", 15, 10), sellRec("c", 20, 10)}
	matches := MatchOrders(homeID, sells, buys)
	if len(matches) != 4 {
		t.Errorf("len(matches) = %d, want 4 (full cross product)", len(matches))
	}
}

func TestMatchOrders_EmptySide(t *testing.T) {
	sells := []OrderRecord{sellRec(homeID, 10, 10)}
	if matches := MatchOrders(homeID, sells, nil); len(matches) != 0 {
		t.Errorf("matches from empty buy pool: %d", len(matches))
	}
	if matches := MatchOrders(homeID, nil, sells); len(matches) != 0 {
		t.Errorf("matches from empty sell pool: %d", len(matches))
	}
}

func TestMatchOrders_DifferentItemsNotJoined(t *testing.T) {
	s := sellRec(homeID, 10, 10)
	b := sellRec("b", 15, 10)
	b.ItemID = 999
	if matches := MatchOrders(homeID, []OrderRecord{s}, []OrderRecord{b}); len(matches) != 0 {
		t.Errorf("records with different item ids joined: %d matches", len(matches))
	}
}

func TestMatchOrders_TradeQuantityIsMin(t *testing.T) {
	sells := []OrderRecord{sellRec(homeID, 10, 30)}
	buys := []OrderRecord{sellRec("b", 15, 80)}
	matches := MatchOrders(homeID, sells, buys)
	if len(matches) != 1 || matches[0].TradeQuantity != 30 {
		t.Fatalf("TradeQuantity = %v, want 30", matches)
	}
}
