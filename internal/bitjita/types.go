package bitjita

import (
	"bytes"
	"strconv"
)

// Item type codes used by the market endpoints.
const (
	TypeCodeItem  = 0
	TypeCodeCargo = 1
)

// Int64 decodes integer fields that the API serializes either as JSON
// numbers or as quoted strings (entity ids and quantities are bigints).
type Int64 int64

func (n *Int64) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Some quantity fields arrive as floats; fall back.
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return err
		}
		v = int64(f)
	}
	*n = Int64(v)
	return nil
}

func (n Int64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(n), 10)), nil
}

// Claim mirrors the claims/{id} response payload.
type Claim struct {
	EntityID   string  `json:"entityId"`
	Name       string  `json:"name"`
	RegionName string  `json:"regionName"`
	LocationX  float64 `json:"locationX"`
	LocationZ  float64 `json:"locationZ"`
}

// MarketItem mirrors one entry of the market summary response.
type MarketItem struct {
	ID       Int64  `json:"id"`
	Name     string `json:"name"`
	ItemType int    `json:"itemType"`
	Volume   Int64  `json:"volume"`
}

// TypeLabel returns the display label for the item's type code.
// Unrecognized codes report ok=false and are skipped by callers.
func (m MarketItem) TypeLabel() (label string, ok bool) {
	switch m.ItemType {
	case TypeCodeItem:
		return "Item", true
	case TypeCodeCargo:
		return "Cargo", true
	}
	return "", false
}

// PathSegment returns the lowercase order-book path segment for the type.
func (m MarketItem) PathSegment() string {
	if m.ItemType == TypeCodeCargo {
		return "cargo"
	}
	return "item"
}

// RawOrder is a single standing order as returned by market/{type}/{id}.
type RawOrder struct {
	PriceThreshold Int64  `json:"priceThreshold"`
	Quantity       Int64  `json:"quantity"`
	ClaimEntityID  string `json:"claimEntityId"`
	ClaimName      string `json:"claimName"`
	RegionName     string `json:"regionName"`
}

// OrderBook holds the two order sides for one item.
type OrderBook struct {
	BuyOrders  []RawOrder `json:"buyOrders"`
	SellOrders []RawOrder `json:"sellOrders"`
}
