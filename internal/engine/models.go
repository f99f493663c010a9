package engine

// OrderRecord is one normalized market order with item metadata attached.
// Within a pool no two records share the same (item, claim, price) key.
type OrderRecord struct {
	ItemName      string
	ItemTypeLabel string // "Item" or "Cargo"
	ItemID        int64
	ItemType      int
	ItemVolume    int64
	Price         int64
	Quantity      int64
	ClaimID       string
	ClaimName     string
	RegionName    string
}

// TradeMatch pairs one sell order against one buy order for the same item,
// where at least one side is the home claim and the buy price strictly
// exceeds the sell price.
type TradeMatch struct {
	ItemName      string
	ItemTypeLabel string
	ItemID        int64
	ItemType      int
	ItemVolume    int64

	SellingPrice    int64
	SellingQuantity int64
	SellClaimID     string
	SellingClaim    string
	SellingRegion   string

	BuyingPrice    int64
	BuyingQuantity int64
	BuyClaimID     string
	BuyingClaim    string
	BuyingRegion   string

	TradeQuantity int64 // min(selling, buying)
	UnitProfit    int64 // buying price - selling price
}

// CounterpartyID returns the claim id on the non-home side of the trade.
// For a home-to-home trade it returns the home id itself.
func (m TradeMatch) CounterpartyID(homeClaimID string) string {
	if m.BuyClaimID == homeClaimID {
		return m.SellClaimID
	}
	return m.BuyClaimID
}

// CapacityProfile is a named transport configuration bounding how many
// units can be moved in one trip.
type CapacityProfile struct {
	Name          string
	ItemSlots     int64
	CargoSlots    int64
	ItemSlotSize  int64
	CargoSlotSize int64
}

// PlayerCapacity is the home-storage allowance added to every vehicle.
var PlayerCapacity = CapacityProfile{
	Name:          "Player",
	ItemSlots:     25,
	CargoSlots:    1,
	ItemSlotSize:  6000,
	CargoSlotSize: 6000,
}

// VehicleProfiles are the transport configurations evaluated per trade,
// in report column order.
var VehicleProfiles = []CapacityProfile{
	{Name: "Raft", ItemSlots: 6, CargoSlots: 1, ItemSlotSize: 6000, CargoSlotSize: 60000},
	{Name: "Skiff", ItemSlots: 24, CargoSlots: 4, ItemSlotSize: 6000, CargoSlotSize: 60000},
	{Name: "Clipper", ItemSlots: 30, CargoSlots: 6, ItemSlotSize: 6000, CargoSlotSize: 60000},
	{Name: "Cargo Ship", ItemSlots: 30, CargoSlots: 10, ItemSlotSize: 6000, CargoSlotSize: 60000},
}

// PrimaryProfile is the profile whose profit-per-distance ranks the report.
const PrimaryProfile = "Cargo Ship"

// ProfileResult holds the capacity-capped outcome of a trade under one
// transport profile.
type ProfileResult struct {
	Quantity        int64
	Profit          int64
	ProfitPer1kDist float64
}

// RankedTrade is a TradeMatch enriched with its distance and the outcome
// under every vehicle profile (indexed as VehicleProfiles).
type RankedTrade struct {
	TradeMatch
	Distance float64
	Profiles []ProfileResult
}
