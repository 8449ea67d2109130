package domain

// Loot result tags
const (
	LootCard = "card"
	LootItem = "item"
)

// LootResult is one unit of reward from a case or dungeon. Type selects
// which of the remaining fields are meaningful.
type LootResult struct {
	Type     string `json:"type"`
	CardID   string `json:"card_id,omitempty"`
	Rarity   string `json:"rarity,omitempty"`
	Quality  int    `json:"quality,omitempty"`
	ItemID   string `json:"item_id,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}
