package domain

// Rarity identifiers the backend uses for card definitions
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// CardDefinition describes a card archetype. Owned by the backend; the bot
// only holds copies fetched per request.
type CardDefinition struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BaseHP     int    `json:"base_hp"`
	BaseDamage int    `json:"base_damage"`
	Rarity     string `json:"rarity"`
}

// UserCard is one card instance in a user's inventory.
type UserCard struct {
	ID         string          `json:"id"`
	CardID     string          `json:"card_id"`
	Quality    int             `json:"quality"`
	Definition *CardDefinition `json:"definition,omitempty"`
}

// Name returns the display name, falling back to the card id when the
// backend did not attach a definition.
func (c UserCard) Name() string {
	if c.Definition != nil && c.Definition.Name != "" {
		return c.Definition.Name
	}
	if c.CardID != "" {
		return c.CardID
	}
	return "?"
}

// Rarity returns the definition rarity, defaulting to common.
func (c UserCard) Rarity() string {
	if c.Definition != nil && c.Definition.Rarity != "" {
		return c.Definition.Rarity
	}
	return RarityCommon
}

// BaseHP returns the definition hit points, 0 without a definition.
func (c UserCard) BaseHP() int {
	if c.Definition != nil {
		return c.Definition.BaseHP
	}
	return 0
}

// BaseDamage returns the definition damage, 0 without a definition.
func (c UserCard) BaseDamage() int {
	if c.Definition != nil {
		return c.Definition.BaseDamage
	}
	return 0
}
