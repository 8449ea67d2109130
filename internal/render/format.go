package render

import (
	"fmt"
	"strings"

	"imperium-bot/internal/domain"
)

// rarityGlyphs is the fixed rarity-to-glyph correspondence.
var rarityGlyphs = map[string]string{
	domain.RarityCommon:    "⚪",
	domain.RarityUncommon:  "🟢",
	domain.RarityRare:      "🔵",
	domain.RarityEpic:      "🟣",
	domain.RarityLegendary: "🟠",
}

// RarityGlyph returns the glyph for a rarity. Anything unrecognized gets
// the common glyph rather than failing.
func RarityGlyph(rarity string) string {
	if glyph, ok := rarityGlyphs[rarity]; ok {
		return glyph
	}
	return "⚪"
}

// QualityStars renders card quality as repeated stars. The backend never
// reports quality below 1; a missing value renders as one star.
func QualityStars(quality int) string {
	if quality < 1 {
		quality = 1
	}
	return strings.Repeat("⭐", quality)
}

// dungeonNames maps tier ids to localized display names.
var dungeonNames = map[string]string{
	"easy":   "Лёгкий",
	"medium": "Средний",
	"hard":   "Сложный",
}

// DungeonName returns the display name for a tier id; unknown ids pass
// through verbatim.
func DungeonName(tier string) string {
	if name, ok := dungeonNames[tier]; ok {
		return name
	}
	return tier
}

// itemNames maps currency item ids to display names.
var itemNames = map[string]string{
	"bronze_key": "🔑 Бронзовый ключ",
	"silver_key": "🔑 Серебряный ключ",
	"gold_key":   "🔑 Золотой ключ",
}

// ItemName returns the display name for an item id; unknown ids pass
// through verbatim.
func ItemName(itemID string) string {
	if name, ok := itemNames[itemID]; ok {
		return name
	}
	if itemID == "" {
		return "?"
	}
	return itemID
}

// FormatLootResult renders one loot drop as a single line.
func FormatLootResult(r domain.LootResult) string {
	switch r.Type {
	case domain.LootCard:
		return fmt.Sprintf("%s <b>%s</b> %s", RarityGlyph(r.Rarity), r.CardID, QualityStars(r.Quality))
	case domain.LootItem:
		return "🎁 " + ItemName(r.ItemID)
	}
	return "???"
}

// cardLabel renders a card as a picker/inventory line.
func cardLabel(card domain.UserCard) string {
	return fmt.Sprintf("%s %s HP:%d DMG:%d %s",
		RarityGlyph(card.Rarity()), card.Name(), card.BaseHP(), card.BaseDamage(), QualityStars(card.Quality))
}
