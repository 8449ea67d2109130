package testutil

import (
	"go.uber.org/zap"

	"imperium-bot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCard creates a card instance with an attached definition
func NewTestCard(id, cardID, name, rarity string, hp, damage, quality int) domain.UserCard {
	return domain.UserCard{
		ID:      id,
		CardID:  cardID,
		Quality: quality,
		Definition: &domain.CardDefinition{
			ID:         cardID,
			Name:       name,
			BaseHP:     hp,
			BaseDamage: damage,
			Rarity:     rarity,
		},
	}
}

// NewTestDeckSlot creates an occupied deck slot
func NewTestDeckSlot(slot int, card domain.UserCard) domain.DeckSlot {
	return domain.DeckSlot{Slot: slot, Card: card}
}

// NewCardLoot creates a card loot result
func NewCardLoot(cardID, rarity string, quality int) domain.LootResult {
	return domain.LootResult{
		Type:    domain.LootCard,
		CardID:  cardID,
		Rarity:  rarity,
		Quality: quality,
	}
}

// NewItemLoot creates an item loot result
func NewItemLoot(itemID string, quantity int) domain.LootResult {
	return domain.LootResult{
		Type:     domain.LootItem,
		ItemID:   itemID,
		Quantity: quantity,
	}
}
