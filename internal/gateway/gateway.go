package gateway

import (
	"context"

	"imperium-bot/internal/domain"
)

// Gateway defines the game backend operations the bot drives. Every call
// is a fresh round trip; the bot caches nothing beyond the current render.
type Gateway interface {
	RegisterUser(ctx context.Context, userID int64, username string) (*domain.User, error)
	Inventory(ctx context.Context, userID int64) ([]domain.UserCard, error)
	Deck(ctx context.Context, userID int64) ([]domain.DeckSlot, error)
	SetDeck(ctx context.Context, userID int64, slots []domain.SlotAssignment) error
	Items(ctx context.Context, userID int64) ([]domain.UserItem, error)
	OpenCase(ctx context.Context, userID int64) ([]domain.LootResult, error)
	EnterDungeon(ctx context.Context, userID int64, dungeon string) ([]domain.LootResult, error)
	BattlePvE(ctx context.Context, userID int64, dungeon string) (*domain.BattleOutcome, error)
	BattlePvP(ctx context.Context, attackerID, defenderID int64) (*domain.BattleOutcome, error)
	Battle(ctx context.Context, battleID string) (*domain.Battle, error)
}
