package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"imperium-bot/internal/domain"
)

// MockGateway is a mock for gateway.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) RegisterUser(ctx context.Context, userID int64, username string) (*domain.User, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockGateway) Inventory(ctx context.Context, userID int64) ([]domain.UserCard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCard), args.Error(1)
}

func (m *MockGateway) Deck(ctx context.Context, userID int64) ([]domain.DeckSlot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeckSlot), args.Error(1)
}

func (m *MockGateway) SetDeck(ctx context.Context, userID int64, slots []domain.SlotAssignment) error {
	args := m.Called(ctx, userID, slots)
	return args.Error(0)
}

func (m *MockGateway) Items(ctx context.Context, userID int64) ([]domain.UserItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserItem), args.Error(1)
}

func (m *MockGateway) OpenCase(ctx context.Context, userID int64) ([]domain.LootResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LootResult), args.Error(1)
}

func (m *MockGateway) EnterDungeon(ctx context.Context, userID int64, dungeon string) ([]domain.LootResult, error) {
	args := m.Called(ctx, userID, dungeon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LootResult), args.Error(1)
}

func (m *MockGateway) BattlePvE(ctx context.Context, userID int64, dungeon string) (*domain.BattleOutcome, error) {
	args := m.Called(ctx, userID, dungeon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BattleOutcome), args.Error(1)
}

func (m *MockGateway) BattlePvP(ctx context.Context, attackerID, defenderID int64) (*domain.BattleOutcome, error) {
	args := m.Called(ctx, attackerID, defenderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BattleOutcome), args.Error(1)
}

func (m *MockGateway) Battle(ctx context.Context, battleID string) (*domain.Battle, error) {
	args := m.Called(ctx, battleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}
