package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCard_Name(t *testing.T) {
	tests := []struct {
		name     string
		card     UserCard
		expected string
	}{
		{
			name: "definition name wins",
			card: UserCard{
				CardID:     "venom",
				Definition: &CardDefinition{Name: "Venom"},
			},
			expected: "Venom",
		},
		{
			name:     "falls back to card id",
			card:     UserCard{CardID: "venom"},
			expected: "venom",
		},
		{
			name:     "nothing known",
			card:     UserCard{},
			expected: "?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.card.Name())
		})
	}
}

func TestUserCard_Rarity(t *testing.T) {
	withDef := UserCard{Definition: &CardDefinition{Rarity: RarityEpic}}
	assert.Equal(t, RarityEpic, withDef.Rarity())

	withoutDef := UserCard{}
	assert.Equal(t, RarityCommon, withoutDef.Rarity())
}

func TestUserCard_Stats(t *testing.T) {
	card := UserCard{Definition: &CardDefinition{BaseHP: 30, BaseDamage: 7}}
	assert.Equal(t, 30, card.BaseHP())
	assert.Equal(t, 7, card.BaseDamage())

	bare := UserCard{}
	assert.Equal(t, 0, bare.BaseHP())
	assert.Equal(t, 0, bare.BaseDamage())
}
