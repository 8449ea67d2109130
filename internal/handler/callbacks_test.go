package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imperium-bot/internal/event"
	"imperium-bot/internal/render"
	"imperium-bot/internal/testutil"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "inventory:0",
			expected: "inventory:0",
		},
		{
			name:     "string with whitespace",
			input:    "  deck_slot:3  ",
			expected: "deck_slot:3",
		},
		{
			name:     "string with newline",
			input:    "pick\n_card:1:c1",
			expected: "pick_card:1:c1",
		},
		{
			name:     "string with tab",
			input:    "dungeon\t:easy",
			expected: "dungeon:easy",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "main\x00_menu\x01",
			expected: "main_menu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMarkup(t *testing.T) {
	h := &Handler{logger: testutil.NewTestLogger()}

	t.Run("no rows means no keyboard", func(t *testing.T) {
		assert.Nil(t, h.markup(&render.Screen{Text: "prompt"}))
	})

	t.Run("event buttons carry the encoded event", func(t *testing.T) {
		screen := &render.Screen{
			Rows: [][]render.Action{
				{
					{Label: "🎒 Инвентарь", Event: event.Event{Kind: event.KindInventoryPage}},
					{Label: "🃏 Колода", Event: event.Event{Kind: event.KindDeck}},
				},
				{
					{Label: "🔙 Меню", Event: event.Event{Kind: event.KindMainMenu}},
				},
			},
		}

		markup := h.markup(screen)

		require.NotNil(t, markup)
		require.Len(t, markup.InlineKeyboard, 2)
		require.Len(t, markup.InlineKeyboard[0], 2)
		assert.Equal(t, "🎒 Инвентарь", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "inventory:0", markup.InlineKeyboard[0][0].Unique)
		assert.Equal(t, "deck", markup.InlineKeyboard[0][1].Unique)
		assert.Equal(t, "main_menu", markup.InlineKeyboard[1][0].Unique)
	})

	t.Run("url actions become web app buttons", func(t *testing.T) {
		screen := &render.Screen{
			Rows: [][]render.Action{
				{{Label: "▶️ Смотреть бой", URL: "https://imperium.example?battle_id=b-1"}},
			},
		}

		markup := h.markup(screen)

		require.NotNil(t, markup)
		require.Len(t, markup.InlineKeyboard, 1)
		button := markup.InlineKeyboard[0][0]
		require.NotNil(t, button.WebApp)
		assert.Equal(t, "https://imperium.example?battle_id=b-1", button.WebApp.URL)
	})
}

func TestSendOptions(t *testing.T) {
	assert.Len(t, sendOptions(nil), 1, "HTML mode only without a keyboard")
	h := &Handler{logger: testutil.NewTestLogger()}
	markup := h.markup(&render.Screen{
		Rows: [][]render.Action{{{Label: "x", Event: event.Event{Kind: event.KindNoop}}}},
	})
	assert.Len(t, sendOptions(markup), 2)
}
