package render

import (
	"fmt"
	"strings"

	"imperium-bot/internal/domain"
	"imperium-bot/internal/event"
	"imperium-bot/internal/pagination"
)

// Action is one inline button: a label plus the event it feeds back into
// the router. URL is set instead of Event for the replay web-app button.
type Action struct {
	Label string
	Event event.Event
	URL   string
}

// Screen is a fully rendered reply: message text plus keyboard rows.
type Screen struct {
	Text string
	Rows [][]Action
}

// Renderer builds screens from backend data. All methods are pure.
type Renderer struct {
	miniAppURL string
}

// NewRenderer creates a renderer; miniAppURL is the replay viewer base.
func NewRenderer(miniAppURL string) *Renderer {
	return &Renderer{miniAppURL: miniAppURL}
}

func mainMenuRows() [][]Action {
	return [][]Action{
		{
			{Label: "🎒 Инвентарь", Event: event.Event{Kind: event.KindInventoryPage}},
			{Label: "🃏 Колода", Event: event.Event{Kind: event.KindDeck}},
		},
		{
			{Label: "📦 Кейс", Event: event.Event{Kind: event.KindCase}},
			{Label: "⚔️ Данж", Event: event.Event{Kind: event.KindDungeonMenu}},
		},
		{
			{Label: "🏆 PvP", Event: event.Event{Kind: event.KindPvP}},
		},
	}
}

func menuRow() []Action {
	return []Action{{Label: "🔙 Меню", Event: event.Event{Kind: event.KindMainMenu}}}
}

func (r *Renderer) battleRows(battleID string) [][]Action {
	return [][]Action{
		{{Label: "▶️ Смотреть бой", URL: fmt.Sprintf("%s?battle_id=%s", r.miniAppURL, battleID)}},
		menuRow(),
	}
}

// Welcome is the /start greeting.
func (r *Renderer) Welcome() Screen {
	return Screen{
		Text: "🏰 <b>Добро пожаловать в Imperium!</b>\n\n" +
			"Собирай карты, собирай колоду и сражайся!",
		Rows: mainMenuRows(),
	}
}

// MainMenu is the top-level menu screen.
func (r *Renderer) MainMenu() Screen {
	return Screen{
		Text: "🏰 <b>Imperium</b> — Главное меню",
		Rows: mainMenuRows(),
	}
}

// Message wraps free-form text with the main menu keyboard.
func (r *Renderer) Message(text string) Screen {
	return Screen{Text: text, Rows: mainMenuRows()}
}

// Inventory renders one page of the user's cards.
func (r *Renderer) Inventory(page pagination.Page[domain.UserCard]) Screen {
	lines := []string{"🎒 <b>Инвентарь</b>\n"}
	for _, card := range page.Items {
		lines = append(lines, fmt.Sprintf("%s <b>%s</b> — HP:%d DMG:%d %s",
			RarityGlyph(card.Rarity()), card.Name(), card.BaseHP(), card.BaseDamage(), QualityStars(card.Quality)))
	}

	nav := []Action{}
	if page.HasPrev {
		nav = append(nav, Action{Label: "⬅️", Event: event.Event{Kind: event.KindInventoryPage, Page: page.Index - 1}})
	}
	nav = append(nav, Action{
		Label: fmt.Sprintf("%d/%d", page.Index+1, page.TotalPages),
		Event: event.Event{Kind: event.KindNoop},
	})
	if page.HasNext {
		nav = append(nav, Action{Label: "➡️", Event: event.Event{Kind: event.KindInventoryPage, Page: page.Index + 1}})
	}

	return Screen{
		Text: strings.Join(lines, "\n"),
		Rows: [][]Action{nav, menuRow()},
	}
}

// EmptyInventory is shown when the user owns no cards.
func (r *Renderer) EmptyInventory() Screen {
	return Screen{
		Text: "🎒 <b>Инвентарь пуст</b>\n\nОткрой кейс, чтобы получить карты!",
		Rows: [][]Action{
			{{Label: "1/1", Event: event.Event{Kind: event.KindNoop}}},
			menuRow(),
		},
	}
}

// DeckOverview shows all five slots, occupied or empty, as buttons.
func (r *Renderer) DeckOverview(deck []domain.DeckSlot) Screen {
	rows := make([][]Action, 0, domain.DeckSize+1)
	for slot := 1; slot <= domain.DeckSize; slot++ {
		label := fmt.Sprintf("Слот %d: пусто", slot)
		for _, entry := range deck {
			if entry.Slot == slot {
				label = fmt.Sprintf("Слот %d: %s %s", slot, RarityGlyph(entry.Card.Rarity()), entry.Card.Name())
				break
			}
		}
		rows = append(rows, []Action{{Label: label, Event: event.Event{Kind: event.KindDeckSlot, Slot: slot}}})
	}
	rows = append(rows, menuRow())

	return Screen{
		Text: "🃏 <b>Твоя колода</b>\n\nВыбери слот, чтобы заменить карту:",
		Rows: rows,
	}
}

// CardPicker renders one page of inventory cards to fill the given slot.
func (r *Renderer) CardPicker(slot int, page pagination.Page[domain.UserCard]) Screen {
	rows := make([][]Action, 0, len(page.Items)+2)
	for _, card := range page.Items {
		rows = append(rows, []Action{{
			Label: cardLabel(card),
			Event: event.Event{Kind: event.KindPickCard, Slot: slot, CardID: card.ID},
		}})
	}

	nav := []Action{}
	if page.HasPrev {
		nav = append(nav, Action{Label: "⬅️", Event: event.Event{Kind: event.KindDeckPickPage, Slot: slot, Page: page.Index - 1}})
	}
	if page.TotalPages > 1 {
		nav = append(nav, Action{
			Label: fmt.Sprintf("%d/%d", page.Index+1, page.TotalPages),
			Event: event.Event{Kind: event.KindNoop},
		})
	}
	if page.HasNext {
		nav = append(nav, Action{Label: "➡️", Event: event.Event{Kind: event.KindDeckPickPage, Slot: slot, Page: page.Index + 1}})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, []Action{{Label: "🔙 Колода", Event: event.Event{Kind: event.KindDeck}}})

	return Screen{
		Text: fmt.Sprintf("🃏 Выбери карту для <b>слота %d</b>:", slot),
		Rows: rows,
	}
}

// CaseResults lists the rewards from an opened case.
func (r *Renderer) CaseResults(results []domain.LootResult) Screen {
	lines := []string{"📦 <b>Открытие кейса...</b>\n"}
	for _, result := range results {
		lines = append(lines, "  "+FormatLootResult(result))
	}
	return Screen{
		Text: strings.Join(lines, "\n"),
		Rows: mainMenuRows(),
	}
}

// DungeonMenu shows key balances and the tier choices.
func (r *Renderer) DungeonMenu(items []domain.UserItem) Screen {
	var b strings.Builder
	b.WriteString("⚔️ <b>Данжи</b>\n\n")
	if len(items) > 0 {
		b.WriteString("Твои ключи:\n")
		for i, item := range items {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%s: %d", ItemName(item.ItemType), item.Quantity))
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString("У тебя нет ключей. Открой кейсы!\n\n")
	}
	b.WriteString("Выбери данж:")

	return Screen{
		Text: b.String(),
		Rows: [][]Action{
			{{Label: "🟢 Лёгкий (🔑 бронзовый ключ)", Event: event.Event{Kind: event.KindDungeon, Dungeon: "easy"}}},
			{{Label: "🟡 Средний (🔑 серебряный ключ)", Event: event.Event{Kind: event.KindDungeon, Dungeon: "medium"}}},
			{{Label: "🔴 Сложный (🔑 золотой ключ)", Event: event.Event{Kind: event.KindDungeon, Dungeon: "hard"}}},
			menuRow(),
		},
	}
}

// DungeonResult shows the dungeon reward, with a battle section when the
// battle resolved. outcome may be nil: the loot is reported alone.
func (r *Renderer) DungeonResult(tier string, outcome *domain.BattleOutcome, loot []domain.LootResult) Screen {
	lines := []string{fmt.Sprintf("⚔️ <b>Данж: %s</b>\n", DungeonName(tier))}

	if outcome != nil {
		switch outcome.Winner {
		case domain.WinnerAttacker:
			lines = append(lines, "🎉 Победа!\n")
		case domain.WinnerDefender:
			lines = append(lines, "💀 Поражение...\n")
		default:
			if outcome.Winner != "" {
				lines = append(lines, "🤝 Ничья!\n")
			}
		}
		if outcome.Rounds > 0 {
			lines = append(lines, fmt.Sprintf("Раундов: %d\n", outcome.Rounds))
		}
	}

	lines = append(lines, "Награда:")
	for _, result := range loot {
		lines = append(lines, "  "+FormatLootResult(result))
	}

	rows := mainMenuRows()
	if outcome != nil && outcome.BattleID != "" {
		rows = r.battleRows(outcome.BattleID)
	}

	return Screen{
		Text: strings.Join(lines, "\n"),
		Rows: rows,
	}
}

// PvPIntro shows the arena screen with the user's own id to share.
func (r *Renderer) PvPIntro(userID int64) Screen {
	return Screen{
		Text: fmt.Sprintf("🏆 <b>PvP Арена</b>\n\n"+
			"Твой ID: <code>%d</code>\n"+
			"Отправь свой ID другу, чтобы он мог бросить тебе вызов!", userID),
		Rows: [][]Action{
			{{Label: "⚔️ Ввести ID противника", Event: event.Event{Kind: event.KindPvPEnterID}}},
			menuRow(),
		},
	}
}

// PvPPrompt asks for the opponent id. No keyboard: the reply is free text.
func (r *Renderer) PvPPrompt() Screen {
	return Screen{Text: "🏆 Введи Telegram ID противника:"}
}

// PvPResult shows the outcome of a player-versus-player battle.
func (r *Renderer) PvPResult(outcome *domain.BattleOutcome) Screen {
	var result string
	switch outcome.Winner {
	case domain.WinnerAttacker:
		result = "🎉 Ты победил!"
	case domain.WinnerDefender:
		result = "💀 Ты проиграл..."
	default:
		result = "🤝 Ничья!"
	}

	return Screen{
		Text: fmt.Sprintf("🏆 <b>PvP Бой</b>\n\n%s\nРаундов: %d", result, outcome.Rounds),
		Rows: r.battleRows(outcome.BattleID),
	}
}
