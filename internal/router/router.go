package router

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"imperium-bot/internal/dialog"
	"imperium-bot/internal/domain"
	"imperium-bot/internal/event"
	"imperium-bot/internal/gateway"
	"imperium-bot/internal/pagination"
	"imperium-bot/internal/render"
)

// perPage is the page size for inventory browsing and the card picker.
const perPage = 5

// Response is what the transport shows the user after one event. The zero
// value means "acknowledge without visible update".
type Response struct {
	Screen *render.Screen // next screen; nil leaves the current UI untouched
	Notice string         // callback notice text
	Alert  bool           // show the notice as a blocking alert
}

// Router maps user events to gateway calls and screens. Failures never
// escape it: every gateway error becomes a user-facing notice.
type Router struct {
	gw     gateway.Gateway
	states *dialog.Store
	render *render.Renderer
	logger *zap.Logger
}

// New creates a router.
func New(gw gateway.Gateway, states *dialog.Store, r *render.Renderer, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{gw: gw, states: states, render: r, logger: logger}
}

func screen(s render.Screen) Response {
	return Response{Screen: &s}
}

func alert(text string) Response {
	return Response{Notice: text, Alert: true}
}

func alertError(err error) Response {
	return alert("Ошибка: " + err.Error())
}

// Start handles /start: best-effort registration plus the welcome screen.
// Registration failures are logged and ignored, matching the open
// registration model — the backend upserts the user on first sight.
func (r *Router) Start(ctx context.Context, userID int64, username string) Response {
	if _, err := r.gw.RegisterUser(ctx, userID, username); err != nil {
		r.logger.Warn("User registration failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
	return screen(r.render.Welcome())
}

// Dispatch handles one decoded callback event.
func (r *Router) Dispatch(ctx context.Context, userID int64, ev event.Event) Response {
	switch ev.Kind {
	case event.KindMainMenu:
		return screen(r.render.MainMenu())

	case event.KindInventoryPage:
		return r.inventoryPage(ctx, userID, ev.Page)

	case event.KindDeck:
		return r.deckOverview(ctx, userID)

	case event.KindDeckSlot:
		return r.cardPicker(ctx, userID, ev.Slot, 0)

	case event.KindDeckPickPage:
		return r.cardPicker(ctx, userID, ev.Slot, ev.Page)

	case event.KindPickCard:
		return r.pickCard(ctx, userID, ev.Slot, ev.CardID)

	case event.KindCase:
		return r.openCase(ctx, userID)

	case event.KindDungeonMenu:
		return r.dungeonMenu(ctx, userID)

	case event.KindDungeon:
		return r.enterDungeon(ctx, userID, ev.Dungeon)

	case event.KindPvP:
		return screen(r.render.PvPIntro(userID))

	case event.KindPvPEnterID:
		r.states.Set(userID, dialog.State{Flow: dialog.FlowAwaitingOpponentID})
		return screen(r.render.PvPPrompt())
	}

	// Noop and anything unrecognized: bare acknowledgement.
	return Response{}
}

// Text handles a free-text message. The dialog state machine is consulted
// only here: outside an active flow the text is ignored, and an active
// flow is cleared unconditionally before the input is even validated, so
// the user can always retry by re-selecting the entry action.
func (r *Router) Text(ctx context.Context, userID int64, text string) Response {
	state := r.states.Get(userID)
	if state.Flow != dialog.FlowAwaitingOpponentID {
		return Response{}
	}
	r.states.Reset(userID)

	defenderID, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return screen(r.render.Message("Неверный ID. Введи числовой Telegram ID."))
	}
	if defenderID == userID {
		return screen(r.render.Message("Нельзя сражаться с самим собой!"))
	}

	outcome, err := r.gw.BattlePvP(ctx, userID, defenderID)
	if err != nil {
		if isDeckError(err) {
			return screen(r.render.Message("Ошибка: у одного из игроков пустая колода!"))
		}
		return screen(r.render.Message("Ошибка: " + err.Error()))
	}

	return screen(r.render.PvPResult(outcome))
}

func (r *Router) inventoryPage(ctx context.Context, userID int64, page int) Response {
	cards, err := r.gw.Inventory(ctx, userID)
	if err != nil {
		return alertError(err)
	}
	if len(cards) == 0 {
		return screen(r.render.EmptyInventory())
	}
	return screen(r.render.Inventory(pagination.Paginate(cards, perPage, page)))
}

func (r *Router) deckOverview(ctx context.Context, userID int64) Response {
	deck, err := r.gw.Deck(ctx, userID)
	if err != nil {
		return alertError(err)
	}
	return screen(r.render.DeckOverview(deck))
}

func (r *Router) cardPicker(ctx context.Context, userID int64, slot, page int) Response {
	cards, err := r.gw.Inventory(ctx, userID)
	if err != nil {
		return alertError(err)
	}
	if len(cards) == 0 {
		return alert("Инвентарь пуст!")
	}
	return screen(r.render.CardPicker(slot, pagination.Paginate(cards, perPage, page)))
}

// pickCard is a read-modify-write without a compare-and-set: two
// concurrent picks for the same user race with last write winning.
// Acceptable interactively, one flow per user at a time.
func (r *Router) pickCard(ctx context.Context, userID int64, slot int, cardID string) Response {
	deck, err := r.gw.Deck(ctx, userID)
	if err != nil {
		return alertError(err)
	}

	slots := domain.UpsertSlot(domain.Assignments(deck), slot, cardID)
	if err := r.gw.SetDeck(ctx, userID, slots); err != nil {
		return alertError(err)
	}

	updated, err := r.gw.Deck(ctx, userID)
	if err != nil {
		// The write went through; show what we can.
		r.logger.Warn("Deck refresh failed after pick",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		updated = nil
	}

	resp := screen(r.render.DeckOverview(updated))
	resp.Notice = "Карта установлена!"
	return resp
}

func (r *Router) openCase(ctx context.Context, userID int64) Response {
	results, err := r.gw.OpenCase(ctx, userID)
	if err != nil {
		return alertError(err)
	}
	return screen(r.render.CaseResults(results))
}

func (r *Router) dungeonMenu(ctx context.Context, userID int64) Response {
	items, err := r.gw.Items(ctx, userID)
	if err != nil {
		r.logger.Warn("Items fetch failed, showing dungeon menu without keys",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		items = nil
	}
	return screen(r.render.DungeonMenu(items))
}

// enterDungeon is the composite flow: consume a key and grant loot, then
// resolve the battle. The key consumption commits on the backend before
// the battle runs, so a battle failure must not hide the granted loot —
// except the deck-empty case, where the user gets a direct instruction
// instead of a reward screen.
func (r *Router) enterDungeon(ctx context.Context, userID int64, tier string) Response {
	loot, err := r.gw.EnterDungeon(ctx, userID, tier)
	if err != nil {
		if reasonOf(err) == gateway.ReasonNotEnoughKeys {
			return alert("Недостаточно ключей!")
		}
		return alertError(err)
	}

	outcome, err := r.gw.BattlePvE(ctx, userID, tier)
	if err != nil {
		if reasonOf(err) == gateway.ReasonDeckEmpty {
			return alert("⚠️ Сначала собери колоду! Зайди в 🃏 Колода и добавь карты.")
		}
		r.logger.Warn("Dungeon battle failed, reporting loot only",
			zap.Int64("user_id", userID),
			zap.String("dungeon", tier),
			zap.Error(err),
		)
		outcome = nil
	}

	return screen(r.render.DungeonResult(tier, outcome, loot))
}

func reasonOf(err error) gateway.Reason {
	var apiErr *gateway.Error
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	return gateway.ReasonNone
}

// isDeckError matches any deck-related battle failure, not just the exact
// deck-empty message: either player's deck being unusable should read as
// a deck problem to the challenger.
func isDeckError(err error) bool {
	if reasonOf(err) == gateway.ReasonDeckEmpty {
		return true
	}
	var apiErr *gateway.Error
	if errors.As(err, &apiErr) {
		return strings.Contains(strings.ToLower(apiErr.Message), "deck")
	}
	return false
}
