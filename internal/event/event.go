package event

import (
	"strconv"
	"strings"
)

// Kind discriminates the callback events the router recognizes.
type Kind int

const (
	KindNone Kind = iota
	KindMainMenu
	KindInventoryPage
	KindDeck
	KindDeckSlot
	KindDeckPickPage
	KindPickCard
	KindCase
	KindDungeonMenu
	KindDungeon
	KindPvP
	KindPvPEnterID
	KindNoop
)

// Event is one decoded callback action. Only the fields relevant to the
// kind are set. Keyboards are built from these events and the router
// dispatches on them, so a button can never carry an action the router
// does not understand.
type Event struct {
	Kind    Kind
	Page    int
	Slot    int
	CardID  string
	Dungeon string
}

// Encode renders the event as callback data. The format is shared with
// Decode and is the only coupling between keyboards and dispatch.
func (e Event) Encode() string {
	switch e.Kind {
	case KindMainMenu:
		return "main_menu"
	case KindInventoryPage:
		return "inventory:" + strconv.Itoa(e.Page)
	case KindDeck:
		return "deck"
	case KindDeckSlot:
		return "deck_slot:" + strconv.Itoa(e.Slot)
	case KindDeckPickPage:
		return "deck_pick_page:" + strconv.Itoa(e.Slot) + ":" + strconv.Itoa(e.Page)
	case KindPickCard:
		return "pick_card:" + strconv.Itoa(e.Slot) + ":" + e.CardID
	case KindCase:
		return "case"
	case KindDungeonMenu:
		return "dungeon_menu"
	case KindDungeon:
		return "dungeon:" + e.Dungeon
	case KindPvP:
		return "pvp"
	case KindPvPEnterID:
		return "pvp_enter_id"
	case KindNoop:
		return "noop"
	}
	return ""
}

// Decode parses callback data back into an event. Unknown or malformed
// data yields ok == false; the transport acknowledges such callbacks
// without any UI change.
func Decode(data string) (Event, bool) {
	switch data {
	case "main_menu":
		return Event{Kind: KindMainMenu}, true
	case "deck":
		return Event{Kind: KindDeck}, true
	case "case":
		return Event{Kind: KindCase}, true
	case "dungeon_menu":
		return Event{Kind: KindDungeonMenu}, true
	case "pvp":
		return Event{Kind: KindPvP}, true
	case "pvp_enter_id":
		return Event{Kind: KindPvPEnterID}, true
	case "noop":
		return Event{Kind: KindNoop}, true
	}

	head, rest, found := strings.Cut(data, ":")
	if !found {
		return Event{}, false
	}

	switch head {
	case "inventory":
		page, err := strconv.Atoi(rest)
		if err != nil {
			return Event{}, false
		}
		return Event{Kind: KindInventoryPage, Page: page}, true

	case "deck_slot":
		slot, err := strconv.Atoi(rest)
		if err != nil {
			return Event{}, false
		}
		return Event{Kind: KindDeckSlot, Slot: slot}, true

	case "deck_pick_page":
		slotStr, pageStr, ok := strings.Cut(rest, ":")
		if !ok {
			return Event{}, false
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil {
			return Event{}, false
		}
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return Event{}, false
		}
		return Event{Kind: KindDeckPickPage, Slot: slot, Page: page}, true

	case "pick_card":
		slotStr, cardID, ok := strings.Cut(rest, ":")
		if !ok || cardID == "" {
			return Event{}, false
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil {
			return Event{}, false
		}
		return Event{Kind: KindPickCard, Slot: slot, CardID: cardID}, true

	case "dungeon":
		if rest == "" {
			return Event{}, false
		}
		return Event{Kind: KindDungeon, Dungeon: rest}, true
	}

	return Event{}, false
}
