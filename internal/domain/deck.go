package domain

// DeckSize is the fixed number of deck slots.
const DeckSize = 5

// DeckSlot is one occupied position in a user's deck as the backend
// returns it. Slots the user has not filled are simply absent.
type DeckSlot struct {
	Slot int      `json:"slot"`
	Card UserCard `json:"card"`
}

// SlotAssignment is the writable form of a deck slot (PUT body element).
type SlotAssignment struct {
	Slot       int    `json:"slot"`
	UserCardID string `json:"user_card_id"`
}

// Assignments converts a fetched deck into the writable slot list.
func Assignments(deck []DeckSlot) []SlotAssignment {
	slots := make([]SlotAssignment, 0, len(deck))
	for _, entry := range deck {
		slots = append(slots, SlotAssignment{Slot: entry.Slot, UserCardID: entry.Card.ID})
	}
	return slots
}

// UpsertSlot assigns cardID to slot, replacing an existing assignment with
// the same slot number or appending a new one. Slot numbers stay unique.
func UpsertSlot(slots []SlotAssignment, slot int, cardID string) []SlotAssignment {
	updated := make([]SlotAssignment, len(slots))
	copy(updated, slots)
	for i := range updated {
		if updated[i].Slot == slot {
			updated[i].UserCardID = cardID
			return updated
		}
	}
	return append(updated, SlotAssignment{Slot: slot, UserCardID: cardID})
}
