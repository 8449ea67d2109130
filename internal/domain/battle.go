package domain

import "encoding/json"

// Winner values in a battle outcome.
const (
	WinnerAttacker = "attacker"
	WinnerDefender = "defender"
	WinnerDraw     = "draw"
)

// BattleOutcome is the summary the backend returns after resolving a
// battle. Immutable once returned; the bot never recomputes it.
type BattleOutcome struct {
	BattleID string `json:"battle_id"`
	Winner   string `json:"winner"`
	Rounds   int    `json:"rounds"`
}

// Battle is the full stored battle record. The bot exposes it for the
// external replay viewer and never interprets the log itself.
type Battle struct {
	ID         string          `json:"id"`
	AttackerID int64           `json:"attacker_id"`
	DefenderID *int64          `json:"defender_id,omitempty"`
	WinnerID   *int64          `json:"winner_id,omitempty"`
	BattleLog  json.RawMessage `json:"battle_log,omitempty"`
	CreatedAt  string          `json:"created_at"`
}
