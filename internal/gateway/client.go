package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"imperium-bot/internal/domain"
)

// Client is the HTTP implementation of Gateway. Every operation is a
// single bounded-time round trip: no retries, because deck replacement
// and battle resolution are not safe to replay, and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a gateway client for the game API at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("gateway"),
	}
}

// do performs one request and decodes the response into out (skipped when
// out is nil). Non-2xx responses come back as a classified *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return TransportError(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return TransportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return TransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return TransportError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= 400 {
		apiErr := Classify(resp.StatusCode, string(data))
		c.logger.Warn("Backend error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return TransportError(fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

// RegisterUser creates the user record, idempotently on the backend side.
func (c *Client) RegisterUser(ctx context.Context, userID int64, username string) (*domain.User, error) {
	body := map[string]any{"id": userID, "username": username}
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/users", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Inventory fetches the user's card instances.
func (c *Client) Inventory(ctx context.Context, userID int64) ([]domain.UserCard, error) {
	var cards []domain.UserCard
	path := fmt.Sprintf("/users/%d/inventory", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Deck fetches the user's occupied deck slots.
func (c *Client) Deck(ctx context.Context, userID int64) ([]domain.DeckSlot, error) {
	var deck []domain.DeckSlot
	path := fmt.Sprintf("/users/%d/deck", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &deck); err != nil {
		return nil, err
	}
	return deck, nil
}

// SetDeck replaces the whole deck with the given slot assignments.
func (c *Client) SetDeck(ctx context.Context, userID int64, slots []domain.SlotAssignment) error {
	body := map[string]any{"slots": slots}
	path := fmt.Sprintf("/users/%d/deck", userID)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// Items fetches the user's currency item balances.
func (c *Client) Items(ctx context.Context, userID int64) ([]domain.UserItem, error) {
	var items []domain.UserItem
	path := fmt.Sprintf("/users/%d/items", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// OpenCase opens one loot case and returns the granted rewards.
func (c *Client) OpenCase(ctx context.Context, userID int64) ([]domain.LootResult, error) {
	body := map[string]any{"user_id": userID}
	var out struct {
		Results []domain.LootResult `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/loot/case", body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// EnterDungeon consumes a dungeon key and returns the granted loot.
func (c *Client) EnterDungeon(ctx context.Context, userID int64, dungeon string) ([]domain.LootResult, error) {
	body := map[string]any{"user_id": userID, "dungeon": dungeon}
	var out struct {
		Results []domain.LootResult `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/loot/dungeon", body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// BattlePvE resolves a dungeon battle for the user.
func (c *Client) BattlePvE(ctx context.Context, userID int64, dungeon string) (*domain.BattleOutcome, error) {
	body := map[string]any{"user_id": userID, "dungeon": dungeon}
	var outcome domain.BattleOutcome
	if err := c.do(ctx, http.MethodPost, "/battle/pve", body, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// BattlePvP resolves a battle between two players.
func (c *Client) BattlePvP(ctx context.Context, attackerID, defenderID int64) (*domain.BattleOutcome, error) {
	body := map[string]any{"attacker_id": attackerID, "defender_id": defenderID}
	var outcome domain.BattleOutcome
	if err := c.do(ctx, http.MethodPost, "/battle/pvp", body, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// Battle fetches a stored battle record by id.
func (c *Client) Battle(ctx context.Context, battleID string) (*domain.Battle, error) {
	var battle domain.Battle
	if err := c.do(ctx, http.MethodGet, "/battle/"+battleID, nil, &battle); err != nil {
		return nil, err
	}
	return &battle, nil
}
