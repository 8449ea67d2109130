package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"imperium-bot/internal/render"
	"imperium-bot/internal/router"
)

// Handler adapts Telegram updates to router events and router responses
// back to Telegram messages, edits and callback answers.
type Handler struct {
	bot    *tele.Bot
	router *router.Router
	logger *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(bot *tele.Bot, r *router.Router, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		router: r,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers.
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleStart handles the /start command.
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	resp := h.router.Start(context.Background(), sender.ID, sender.Username)
	return h.sendResponse(c, resp)
}

// handleText handles free-text messages; the router decides from dialog
// state whether the text means anything.
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	resp := h.router.Text(context.Background(), c.Sender().ID, text)
	return h.sendResponse(c, resp)
}

// sendResponse delivers a router response for a message-originated event:
// always a new message, never an edit.
func (h *Handler) sendResponse(c tele.Context, resp router.Response) error {
	if resp.Screen == nil {
		return nil
	}
	return c.Send(resp.Screen.Text, sendOptions(h.markup(resp.Screen))...)
}

// markup converts screen rows into an inline keyboard. Screens without
// rows return nil so editing drops the previous keyboard.
func (h *Handler) markup(screen *render.Screen) *tele.ReplyMarkup {
	if len(screen.Rows) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(screen.Rows))
	for _, row := range screen.Rows {
		buttons := make(tele.Row, 0, len(row))
		for _, action := range row {
			if action.URL != "" {
				buttons = append(buttons, tele.Btn{
					Text:   action.Label,
					WebApp: &tele.WebApp{URL: action.URL},
				})
				continue
			}
			buttons = append(buttons, markup.Data(action.Label, action.Event.Encode()))
		}
		rows = append(rows, markup.Row(buttons...))
	}
	markup.Inline(rows...)
	return markup
}

func sendOptions(markup *tele.ReplyMarkup) []interface{} {
	if markup == nil {
		return []interface{}{tele.ModeHTML}
	}
	return []interface{}{markup, tele.ModeHTML}
}
