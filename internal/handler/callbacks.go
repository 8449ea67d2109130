package handler

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"imperium-bot/internal/event"
	"imperium-bot/internal/router"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	userID := c.Sender().ID

	// Buttons are built with the encoded event as their unique part. With
	// only the catch-all OnCallback handler registered, telebot does not
	// split the payload into Unique — the whole "\f<event>" string arrives
	// in Data, and cleanCallbackData strips the \f prefix. The Data path
	// is the normal one; Unique is checked first only for per-button
	// handlers, should any ever be registered.
	raw := cleanCallbackData(callback.Unique)
	if raw == "" {
		raw = cleanCallbackData(callback.Data)
	}

	ev, ok := event.Decode(raw)
	if !ok {
		h.logger.Warn("Unhandled callback",
			zap.String("data", raw),
			zap.Int64("user_id", userID),
		)
		return c.Respond()
	}

	resp := h.router.Dispatch(context.Background(), userID, ev)
	return h.applyResponse(c, resp)
}

// applyResponse delivers a router response for a callback-originated
// event: notices go out as callback answers, screens as message edits
// with a send fallback.
func (h *Handler) applyResponse(c tele.Context, resp router.Response) error {
	userID := c.Sender().ID

	if resp.Screen == nil {
		if resp.Notice != "" {
			return c.Respond(&tele.CallbackResponse{Text: resp.Notice, ShowAlert: resp.Alert})
		}
		return c.Respond()
	}

	acknowledged := false
	if resp.Notice != "" {
		if err := c.Respond(&tele.CallbackResponse{Text: resp.Notice, ShowAlert: resp.Alert}); err != nil {
			h.logger.Warn("Failed to answer callback", zap.Error(err))
		}
		acknowledged = true
	}

	markup := h.markup(resp.Screen)
	if err := c.Edit(resp.Screen.Text, sendOptions(markup)...); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(resp.Screen.Text, sendOptions(markup)...)
	}

	if acknowledged {
		return nil
	}
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback. Otherwise, acknowledge and return the error
// so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// If message is not modified, it was already edited by another callback:
	// acknowledge and stop, don't send a duplicate message.
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}
