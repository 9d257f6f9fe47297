package handler

import (
	"context"
	"errors"

	"BrainTrainer/internal/coach"
	"BrainTrainer/internal/observability"

	"github.com/gorilla/websocket"
)

// manageTextSession relays every text frame through the coach until the
// client disconnects.
func (h *Handler) manageTextSession(ctx context.Context, conn *websocket.Conn, userID string) {
	log := h.log.With("user_id", userID)
	log.Debug("coach text session started")

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("coach read failed", "error", err)
			}
			break ReadLoop
		}

		if messageType != websocket.TextMessage {
			log.Debug("ignoring non-text frame", "type", messageType)
			continue
		}

		if !h.coachLimit.Allow(userID) {
			if err := conn.WriteMessage(websocket.TextMessage, []byte("error: too many requests")); err != nil {
				log.Warn("coach write failed", "error", err)
				break ReadLoop
			}
			continue
		}

		var out string
		reply, err := h.coach.Ask(ctx, userID, string(message))
		observability.RecordCoachRequest(err == nil)
		switch {
		case err == nil:
			out = reply.Content
		case errors.Is(err, coach.ErrEmptyMessage), errors.Is(err, coach.ErrMessageTooLong):
			out = "error: " + err.Error()
		default:
			log.Error("coach request failed", "error", err)
			out = "error: the coach is unavailable right now"
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(out)); err != nil {
			log.Warn("coach write failed", "error", err)
			break ReadLoop
		}
	}
	log.Debug("coach text session ended")
}
