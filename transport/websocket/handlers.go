package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/transport/params"
)

func (that *Server) handleGameGet(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendError(conn, msg.Action, "malformed payload")
	}

	if payloadReq.GameID == "" {
		return that.sendError(conn, msg.Action, "game_id is required")
	}

	game, err := that.games.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendAppError(conn, msg.Action, err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGameMove(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameMove")

	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendError(conn, msg.Action, "malformed payload")
	}

	if payloadReq.GameID == "" {
		return that.sendError(conn, msg.Action, "game_id is required")
	}

	userID, okUser := params.Int(payloadReq.UserID)
	position, okPosition := params.Int(payloadReq.Position)

	if !okUser || !okPosition {
		var user *int64
		if okUser {
			user = &userID
		}
		return that.sendAppError(conn, msg.Action, that.games.RejectMove(ctx, payloadReq.GameID, user))
	}

	log = log.With("gameID", payloadReq.GameID, "userID", userID)

	game, err := that.games.SubmitMove(ctx, payloadReq.GameID, userID, int(position))
	if err != nil {
		return that.sendAppError(conn, msg.Action, err)
	}

	log.Info("Player made a move", "position", position)

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleScoreboard(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	entries, err := that.games.Scoreboard(ctx)
	if err != nil {
		return that.sendAppError(conn, msg.Action, err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Scoreboard: entries})
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// sendAppError reports application errors to the client and hides anything else.
func (that *Server) sendAppError(conn *websocket.Conn, action string, err error) error {
	message, ok := apperror.Message(err)
	if !ok {
		that.logger.Error("request failed", "action", action, "error", err)
		message = "internal error"
	}

	return that.sendError(conn, action, message)
}

func (that *Server) sendError(conn *websocket.Conn, action, errorMsg string) error {
	if err := that.sendMessage(conn, action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
