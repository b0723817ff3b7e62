package controller

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/chesslink/boardsync/internal/game"
	"github.com/chesslink/boardsync/internal/service"
	"github.com/chesslink/boardsync/internal/ws"
)

type WebSocketController struct {
	sessionService *service.SessionService
}

func NewWebSocketController(sessionService *service.SessionService) *WebSocketController {
	return &WebSocketController{sessionService: sessionService}
}

// wsConn serializes writes: the state listener and the read-loop error path
// may both write to the same connection.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsConn) writeJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

// HandleConnection is called when a sensor board (or spectator client) has
// established a WebSocket connection for a session. Inbound messages carry
// placement snapshots; every session state change is pushed back out.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	sessionID := c.Params("sessionId")
	boardID, _ := c.Locals("boardID").(string)

	conn := &wsConn{conn: c}

	cancel, err := wsc.sessionService.Subscribe(sessionID, func(view game.View) {
		payload, err := json.Marshal(view)
		if err != nil {
			log.Printf("marshal state for session %s: %v", sessionID, err)
			return
		}
		if err := conn.writeJSON(ws.Message{
			Type:    ws.MessageTypeState,
			Payload: payload,
		}); err != nil {
			log.Printf("push state to board %s: %v", boardID, err)
		}
	})
	if err != nil {
		log.Printf("subscribe board %s to session %s: %v", boardID, sessionID, err)
		c.Close()
		return
	}
	defer cancel()

	// Send the current state so a board that reconnects mid-game catches up.
	if view, err := wsc.sessionService.GetView(sessionID); err == nil {
		if payload, err := json.Marshal(view); err == nil {
			conn.writeJSON(ws.Message{Type: ws.MessageTypeState, Payload: payload})
		}
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read from board %s: %v", boardID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse message from board %s: %v", boardID, err)
			continue
		}

		if err := wsc.handleMessage(sessionID, msg); err != nil {
			log.Printf("handle %s from board %s: %v", msg.Type, boardID, err)
			wsc.sendError(conn, err.Error())
		}
	}
}

func (wsc *WebSocketController) handleMessage(sessionID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypePlacement:
		var payload ws.PlacementPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		return wsc.sessionService.ObservePlacement(sessionID, payload.Placement)

	default:
		return errUnknownMessage(msg.Type)
	}
}

type errUnknownMessage ws.MessageType

func (e errUnknownMessage) Error() string {
	return "unknown message type: " + string(e)
}

func (wsc *WebSocketController) sendError(conn *wsConn, errorMsg string) {
	payload, err := json.Marshal(ws.ErrorPayload{Error: errorMsg})
	if err != nil {
		return
	}
	conn.writeJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: payload,
	})
}
