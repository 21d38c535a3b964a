package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
	agentService "github.com/quickserve/crew-assistant/backend/internal/service/agent"
	chatService "github.com/quickserve/crew-assistant/backend/internal/service/chat"
)

const (
	readDeadline = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler serves a live chat connection per session over WebSocket.
type Handler struct {
	agentSvc *agentService.Service
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
}

// New creates the WebSocket handler.
func New(agentSvc *agentService.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{
		agentSvc: agentSvc,
		chatSvc:  chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the WebSocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// TextMessage is the payload of an inbound "text" frame.
type TextMessage struct {
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", sessionID)

	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(conn, done)

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] unexpected close for session=%s: %v", sessionID, err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))

		switch msg.Type {
		case "text":
			var text TextMessage
			if err := json.Unmarshal(msg.Data, &text); err != nil || text.Text == "" {
				h.sendError(conn, sessionID, "text payload is required")
				continue
			}
			h.handleText(r.Context(), conn, sessionID, text.Text)
		case "ping":
			h.send(conn, outgoingMessage{Type: "pong", SessionID: sessionID, Timestamp: time.Now().UnixMilli()})
		default:
			h.sendError(conn, sessionID, "unsupported message type")
		}
	}
}

// handleText saves the user turn, runs the responder over the full
// transcript, streams the reply back, and saves the assistant turn.
func (h *Handler) handleText(ctx context.Context, conn *websocket.Conn, sessionID, text string) {
	userMsg := chat.Message{SessionID: sessionID, Sender: chat.RoleUser, Content: text}
	if err := h.chatSvc.SaveMessage(ctx, userMsg); err != nil {
		h.sendError(conn, sessionID, "failed to save message")
		return
	}

	messages, err := h.chatSvc.LoadTranscript(ctx, sessionID)
	if err != nil {
		h.sendError(conn, sessionID, "failed to load conversation")
		return
	}

	response := h.agentSvc.Run(ctx, chatService.Turns(messages))

	assistantMsg := chat.Message{
		SessionID: sessionID,
		Sender:    chat.RoleAssistant,
		Content:   response.Content,
		Intent:    response.Intent,
	}
	if err := h.chatSvc.SaveMessage(ctx, assistantMsg); err != nil {
		log.Printf("[ws] failed to save assistant message: %v", err)
	}

	h.send(conn, outgoingMessage{
		Type:      "reply",
		SessionID: sessionID,
		Data:      response,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (h *Handler) keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, msg outgoingMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, sessionID, message string) {
	h.send(conn, outgoingMessage{
		Type:      "error",
		SessionID: sessionID,
		Data:      map[string]string{"message": message},
		Timestamp: time.Now().UnixMilli(),
	})
}
