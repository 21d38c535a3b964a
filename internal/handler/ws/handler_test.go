package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
	agentService "github.com/quickserve/crew-assistant/backend/internal/service/agent"
	chatService "github.com/quickserve/crew-assistant/backend/internal/service/chat"
)

func newTestServer(t *testing.T) (*httptest.Server, *chatService.Service) {
	t.Helper()
	agentSvc := agentService.NewService(catalog.NewSeededStore(), func(n int) int { return 0 })
	chatSvc := chatService.NewService()

	r := chi.NewRouter()
	New(agentSvc, chatSvc).RegisterRoutes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, chatSvc
}

func dial(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

type reply struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

func readReply(t *testing.T, conn *websocket.Conn) reply {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg reply
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return msg
}

func TestWebSocketTextRoundTrip(t *testing.T) {
	server, chatSvc := newTestServer(t)
	session, _ := chatSvc.CreateSession(context.Background())
	conn := dial(t, server, session.ID)

	frame := map[string]interface{}{
		"type": "text",
		"data": map[string]string{"text": "any deals today?"},
	}
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	msg := readReply(t, conn)
	if msg.Type != "reply" {
		t.Fatalf("frame type = %q, want reply", msg.Type)
	}
	var data struct {
		Intent  string `json:"intent"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		t.Fatalf("decode reply data: %v", err)
	}
	if data.Intent != "offers" {
		t.Errorf("intent = %q, want offers", data.Intent)
	}
	if data.Content == "" {
		t.Error("expected non-empty reply content")
	}

	// The exchange persists both turns.
	messages, err := chatSvc.LoadTranscript(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(messages))
	}
}

func TestWebSocketPingPong(t *testing.T) {
	server, chatSvc := newTestServer(t)
	session, _ := chatSvc.CreateSession(context.Background())
	conn := dial(t, server, session.ID)

	if err := conn.WriteJSON(map[string]interface{}{"type": "ping"}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	msg := readReply(t, conn)
	if msg.Type != "pong" {
		t.Fatalf("frame type = %q, want pong", msg.Type)
	}
}

func TestWebSocketUnsupportedType(t *testing.T) {
	server, chatSvc := newTestServer(t)
	session, _ := chatSvc.CreateSession(context.Background())
	conn := dial(t, server, session.ID)

	if err := conn.WriteJSON(map[string]interface{}{"type": "video"}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	msg := readReply(t, conn)
	if msg.Type != "error" {
		t.Fatalf("frame type = %q, want error", msg.Type)
	}
}

func TestWebSocketUnknownSessionRejected(t *testing.T) {
	server, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected handshake to fail for unknown session")
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Fatalf("expected 404 handshake response, got %+v", resp)
	}
}
