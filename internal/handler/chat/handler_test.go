package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
	chatService "github.com/quickserve/crew-assistant/backend/internal/service/chat"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	New(chatService.NewService()).RegisterRoutes(r)
	return r
}

func createSession(t *testing.T, r chi.Router) chat.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/session", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d, want 201", rec.Code)
	}
	var session chat.Session
	if err := json.NewDecoder(rec.Body).Decode(&session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.ID == "" {
		t.Fatal("session missing ID")
	}
	return session
}

func TestSessionLifecycle(t *testing.T) {
	r := newTestRouter()
	session := createSession(t, r)

	body := fmt.Sprintf(`{"sessionId":%q,"sender":"user","content":"any deals today?"}`, session.ID)
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("save message status = %d, want 202", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/messages/"+session.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("load transcript status = %d, want 200", rec.Code)
	}
	var messages []chat.Message
	if err := json.NewDecoder(rec.Body).Decode(&messages); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(messages) != 1 || messages[0].Content != "any deals today?" {
		t.Fatalf("unexpected transcript: %+v", messages)
	}
}

func TestSaveMessageUnknownSession(t *testing.T) {
	r := newTestRouter()

	body := `{"sessionId":"missing","sender":"user","content":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSaveMessageEmptyContent(t *testing.T) {
	r := newTestRouter()
	session := createSession(t, r)

	body := fmt.Sprintf(`{"sessionId":%q,"sender":"user","content":""}`, session.ID)
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoadTranscriptUnknownSession(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/messages/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
