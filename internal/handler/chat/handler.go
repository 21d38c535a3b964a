package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
	chatService "github.com/quickserve/crew-assistant/backend/internal/service/chat"
	"github.com/quickserve/crew-assistant/backend/pkg/utils"
)

// Handler exposes session and transcript management.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Post("/messages", h.handleSaveMessage)
	r.Get("/messages/{sessionID}", h.handleLoadTranscript)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleSaveMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Sender    string `json:"sender"`
		Content   string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := chat.Message{
		SessionID: payload.SessionID,
		Sender:    payload.Sender,
		Content:   payload.Content,
	}

	if err := h.chatSvc.SaveMessage(r.Context(), message); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, chatService.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (h *Handler) handleLoadTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, messages)
}
