package stream

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
	agentService "github.com/quickserve/crew-assistant/backend/internal/service/agent"
	chatService "github.com/quickserve/crew-assistant/backend/internal/service/chat"
	"github.com/quickserve/crew-assistant/backend/pkg/utils"
)

// Handler streams agent replies over Server-Sent Events.
type Handler struct {
	agentSvc *agentService.Service
	chatSvc  *chatService.Service
}

// New creates the stream handler.
func New(agentSvc *agentService.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{agentSvc: agentSvc, chatSvc: chatSvc}
}

// StreamResponse represents a streaming response chunk.
type StreamResponse struct {
	Event       string   `json:"event"`
	Content     string   `json:"content,omitempty"`
	SessionID   string   `json:"sessionId,omitempty"`
	Intent      string   `json:"intent,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Finished    bool     `json:"finished,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// HandleStreamRequest runs the responder over the stored transcript plus the
// new user message and streams the reply line by line. The reply is computed
// in full before the first delta; streaming here is purely presentational.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	if _, err := h.chatSvc.GetSession(ctx, sessionID); err != nil {
		h.sendSSEError(w, flusher, "session not found")
		return err
	}

	messages, err := h.chatSvc.LoadTranscript(ctx, sessionID)
	if err != nil {
		h.sendSSEError(w, flusher, fmt.Sprintf("failed to load conversation: %v", err))
		return err
	}

	// When the client already persisted the message via REST, avoid
	// duplicating it.
	if !hasMatchingUserMessage(messages, sessionID, userMessage) {
		userMsg := chat.Message{
			SessionID: sessionID,
			Sender:    chat.RoleUser,
			Content:   userMessage,
		}
		if err := h.chatSvc.SaveMessage(ctx, userMsg); err != nil {
			log.Printf("[stream] failed to save user message: %v", err)
		} else {
			messages = append(messages, userMsg)
		}
	}

	h.sendSSE(w, flusher, StreamResponse{Event: "start", SessionID: sessionID})

	response := h.agentSvc.Run(ctx, chatService.Turns(messages))

	for _, line := range strings.Split(response.Content, "\n") {
		h.sendSSE(w, flusher, StreamResponse{
			Event:     "delta",
			SessionID: sessionID,
			Content:   line,
		})
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:       "message",
		SessionID:   sessionID,
		Content:     response.Content,
		Intent:      response.Intent,
		Suggestions: response.Suggestions,
	})

	assistantMsg := chat.Message{
		SessionID: sessionID,
		Sender:    chat.RoleAssistant,
		Content:   response.Content,
		Intent:    response.Intent,
	}
	if err := h.chatSvc.SaveMessage(ctx, assistantMsg); err != nil {
		log.Printf("[stream] failed to save assistant message: %v", err)
	}

	h.sendSSE(w, flusher, StreamResponse{Event: "end", SessionID: sessionID, Finished: true})

	log.Printf("[stream] completed response for session=%s intent=%s", sessionID, response.Intent)
	return nil
}

func hasMatchingUserMessage(messages []chat.Message, sessionID, content string) bool {
	if len(messages) == 0 {
		return false
	}

	last := messages[len(messages)-1]
	if last.SessionID != sessionID {
		return false
	}
	if last.Sender != chat.RoleUser {
		return false
	}
	return last.Content == content
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEChunk(w, flusher, response)
}

func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{Event: "error", Error: errorMsg})
}
