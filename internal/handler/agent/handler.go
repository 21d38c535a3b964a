package agent

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
	agentService "github.com/quickserve/crew-assistant/backend/internal/service/agent"
	"github.com/quickserve/crew-assistant/backend/pkg/utils"
)

// Handler exposes the stateless one-shot agent endpoint.
type Handler struct {
	agentSvc *agentService.Service
}

// New creates the agent handler.
func New(agentSvc *agentService.Service) *Handler {
	return &Handler{agentSvc: agentSvc}
}

// RegisterRoutes mounts the agent route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/agent", h.handleRunAgent)
}

// handleRunAgent accepts a transcript and returns one assistant turn.
func (h *Handler) handleRunAgent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Messages []chat.Turn `json:"messages"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response := h.agentSvc.Run(r.Context(), sanitizeTurns(payload.Messages))

	utils.RespondJSON(w, http.StatusOK, map[string]chat.AgentResponse{"message": response})
}

// sanitizeTurns drops blank turns, trims content, and coerces unknown roles
// to user so a sloppy client cannot confuse the responder.
func sanitizeTurns(incoming []chat.Turn) []chat.Turn {
	turns := make([]chat.Turn, 0, len(incoming))
	for _, turn := range incoming {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		role := turn.Role
		if role != chat.RoleAssistant && role != chat.RoleSystem {
			role = chat.RoleUser
		}
		turns = append(turns, chat.Turn{Role: role, Content: content, CreatedAt: turn.CreatedAt})
	}
	return turns
}
