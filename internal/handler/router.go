package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	agentHandler "github.com/quickserve/crew-assistant/backend/internal/handler/agent"
	catalogHandler "github.com/quickserve/crew-assistant/backend/internal/handler/catalog"
	chatHandler "github.com/quickserve/crew-assistant/backend/internal/handler/chat"
	"github.com/quickserve/crew-assistant/backend/internal/handler/stream"
	"github.com/quickserve/crew-assistant/backend/internal/handler/ws"
	middlewarePkg "github.com/quickserve/crew-assistant/backend/internal/middleware"
	catalogModel "github.com/quickserve/crew-assistant/backend/internal/model/catalog"
	agentService "github.com/quickserve/crew-assistant/backend/internal/service/agent"
	chatService "github.com/quickserve/crew-assistant/backend/internal/service/chat"
	"github.com/quickserve/crew-assistant/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(catalogs catalogModel.Store, agentSvc *agentService.Service, chatSvc *chatService.Service, allowedOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middlewarePkg.Recover)
	r.Use(middlewarePkg.CORS(allowedOrigin))

	streamHandler := stream.New(agentSvc, chatSvc)

	r.Route("/api", func(api chi.Router) {
		agentHandler.New(agentSvc).RegisterRoutes(api)
		catalogHandler.New(catalogs).RegisterRoutes(api)
		chatHandler.New(chatSvc).RegisterRoutes(api)
		ws.New(agentSvc, chatSvc).RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
