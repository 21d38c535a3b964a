package chat

import "time"

// Roles a transcript turn may carry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is a single entry of the conversation transcript handed to the agent.
// Turns are owned by the caller and never mutated.
type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AgentResponse is the assistant turn produced for one request.
type AgentResponse struct {
	Role        string   `json:"role"`
	Content     string   `json:"content"`
	Intent      string   `json:"intent"`
	Suggestions []string `json:"suggestions"`
}

// Message persists individual turns for audit/debug.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Turn converts a stored message into the transcript form the agent consumes.
func (m Message) Turn() Turn {
	return Turn{
		Role:      m.Sender,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
}
