package models

import "time"

// Message is one turn of the running conversation history.
// Role follows the Gemini convention: "user" or "model".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserState holds the facts accumulated about one user across the turns of a
// conversation. It is mutated only by the assistant's per-turn update rule.
type UserState struct {
	Email           string    `json:"email,omitempty"`
	Timezone        string    `json:"timezone"`
	Name            string    `json:"name,omitempty"`
	LastInteraction time.Time `json:"lastInteraction"`
}

// Session is the caller-owned conversation handle. The assistant reads it,
// mutates it in place, and the handler persists it back after each turn.
type Session struct {
	ID       string    `json:"id"`
	State    UserState `json:"state"`
	Messages []Message `json:"messages,omitempty"`
}
