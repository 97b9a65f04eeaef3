package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	ConversationID string `json:"conversation_id,omitempty"` // omitted on the first turn
	Message        string `json:"message"`                   // user's chat turn
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}
