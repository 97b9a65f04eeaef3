package handlers

import (
	"net/http"

	"meetbot/models"
	"meetbot/services/assistant"
	"meetbot/services/session"
	"meetbot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler serves the conversational booking endpoint.
type ChatHandler struct {
	Assistant       assistant.Service
	Sessions        session.Store
	DefaultTimezone string
}

func NewChatHandler(asst assistant.Service, sessions session.Store, defaultTimezone string) *ChatHandler {
	return &ChatHandler{
		Assistant:       asst,
		Sessions:        sessions,
		DefaultTimezone: defaultTimezone,
	}
}

// HandleChat processes one chat turn: load the session, run the assistant,
// persist the updated session, reply.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	ctx := c.Request.Context()
	sess, err := h.Sessions.Get(ctx, conversationID)
	if err != nil {
		logger.Error("Failed to load session", zap.String("conversation", conversationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Session unavailable", "Could not load the conversation session.")
		return
	}
	if sess == nil {
		sess = &models.Session{
			ID:    conversationID,
			State: models.UserState{Timezone: h.DefaultTimezone},
		}
	}

	logger.Info("Chat turn", zap.String("conversation", conversationID))
	reply := h.Assistant.HandleTurn(ctx, sess, req.Message)

	sess.Messages = append(sess.Messages,
		models.Message{Role: "user", Content: req.Message},
		models.Message{Role: "model", Content: reply},
	)
	if err := h.Sessions.Put(ctx, sess); err != nil {
		logger.Warn("Failed to persist session", zap.String("conversation", conversationID), zap.Error(err))
	}

	c.JSON(http.StatusOK, models.ChatResponse{ConversationID: conversationID, Reply: reply})
}
