package intelligence

import (
	"context"
	"fmt"
	"strings"

	"meetbot/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClassifier classifies chat turns with Gemini function calling.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey, modelName string) *GeminiClassifier {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	model.Tools = []*genai.Tool{assistantTool}
	return &GeminiClassifier{model: model}
}

func systemPrompt(today string) string {
	return fmt.Sprintf(
		"You are a helpful meeting assistant. Today is %s. "+
			"When the user says 'tomorrow', calculate it as the day after today. "+
			"If the user provides a relative time (like 'tomorrow'), use the current date to calculate the actual date. "+
			"Only ask for confirmation if absolutely necessary.", today)
}

// chatModel returns a per-call copy of the model carrying the day's system
// prompt. The shared model is never written; turns for different conversations
// run concurrently.
func (g *GeminiClassifier) chatModel(today string) *genai.GenerativeModel {
	m := *g.model
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(today))},
	}
	return &m
}

// Classify sends the running history plus the new message to the model and
// returns either the model's text reply or the single function call it chose.
func (g *GeminiClassifier) Classify(ctx context.Context, history []models.Message, message, today string) (string, Action, error) {
	session := g.chatModel(today).StartChat()
	for _, m := range history {
		session.History = append(session.History, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.FunctionCall:
			action, err := decodeAction(p.Name, p.Args)
			if err != nil {
				return "", nil, err
			}
			return "", action, nil
		case genai.Text:
			sb.WriteString(string(p))
		}
	}
	return sb.String(), nil, nil
}
