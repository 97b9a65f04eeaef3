package intelligence

import (
	"fmt"
	"sync"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
)

func TestChatModelCopiesSharedModel(t *testing.T) {
	g := &GeminiClassifier{model: &genai.GenerativeModel{Tools: []*genai.Tool{assistantTool}}}

	m := g.chatModel("2024-06-10")
	if m == g.model {
		t.Fatal("chatModel returned the shared model instead of a copy")
	}
	if m.SystemInstruction == nil {
		t.Fatal("copy carries no system instruction")
	}
	if len(m.Tools) != 1 {
		t.Error("copy lost the tool declarations")
	}
	if g.model.SystemInstruction != nil {
		t.Error("shared model was mutated")
	}
}

func TestChatModelConcurrentTurns(t *testing.T) {
	g := &GeminiClassifier{model: &genai.GenerativeModel{}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			m := g.chatModel(fmt.Sprintf("2024-06-%02d", day+1))
			if m.SystemInstruction == nil {
				t.Error("copy carries no system instruction")
			}
		}(i)
	}
	wg.Wait()

	if g.model.SystemInstruction != nil {
		t.Error("shared model was mutated by a concurrent turn")
	}
}
