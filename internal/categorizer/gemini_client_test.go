package categorizer

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestFirstCandidateText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("[{\"id\":"), genai.Text("\"t1\"}]")}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}
	assert.Equal(t, `[{"id":"t1"}]`, firstCandidateText(resp))
	assert.Empty(t, firstCandidateText(nil))
	assert.Empty(t, firstCandidateText(&genai.GenerateContentResponse{}))
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "gemini-2.0-flash", nil)
	assert.Error(t, err)
}
