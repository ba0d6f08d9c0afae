package categorizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fjacquet/txn-categorizer/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient is a TextGenerator backed by the generative-ai-go SDK.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	logger    logging.Logger
}

// NewGeminiClient creates a client for modelName authenticated with apiKey.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelName: modelName, logger: logger}, nil
}

// Complete sends the system instruction and the user message as two parts of
// one user turn and returns the concatenated text of the first candidate.
func (g *GeminiClient) Complete(ctx context.Context, system, user string, opts GenerateOptions) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	if opts.Temperature >= 0 {
		model.SetTemperature(float32(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	g.logger.Debug("Sending Gemini request",
		logging.Field{Key: logging.FieldProvider, Value: "gemini"},
		logging.Field{Key: logging.FieldModel, Value: g.modelName})

	resp, err := model.GenerateContent(ctx, genai.Text(system), genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	text := firstCandidateText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Close releases the underlying connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		return sb.String()
	}
	return ""
}
