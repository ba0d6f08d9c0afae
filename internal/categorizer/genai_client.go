package categorizer

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/txn-categorizer/internal/logging"

	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by GenAIClient.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GenAIClient is a TextGenerator backed by the google.golang.org/genai SDK.
// It sends the system prompt as a system instruction and requests JSON output.
type GenAIClient struct {
	generator contentGenerator
	modelName string
	logger    logging.Logger
}

// NewGenAIClient creates a Gemini API client for modelName.
func NewGenAIClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newGenAIClientWithGenerator(client.Models, modelName, logger), nil
}

func newGenAIClientWithGenerator(gen contentGenerator, modelName string, logger logging.Logger) *GenAIClient {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &GenAIClient{generator: gen, modelName: modelName, logger: logger}
}

// Complete implements TextGenerator.
func (g *GenAIClient) Complete(ctx context.Context, system, user string, opts GenerateOptions) (string, error) {
	temperature := float32(opts.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(opts.MaxTokens),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		ResponseMIMEType: "application/json",
	}
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: user}},
		},
	}

	g.logger.Debug("Sending genai request",
		logging.Field{Key: logging.FieldProvider, Value: "genai"},
		logging.Field{Key: logging.FieldModel, Value: g.modelName})

	resp, err := g.generator.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("genai.GenerateContent: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
