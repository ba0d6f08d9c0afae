package categorizer

import (
	"context"
	"time"
)

// GenerateOptions are the sampling parameters passed to a TextGenerator.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultGenerateOptions returns low-temperature settings suited to
// structured classification output.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		MaxTokens:   4096,
		Temperature: 0.1,
		Timeout:     60 * time.Second,
	}
}

// TextGenerator is an external text-generation service.
// This abstraction allows the batching and validation logic to be tested
// without external API calls.
type TextGenerator interface {
	// Complete sends a system instruction and a user message and returns the
	// raw response text.
	Complete(ctx context.Context, system, user string, opts GenerateOptions) (string, error)
}
