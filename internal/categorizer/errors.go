package categorizer

import "errors"

var (
	// ErrNoJSONArray is returned when an AI response contains no JSON array.
	ErrNoJSONArray = errors.New("AI response contains no JSON array")

	// ErrBatchTooLarge is returned when more than MaxBatchSize items are sent in one batch.
	ErrBatchTooLarge = errors.New("AI batch exceeds maximum size")

	// ErrNoGenerator is returned when the AI fallback is used without a TextGenerator.
	ErrNoGenerator = errors.New("no text generator configured")

	// ErrEmptyResponse is returned when the text generator answers with no text.
	ErrEmptyResponse = errors.New("empty AI response")

	// ErrUnknownCategory is returned when a pattern names a category outside the vocabulary.
	ErrUnknownCategory = errors.New("unknown category")
)
