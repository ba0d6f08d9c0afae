package categorizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/parsererror"

	"github.com/shopspring/decimal"
)

// MaxBatchSize is the largest number of transactions sent in one AI request.
const MaxBatchSize = 50

// aiPromptItem is the wire form of one transaction in the user payload.
type aiPromptItem struct {
	ID          string          `json:"id"`
	Merchant    string          `json:"merchant"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
}

// aiResponseItem uses pointers so missing fields can be told apart from zero values.
type aiResponseItem struct {
	ID         *string  `json:"id"`
	Category   *string  `json:"category"`
	Confidence *float64 `json:"confidence"`
}

// AICategorizeBatch asks gen to categorize up to MaxBatchSize transactions.
// Returned categories are always members of validCategories or Uncategorized.
// Any error means no item of the batch was categorized.
func AICategorizeBatch(ctx context.Context, gen TextGenerator, items []models.TxnContext, validCategories []string, opts GenerateOptions) ([]models.AIResult, error) {
	if gen == nil {
		return nil, ErrNoGenerator
	}
	if len(items) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d items, maximum is %d", ErrBatchTooLarge, len(items), MaxBatchSize)
	}
	if len(items) == 0 {
		return nil, nil
	}

	user, err := BuildUserPayload(items)
	if err != nil {
		return nil, err
	}

	text, err := gen.Complete(ctx, BuildSystemPrompt(validCategories), user, opts)
	if err != nil {
		return nil, fmt.Errorf("AI request failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	return ParseAIResponse(text, validCategories)
}

// AICategorizeBatch sends items to the configured generator using the
// categorizer's vocabulary and options.
func (c *Categorizer) AICategorizeBatch(ctx context.Context, items []models.TxnContext) ([]models.AIResult, error) {
	if c.opts.Generate.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Generate.Timeout)
		defer cancel()
	}

	results, err := AICategorizeBatch(ctx, c.generator, items, c.Vocabulary(), c.opts.Generate)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("AI batch categorized",
		logging.Field{Key: logging.FieldBatchSize, Value: len(items)},
		logging.Field{Key: logging.FieldCount, Value: len(results)})
	return results, nil
}

// BuildSystemPrompt lists the exact category names and the response schema.
func BuildSystemPrompt(validCategories []string) string {
	var sb strings.Builder
	sb.WriteString("You categorize bank transactions.\n")
	sb.WriteString("Assign every transaction exactly one category from this list, spelled exactly as shown:\n")
	for _, c := range validCategories {
		sb.WriteString("- ")
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Use %q when no category fits.\n", models.CategoryUncategorized)
	sb.WriteString("Respond with only a JSON array containing one object per transaction:\n")
	sb.WriteString(`[{"id": "<transaction id>", "category": "<category from the list>", "confidence": <number between 0 and 1>}]`)
	sb.WriteString("\n")
	return sb.String()
}

// BuildUserPayload serializes the transactions as a JSON array.
func BuildUserPayload(items []models.TxnContext) (string, error) {
	payload := make([]aiPromptItem, 0, len(items))
	for _, t := range items {
		payload = append(payload, aiPromptItem{
			ID:          t.ID,
			Merchant:    t.Merchant,
			Description: t.Description,
			Amount:      t.Amount,
			Type:        t.Type,
			Date:        t.Date,
		})
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode AI payload: %w", err)
	}
	return string(data), nil
}

// ParseAIResponse extracts the JSON array from text, dropping elements that
// lack a string id, a string category or a numeric confidence. Categories not
// in validCategories become Uncategorized; confidence is passed through.
func ParseAIResponse(text string, validCategories []string) ([]models.AIResult, error) {
	body := stripCodeFence(text)
	start := strings.Index(body, "[")
	end := strings.LastIndex(body, "]")
	if start == -1 || end <= start {
		return nil, ErrNoJSONArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(body[start:end+1]), &elements); err != nil {
		return nil, &parsererror.ParseError{Parser: "ai", Field: "response", Value: body[start : end+1], Err: err}
	}

	results := make([]models.AIResult, 0, len(elements))
	for _, raw := range elements {
		var item aiResponseItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		if item.ID == nil || item.Category == nil || item.Confidence == nil {
			continue
		}

		category := *item.Category
		if !models.IsValidCategory(category, validCategories) {
			category = models.CategoryUncategorized
		}
		results = append(results, models.AIResult{ID: *item.ID, Category: category, Confidence: *item.Confidence})
	}
	return results, nil
}

// ChunkTransactions splits items into consecutive batches of at most size
// items. A size outside 1..MaxBatchSize uses MaxBatchSize.
func ChunkTransactions(items []models.TxnContext, size int) [][]models.TxnContext {
	if size <= 0 || size > MaxBatchSize {
		size = MaxBatchSize
	}
	var chunks [][]models.TxnContext
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	body := strings.TrimSpace(text)
	if !strings.HasPrefix(body, "```") {
		return body
	}
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = strings.TrimPrefix(body, "```")
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
