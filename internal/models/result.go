package models

// Source identifies which layer produced a categorization.
type Source string

const (
	SourceRule    Source = "rule"
	SourcePattern Source = "pattern"
	SourceFuzzy   Source = "fuzzy"
	SourceAI      Source = "ai"
	SourceDefault Source = "default"
)

// Result is the detailed outcome of categorizing one transaction.
type Result struct {
	Category   string
	Confidence float64 // 0.0 to 1.0
	Source     Source
	Pattern    string // rule or pattern text that matched, empty for default/ai
}

// IsCategorized returns true if the result carries a category other than Uncategorized
func (r Result) IsCategorized() bool {
	return r.Category != "" && r.Category != CategoryUncategorized
}

// Suggestion is one ranked category guess. Confidence is on a 0-100 scale.
type Suggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// AIResult is one element of a validated AI fallback response.
type AIResult struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}
