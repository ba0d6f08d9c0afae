package models

// MatchField selects which part of a transaction a Rule is compared against.
type MatchField string

const (
	MatchFieldMerchant    MatchField = "merchant"
	MatchFieldDescription MatchField = "description"
	MatchFieldAny         MatchField = "any"
)

// Rule is a user-authored override mapping a literal substring to a category.
// Rules are evaluated in slice order before any built-in pattern.
type Rule struct {
	Pattern       string     `yaml:"pattern" json:"pattern"`
	MatchField    MatchField `yaml:"match_field" json:"matchField"`
	Category      string     `yaml:"category" json:"category"`
	CaseSensitive bool       `yaml:"case_sensitive" json:"caseSensitive"`
	Enabled       bool       `yaml:"enabled" json:"enabled"`
}
