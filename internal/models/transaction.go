package models

import "github.com/shopspring/decimal"

// Input is the minimal text needed by pattern and fuzzy matching.
type Input struct {
	Merchant    string
	Description string
}

// TxnContext carries a transaction to the AI fallback. Amount, Type and Date
// are prompt context only; they never influence rule or pattern matching.
type TxnContext struct {
	ID          string
	Merchant    string
	Description string
	Amount      decimal.Decimal
	Type        string
	Date        string
}

// Input returns the matching text of the transaction.
func (t TxnContext) Input() Input {
	return Input{Merchant: t.Merchant, Description: t.Description}
}
