// Package models provides the data structures used throughout the application.
package models

// Categories. The vocabulary is closed: every category the engine can return
// (outside user rules) is listed here.
const (
	CategorySalary        = "Salary"
	CategoryFreelance     = "Freelance Income"
	CategoryInterest      = "Interest & Dividends"
	CategoryRefund        = "Refunds & Cashback"
	CategoryDining        = "Dining"
	CategoryGroceries     = "Groceries"
	CategoryTransport     = "Transport"
	CategoryFuel          = "Fuel"
	CategoryShopping      = "Shopping"
	CategoryElectronics   = "Electronics"
	CategoryEntertainment = "Entertainment"
	CategorySubscriptions = "Subscriptions"
	CategoryUtilities     = "Utilities"
	CategoryTelecom       = "Mobile & Internet"
	CategoryRent          = "Rent"
	CategoryHousing       = "Home & Maintenance"
	CategoryHealthcare    = "Healthcare"
	CategoryFitness       = "Fitness"
	CategoryPersonalCare  = "Personal Care"
	CategoryEducation     = "Education"
	CategoryTravel        = "Travel"
	CategoryInsurance     = "Insurance"
	CategoryInvestments   = "Investments"
	CategoryLoans         = "Loans & EMI"
	CategoryTaxes         = "Taxes"
	CategoryBankCharges   = "Bank Charges"
	CategoryCashWithdraw  = "Cash Withdrawal"
	CategoryTransfers     = "Transfers"
	CategoryGifts         = "Gifts & Donations"
	CategoryPets          = "Pets"
	CategoryUncategorized = "Uncategorized"
)

// Transaction types
const (
	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
)

var defaultCategories = []string{
	CategorySalary,
	CategoryFreelance,
	CategoryInterest,
	CategoryRefund,
	CategoryDining,
	CategoryGroceries,
	CategoryTransport,
	CategoryFuel,
	CategoryShopping,
	CategoryElectronics,
	CategoryEntertainment,
	CategorySubscriptions,
	CategoryUtilities,
	CategoryTelecom,
	CategoryRent,
	CategoryHousing,
	CategoryHealthcare,
	CategoryFitness,
	CategoryPersonalCare,
	CategoryEducation,
	CategoryTravel,
	CategoryInsurance,
	CategoryInvestments,
	CategoryLoans,
	CategoryTaxes,
	CategoryBankCharges,
	CategoryCashWithdraw,
	CategoryTransfers,
	CategoryGifts,
	CategoryPets,
	CategoryUncategorized,
}

// DefaultCategories returns a copy of the built-in category vocabulary in
// display order. Uncategorized is always last.
func DefaultCategories() []string {
	out := make([]string, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// IsValidCategory reports whether name is an exact (case-sensitive) member of
// the given vocabulary.
func IsValidCategory(name string, vocabulary []string) bool {
	for _, c := range vocabulary {
		if c == name {
			return true
		}
	}
	return false
}
