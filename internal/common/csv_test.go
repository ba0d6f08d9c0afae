package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCSVRow represents a test CSV row for gocsv unmarshaling
type testCSVRow struct {
	Name    string `csv:"Name"`
	Country string `csv:"Country"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadCSVFile(t *testing.T) {
	path := writeFile(t, "test.csv", "Name,Country\nJohn Doe,USA\n,\nJane Smith,Canada\n")

	rows, err := ReadCSVFile[testCSVRow](path, ',', logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, rows, 3, "empty rows are kept by the generic reader")
	assert.Equal(t, "John Doe", rows[0].Name)
	assert.Equal(t, "", rows[1].Name)
	assert.Equal(t, "Canada", rows[2].Country)
}

func TestReadCSVFile_Semicolon(t *testing.T) {
	path := writeFile(t, "test.csv", "Name;Country\nAsha;India\n")

	rows, err := ReadCSVFile[testCSVRow](path, ';', logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "India", rows[0].Country)
}

func TestReadCSVFile_MissingFile(t *testing.T) {
	_, err := ReadCSVFile[testCSVRow](filepath.Join(t.TempDir(), "nope.csv"), ',', logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening CSV file")
}

func TestReadTransactions(t *testing.T) {
	content := strings.Join([]string{
		"txn_id,value_date,post_date,merchant,description,reference_no,debit,credit,balance,txn_type",
		"t1,05/03/2024,05/03/2024,,UPI/DR/412345678901/SWIGGY/YESB/swiggy@ybl/Payment,412345678901,\"1,250.50\",,10000,DR",
		"t2,2024-03-06,,ACME Corp,NEFT-HDFC0001234-ACME PAYROLL-SALARY,,,85000,95000,",
		",,,,,,,,,",
		"t3,07-Mar-2024,,Netflix,,,,,,cr",
	}, "\n")
	path := writeFile(t, "statement.csv", content)

	logger := logging.NewMockLogger()
	txns, err := NewCSVHandler(',', logger).ReadTransactions(path)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "t1", txns[0].ID)
	assert.Equal(t, "SWIGGY", txns[0].Merchant)
	assert.Equal(t, "2024-03-05", txns[0].Date)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(txns[0].Amount))
	assert.Equal(t, models.TransactionTypeDebit, txns[0].Type)

	assert.Equal(t, "ACME Corp", txns[1].Merchant)
	assert.Equal(t, models.TransactionTypeCredit, txns[1].Type)
	assert.True(t, decimal.NewFromInt(85000).Equal(txns[1].Amount))

	assert.Equal(t, "2024-03-07", txns[2].Date)
	assert.True(t, txns[2].Amount.IsZero())
	assert.Equal(t, models.TransactionTypeCredit, txns[2].Type, "txn_type is used when no amount is present")

	assert.True(t, logger.HasEntry("INFO", "Loaded transactions"))
}

func TestReadTransactions_NoTextColumns(t *testing.T) {
	path := writeFile(t, "amounts.csv", "debit,credit\n10.00,\n,20.00\n")

	_, err := NewCSVHandler(',', logging.NewMockLogger()).ReadTransactions(path)
	var formatErr *parsererror.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, path, formatErr.FilePath)
}

func TestRowToTransaction_UnparseableDateKept(t *testing.T) {
	txn, err := RowToTransaction(TransactionRow{ValueDate: " sometime ", Description: "Cash"})
	require.NoError(t, err)
	assert.Equal(t, "sometime", txn.Date)
	assert.Equal(t, "Cash", txn.Merchant)
	assert.Equal(t, "", txn.Type)
}

func TestRowToTransaction_AmountFormats(t *testing.T) {
	txn, err := RowToTransaction(TransactionRow{Description: "Rent", Debit: "₹ 1,25,000.00"})
	require.NoError(t, err)
	assert.Equal(t, "125000", txn.Amount.String())
	assert.Equal(t, models.TransactionTypeDebit, txn.Type)

	txn, err = RowToTransaction(TransactionRow{Description: "Refund", Credit: "1.234,56"})
	require.NoError(t, err)
	assert.Equal(t, "1234.56", txn.Amount.String())
	assert.Equal(t, models.TransactionTypeCredit, txn.Type)
}

func TestRowToTransaction_BadAmount(t *testing.T) {
	txn, err := RowToTransaction(TransactionRow{Description: "Swiggy", Debit: "n/a", TxnType: "DR"})
	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "debit", parseErr.Field)
	assert.True(t, txn.Amount.IsZero())
	assert.Equal(t, models.TransactionTypeDebit, txn.Type)
	assert.Equal(t, "Swiggy", txn.Merchant)
}

func TestReadTransactions_BadAmountKeepsRow(t *testing.T) {
	path := writeFile(t, "bad.csv", "description,debit\nSwiggy order,abc\n")
	mock := logging.NewMockLogger()

	txns, err := NewCSVHandler(',', mock).ReadTransactions(path)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.IsZero())
	assert.True(t, mock.HasEntry("WARN", "Amount not parseable, using zero"))
}

func TestWriteCategorized(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "out.csv")
	txns := []models.TxnContext{
		{ID: "t1", Merchant: "Swiggy", Description: "order", Amount: decimal.RequireFromString("250.5"), Type: models.TransactionTypeDebit, Date: "2024-03-05"},
		{ID: "t2", Merchant: "Unknown", Description: "misc"},
	}
	results := []models.Result{
		{Category: models.CategoryDining, Confidence: 1, Source: models.SourcePattern, Pattern: "swiggy"},
		{Category: models.CategoryUncategorized, Source: models.SourceDefault},
	}

	h := NewCSVHandler(';', logging.NewMockLogger())
	require.NoError(t, h.WriteCategorized(out, txns, results))

	data, err := os.ReadFile(out) // #nosec G304 -- test file
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "txn_id;date;merchant;description;amount;type;category;source;confidence;pattern", lines[0])
	assert.Equal(t, "t1;2024-03-05;Swiggy;order;250.5;debit;Dining;pattern;1.00;swiggy", lines[1])
	assert.Equal(t, "t2;;Unknown;misc;0;;Uncategorized;default;0.00;", lines[2])

	rows, err := ReadCSVFile[CategorizedRow](out, ';', logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.CategoryDining, rows[0].Category)
}

func TestWriteCategorized_LengthMismatch(t *testing.T) {
	h := NewCSVHandler(0, nil)
	err := h.WriteCategorized(filepath.Join(t.TempDir(), "out.csv"), []models.TxnContext{{ID: "a"}}, nil)
	require.Error(t, err)
	assert.Equal(t, ',', h.Delimiter)
}
