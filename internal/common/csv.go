// Package common provides CSV input and output for transaction files.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fjacquet/txn-categorizer/internal/currencyutils"
	"fjacquet/txn-categorizer/internal/dateutils"
	"fjacquet/txn-categorizer/internal/fileutils"
	"fjacquet/txn-categorizer/internal/logging"
	"fjacquet/txn-categorizer/internal/models"
	"fjacquet/txn-categorizer/internal/parsererror"
	"fjacquet/txn-categorizer/internal/textutils"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// TransactionRow is one row of a bank statement export. Only description and
// one of debit/credit are required; merchant is optional.
type TransactionRow struct {
	TxnID       string `csv:"txn_id"`
	ValueDate   string `csv:"value_date"`
	PostDate    string `csv:"post_date"`
	Merchant    string `csv:"merchant"`
	Description string `csv:"description"`
	ReferenceNo string `csv:"reference_no"`
	Debit       string `csv:"debit"`
	Credit      string `csv:"credit"`
	Balance     string `csv:"balance"`
	TxnType     string `csv:"txn_type"`
}

// CategorizedRow is one row of the categorized output file.
type CategorizedRow struct {
	TxnID       string          `csv:"txn_id"`
	Date        string          `csv:"date"`
	Merchant    string          `csv:"merchant"`
	Description string          `csv:"description"`
	Amount      decimal.Decimal `csv:"amount"`
	Type        string          `csv:"type"`
	Category    string          `csv:"category"`
	Source      string          `csv:"source"`
	Confidence  string          `csv:"confidence"`
	Pattern     string          `csv:"pattern"`
}

// CSVHandler reads and writes transaction files with a fixed delimiter.
type CSVHandler struct {
	Delimiter rune
	logger    logging.Logger
}

// NewCSVHandler creates a handler. A zero delimiter means ','.
func NewCSVHandler(delimiter rune, logger logging.Logger) *CSVHandler {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVHandler{Delimiter: delimiter, logger: logger}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	logger.Debug("Reading CSV file", logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- path supplied by the CLI user
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Debug("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// ReadTransactions reads a statement export and converts its rows to
// transactions. Rows without a description or merchant are skipped.
func (h *CSVHandler) ReadTransactions(filePath string) ([]models.TxnContext, error) {
	rows, err := ReadCSVFile[TransactionRow](filePath, h.Delimiter, h.logger)
	if err != nil {
		return nil, err
	}

	txns := make([]models.TxnContext, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row.Description) == "" && strings.TrimSpace(row.Merchant) == "" {
			h.logger.Debug("Skipping empty row", logging.Field{Key: "row", Value: i + 2})
			continue
		}
		txn, err := RowToTransaction(row)
		if err != nil {
			h.logger.WithError(err).Warn("Amount not parseable, using zero",
				logging.Field{Key: "row", Value: i + 2})
		}
		txns = append(txns, txn)
	}

	if len(rows) > 0 && len(txns) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "CSV with a merchant or description column",
			Msg:            "no row has a merchant or description",
		}
	}

	h.logger.Info("Loaded transactions",
		logging.Field{Key: logging.FieldInputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(txns)})
	return txns, nil
}

// RowToTransaction converts a statement row. A missing merchant is derived
// from the narration; the amount comes from whichever of debit or credit is set.
// An unparseable amount is reported as a *parsererror.ParseError alongside a
// transaction that carries a zero amount, so callers may keep the row.
func RowToTransaction(row TransactionRow) (models.TxnContext, error) {
	merchant := strings.TrimSpace(row.Merchant)
	if merchant == "" {
		merchant = textutils.ExtractMerchant(row.Description)
	}

	var amountErr error
	parse := func(field, value string) decimal.Decimal {
		amount, err := currencyutils.ParseAmount(value)
		if err != nil && amountErr == nil {
			amountErr = &parsererror.ParseError{Parser: "csv", Field: field, Value: value, Err: err}
		}
		return amount.Abs()
	}
	debit := parse("debit", row.Debit)
	credit := parse("credit", row.Credit)

	txn := models.TxnContext{
		ID:          strings.TrimSpace(row.TxnID),
		Merchant:    merchant,
		Description: strings.TrimSpace(row.Description),
		Date:        dateutils.NormalizeDate(row.ValueDate),
	}

	switch {
	case !debit.IsZero():
		txn.Amount, txn.Type = debit, models.TransactionTypeDebit
	case !credit.IsZero():
		txn.Amount, txn.Type = credit, models.TransactionTypeCredit
	default:
		txn.Type = normalizeType(row.TxnType)
	}
	return txn, amountErr
}

// WriteCategorized writes txns and their index-aligned results to filePath.
func (h *CSVHandler) WriteCategorized(filePath string, txns []models.TxnContext, results []models.Result) error {
	if len(txns) != len(results) {
		return fmt.Errorf("got %d results for %d transactions", len(results), len(txns))
	}

	file, err := fileutils.CreateFile(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]CategorizedRow, len(txns))
	for i, txn := range txns {
		rows[i] = CategorizedRow{
			TxnID:       txn.ID,
			Date:        txn.Date,
			Merchant:    txn.Merchant,
			Description: txn.Description,
			Amount:      txn.Amount,
			Type:        txn.Type,
			Category:    results[i].Category,
			Source:      string(results[i].Source),
			Confidence:  strconv.FormatFloat(results[i].Confidence, 'f', 2, 64),
			Pattern:     results[i].Pattern,
		}
	}

	writer := csv.NewWriter(file)
	writer.Comma = h.Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	h.logger.Info("Wrote categorized transactions",
		logging.Field{Key: logging.FieldOutputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

func normalizeType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dr", "debit", "d":
		return models.TransactionTypeDebit
	case "cr", "credit", "c":
		return models.TransactionTypeCredit
	default:
		return ""
	}
}
