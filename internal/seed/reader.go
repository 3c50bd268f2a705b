package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"investor-commitments/internal/util"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ErrMalformedSource marks a seed file that is structurally unreadable.
// Nothing is imported from such a file.
var ErrMalformedSource = errors.New("malformed seed source")

// Record is one row of the seed source: the investor fields repeated on
// every row plus the single commitment that row describes. Date fields
// stay free-text here; the seeder parses them.
type Record struct {
	InvestorName         string
	InvestorType         string
	InvestorCountry      string
	InvestorDateAdded    string
	InvestorLastUpdated  string
	CommitmentAssetClass string
	CommitmentAmount     decimal.Decimal
	CommitmentCurrency   string
}

// seed source column headers; "Investory Type" is the upstream file's
// spelling and must be kept verbatim.
const (
	colName        = "Investor Name"
	colType        = "Investory Type"
	colCountry     = "Investor Country"
	colDateAdded   = "Investor Date Added"
	colLastUpdated = "Investor Last Updated"
	colAssetClass  = "Commitment Asset Class"
	colAmount      = "Commitment Amount"
	colCurrency    = "Commitment Currency"
)

var requiredColumns = []string{
	colName, colType, colCountry, colDateAdded,
	colLastUpdated, colAssetClass, colAmount, colCurrency,
}

// ReadFile reads seed records from path, picking the reader by file
// extension: .xlsx via excelize, anything else as CSV.
func ReadFile(path string) ([]Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is checked per field below
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	return recordsFromRows(rows)
}

func readXLSX(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedSource)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	return recordsFromRows(rows)
}

// recordsFromRows maps a header row plus data rows to records. A missing
// required header, an unparseable or negative amount, or a field violating
// the model constraints makes the whole source malformed.
func recordsFromRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedSource)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedSource, col)
		}
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		amount, err := decimal.NewFromString(cell(row, colAmount))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad amount %q", ErrMalformedSource, n+2, cell(row, colAmount))
		}

		rec := Record{
			InvestorName:         cell(row, colName),
			InvestorType:         cell(row, colType),
			InvestorCountry:      cell(row, colCountry),
			InvestorDateAdded:    cell(row, colDateAdded),
			InvestorLastUpdated:  cell(row, colLastUpdated),
			CommitmentAssetClass: cell(row, colAssetClass),
			CommitmentAmount:     amount.Round(2),
			CommitmentCurrency:   cell(row, colCurrency),
		}
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedSource, n+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func validateRecord(rec Record) error {
	if err := util.ValidateInvestorName(rec.InvestorName); err != nil {
		return err
	}
	if err := util.ValidateLabel("investor type", rec.InvestorType); err != nil {
		return err
	}
	if err := util.ValidateLabel("investor country", rec.InvestorCountry); err != nil {
		return err
	}
	if err := util.ValidateAssetClass(rec.CommitmentAssetClass); err != nil {
		return err
	}
	if err := util.ValidateCurrency(rec.CommitmentCurrency); err != nil {
		return err
	}
	return util.ValidateAmount(rec.CommitmentAmount)
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
