// Package xlsx parses budget spreadsheets.
//
// The workbook must have a sheet named "Pasākumi" whose first row is a header.
// The column "Pasākums" holds the event name, "Budžets" the budget.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eventbudget/backend/internal/importer"
	"github.com/eventbudget/backend/internal/ledger"
	"github.com/eventbudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName    = "Pasākumi"
	NameColumn   = "Pasākums"
	BudgetColumn = "Budžets"
)

var (
	ErrSheetMissing  = fmt.Errorf("the workbook has no sheet named '%s'", SheetName)
	ErrColumnMissing = errors.New("the sheet is missing a required column")
)

// Parse reads all events from the workbook.
//
// Rows without a name are skipped, an empty budget is zero. A budget that
// is not a number fails the whole import.
func Parse(r io.Reader) (importer.ParsedResources, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(SheetName)
	if err != nil || idx == -1 {
		return importer.ParsedResources{}, ErrSheetMissing
	}

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("could not read sheet: %w", err)
	}

	resources := importer.ParsedResources{Events: []models.Event{}}
	if len(rows) == 0 {
		return resources, nil
	}

	nameIdx, budgetIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case NameColumn:
			nameIdx = i
		case BudgetColumn:
			budgetIdx = i
		}
	}

	if nameIdx == -1 {
		return importer.ParsedResources{}, fmt.Errorf("%w: %s", ErrColumnMissing, NameColumn)
	}

	if budgetIdx == -1 {
		return importer.ParsedResources{}, fmt.Errorf("%w: %s", ErrColumnMissing, BudgetColumn)
	}

	for i, row := range rows[1:] {
		name := cell(row, nameIdx)
		if name == "" {
			continue
		}

		budget := decimal.Zero
		if value := cell(row, budgetIdx); value != "" {
			budget, err = ledger.ParseAmount(value)
		}
		if err != nil {
			// Row numbers in spreadsheets start at 1, the header is row 1
			return importer.ParsedResources{}, fmt.Errorf("row %d: %w", i+2, err)
		}

		resources.Events = append(resources.Events, models.Event{
			Name:   name,
			Budget: models.NewDecimal(budget),
		})
	}

	return resources, nil
}

// cell returns the trimmed value of the column. GetRows omits trailing empty cells.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
