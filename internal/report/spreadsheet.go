package report

import (
	"bytes"
	"fmt"

	"github.com/eventbudget/backend/internal/importer/parser/xlsx"
	"github.com/eventbudget/backend/internal/ledger"
	"github.com/xuri/excelize/v2"
)

// TotalsSheet is the name of the sheet with the totals over all events.
const TotalsSheet = "Summary"

// Spreadsheet renders the snapshot as an xlsx workbook.
//
// The first sheet uses the layout of the import, so the file can be
// imported again to recreate the events with their current budgets.
func Spreadsheet(snapshot ledger.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName(f.GetSheetName(0), xlsx.SheetName)
	if err != nil {
		return nil, err
	}

	err = f.SetSheetRow(xlsx.SheetName, "A1", &[]any{xlsx.NameColumn, xlsx.BudgetColumn, "Spent", "Remaining"})
	if err != nil {
		return nil, err
	}

	for i, event := range snapshot.Events {
		err = f.SetSheetRow(xlsx.SheetName, fmt.Sprintf("A%d", i+2), &[]any{
			event.Name,
			event.Budget.InexactFloat64(),
			event.Spent.InexactFloat64(),
			event.Remaining.InexactFloat64(),
		})
		if err != nil {
			return nil, err
		}
	}

	_, err = f.NewSheet(TotalsSheet)
	if err != nil {
		return nil, err
	}

	totals := [][]any{
		{"Budget", snapshot.TotalBudget.InexactFloat64()},
		{"Spent", snapshot.TotalSpent.InexactFloat64()},
		{"Remaining", snapshot.TotalRemaining.InexactFloat64()},
	}
	for i, row := range totals {
		err = f.SetSheetRow(TotalsSheet, fmt.Sprintf("A%d", i+1), &row)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	err = f.Write(&buf)
	if err != nil {
		return nil, fmt.Errorf("writing spreadsheet: %w", err)
	}

	return buf.Bytes(), nil
}
