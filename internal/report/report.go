// Package report renders the PDF report for a single event and the
// spreadsheet of a ledger snapshot.
package report

import (
	"bytes"
	"fmt"

	"github.com/eventbudget/backend/internal/ledger"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Layout of the report page, in points from the top left corner of an A4 page.
const (
	marginLeft       = 50.0
	titleTop         = 42.0
	headerSpacing    = 30.0
	lineSpacing      = 20.0
	fontFamily       = "Helvetica"
	fontSize         = 12.0
	currencySymbol   = "€"
	amountDecimalMax = 2
)

// Render loads the event and its expenditures and renders the report.
//
// If the event does not exist, the error wraps models.ErrResourceNotFound.
func Render(store ledger.Store, eventID uint) ([]byte, error) {
	summary, err := store.Summary(eventID)
	if err != nil {
		return nil, err
	}

	return Document(summary)
}

// Document renders the report for the summary of an event.
//
// The page contains the title, the budget and one line per expenditure.
// Expenditures that do not fit on the page are cut off.
func Document(summary ledger.EventSummary) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(summary.Name, true)
	pdf.SetCreator("event budget", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	lines := Lines(summary)
	y := titleTop
	for i, line := range lines {
		pdf.Text(marginLeft, y, encode(line))

		if i < 2 {
			y += headerSpacing
		} else {
			y += lineSpacing
		}
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	return buf.Bytes(), nil
}

// Lines returns the text lines of the report from top to bottom: the title,
// the budget and one line per expenditure.
func Lines(summary ledger.EventSummary) []string {
	lines := make([]string, 0, len(summary.Expenditures)+2)
	lines = append(lines,
		fmt.Sprintf("Report: %s", summary.Name),
		fmt.Sprintf("Budget: %s %s", formatAmount(summary.Budget.Decimal), currencySymbol),
	)

	for _, e := range summary.Expenditures {
		lines = append(lines, fmt.Sprintf("%s - %s %s", e.Description, formatAmount(e.Amount.Decimal), currencySymbol))
	}

	return lines
}

// formatAmount prints amounts with at least two decimals. Amounts with more
// decimals keep them.
func formatAmount(d decimal.Decimal) string {
	if d.Equal(d.Round(amountDecimalMax)) {
		return d.StringFixed(amountDecimalMax)
	}

	return d.String()
}
