package v1_test

import (
	"bytes"
	"net/http"

	v1 "github.com/eventbudget/backend/internal/controllers/v1"
	"github.com/eventbudget/backend/internal/importer/parser/xlsx"
	"github.com/eventbudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

// workbook returns an xlsx file with one row per event. Each event is
// a pair of name and budget.
func (suite *TestSuiteStandard) workbook(events ...[2]any) []byte {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	suite.Require().Nil(f.SetSheetName(sheet, xlsx.SheetName))
	suite.Require().Nil(f.SetSheetRow(xlsx.SheetName, "A1", &[]any{xlsx.NameColumn, xlsx.BudgetColumn}))

	for i, event := range events {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		suite.Require().Nil(err)
		suite.Require().Nil(f.SetSheetRow(xlsx.SheetName, cell, &[]any{event[0], event[1]}))
	}

	var buf bytes.Buffer
	suite.Require().Nil(f.Write(&buf))
	return buf.Bytes()
}

func (suite *TestSuiteStandard) TestImport() {
	_ = suite.createTestEvent("Existing", "10")

	body, headers := test.UploadFile(suite.T(), "events.xlsx", suite.workbook(
		[2]any{"Koncerts", 1000},
		[2]any{"Lekcija", 250.5},
	))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.EventListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "Koncerts", response.Data[0].Name)
	assertDecimal(suite.T(), "1000", response.Data[0].Budget.Decimal)
	assert.Equal(suite.T(), "Lekcija", response.Data[1].Name)
	assertDecimal(suite.T(), "250.5", response.Data[1].Budget.Decimal)

	// Imported events are added to the existing ones
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events", nil)
	var list v1.EventListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 3)
}

func (suite *TestSuiteStandard) TestImportFails() {
	tests := []struct {
		name     string
		fileName string
		content  []byte
	}{
		{"Wrong suffix", "events.csv", []byte("Pasākums,Budžets\nKoncerts,1000\n")},
		{"Not a workbook", "events.xlsx", []byte("this is not a spreadsheet")},
		{"Invalid budget", "events.xlsx", suite.workbook([2]any{"Koncerts", 1000}, [2]any{"Lekcija", "a lot"})},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body, headers := test.UploadFile(suite.T(), tt.fileName, tt.content)

			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
			assert.NotEmpty(suite.T(), test.DecodeError(suite.T(), r.Body.Bytes()))
		})
	}

	// Nothing is imported when a row fails
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events", nil)
	var list v1.EventListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	assert.Equal(suite.T(), "you must send a file to this endpoint", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestImportDBClosed() {
	body, headers := test.UploadFile(suite.T(), "events.xlsx", suite.workbook([2]any{"Koncerts", 1000}))
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}
