package v1_test

import (
	"bytes"
	"net/http"
	"strings"

	v1 "github.com/eventbudget/backend/internal/controllers/v1"
	"github.com/eventbudget/backend/internal/importer/parser/xlsx"
	"github.com/eventbudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSnapshot() {
	concert := suite.createTestEvent("Concert", "1000")
	lecture := suite.createTestEvent("Lecture", "200")
	_ = suite.createTestExpenditure(concert.ID, "Stage", "300")
	_ = suite.createTestExpenditure(concert.ID, "Sound", "150")
	_ = suite.createTestExpenditure(lecture.ID, "Projector", "250")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/snapshot", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SnapshotResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	snapshot := response.Data
	suite.Require().Len(snapshot.Events, 2)
	assert.Equal(suite.T(), "Concert", snapshot.Events[0].Name)
	assertDecimal(suite.T(), "450", snapshot.Events[0].Spent)
	assertDecimal(suite.T(), "550", snapshot.Events[0].Remaining)
	assert.Len(suite.T(), snapshot.Events[0].Expenditures, 2)

	assert.Equal(suite.T(), "Lecture", snapshot.Events[1].Name)
	assertDecimal(suite.T(), "-50", snapshot.Events[1].Remaining)

	assertDecimal(suite.T(), "1200", snapshot.TotalBudget)
	assertDecimal(suite.T(), "700", snapshot.TotalSpent)
	assertDecimal(suite.T(), "500", snapshot.TotalRemaining)
}

func (suite *TestSuiteStandard) TestSnapshotEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/snapshot", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SnapshotResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	assert.Len(suite.T(), response.Data.Events, 0)
	assertDecimal(suite.T(), "0", response.Data.TotalBudget)
	assertDecimal(suite.T(), "0", response.Data.TotalRemaining)
}

func (suite *TestSuiteStandard) TestSnapshotSpreadsheet() {
	concert := suite.createTestEvent("Concert", "1000")
	_ = suite.createTestEvent("Lecture", "200.5")
	_ = suite.createTestExpenditure(concert.ID, "Stage", "300")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/snapshot/xlsx", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	disposition := r.Header().Get("Content-Disposition")
	assert.True(suite.T(), strings.HasPrefix(disposition, "attachment; filename=\"snapshot_"), disposition)
	assert.True(suite.T(), strings.HasSuffix(disposition, ".xlsx\""), disposition)

	// The workbook can be imported again
	resources, err := xlsx.Parse(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	suite.Require().Len(resources.Events, 2)
	assert.Equal(suite.T(), "Concert", resources.Events[0].Name)
	assertDecimal(suite.T(), "1000", resources.Events[0].Budget.Decimal)
	assert.Equal(suite.T(), "Lecture", resources.Events[1].Name)
	assertDecimal(suite.T(), "200.5", resources.Events[1].Budget.Decimal)
}

func (suite *TestSuiteStandard) TestSnapshotDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"/v1/snapshot", "/v1/snapshot/xlsx"} {
		suite.Run(path, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com"+path, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
		})
	}
}
