package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/eventbudget/backend/internal/controllers/v1"
	"github.com/eventbudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), v1.Links{
		Events:       "http://example.com/v1/events",
		Expenditures: "http://example.com/v1/expenditures",
		Transfers:    "http://example.com/v1/transfers",
		Snapshot:     "http://example.com/v1/snapshot",
		Import:       "http://example.com/v1/import",
		Export:       "http://example.com/v1/export",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	event := suite.createTestEvent("Concert", "1000")

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/events", "OPTIONS, GET, POST"},
		{event.Links.Self, "OPTIONS, GET, DELETE"},
		{event.Links.Increase, "OPTIONS, POST"},
		{event.Links.Report, "OPTIONS, GET"},
		{"http://example.com/v1/expenditures", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenditures/1", "OPTIONS, DELETE"},
		{"http://example.com/v1/transfers", "OPTIONS, POST"},
		{"http://example.com/v1/snapshot", "OPTIONS, GET"},
		{"http://example.com/v1/snapshot/xlsx", "OPTIONS, GET"},
		{"http://example.com/v1/import", "OPTIONS, POST"},
		{"http://example.com/v1/export", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.Run(tt.path, func() {
			r := test.Request(suite.T(), http.MethodOptions, tt.path, nil)

			assert.Equal(suite.T(), http.StatusNoContent, r.Code)
			assert.Equal(suite.T(), tt.response, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsEventDetailFails() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/events/42", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/events/concert", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/events", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusMethodNotAllowed, &r)
}

func (suite *TestSuiteStandard) TestCleanup() {
	event := suite.createTestEvent("Concert", "1000")
	_ = suite.createTestExpenditure(event.ID, "Stage", "300")
	_ = suite.createTestEvent("Lecture", "200")

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	for _, path := range []string{"/v1/events", "/v1/expenditures"} {
		suite.Run(path, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com"+path, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(suite.T(), &r, &response)
			assert.Len(suite.T(), response.Data, 0, "There are resources left for %s", path)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	_ = suite.createTestEvent("Concert", "1000")

	tests := []struct {
		name  string
		query string
	}{
		{"No confirmation", ""},
		{"Confirmation wrong", "?confirm=yes"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1%s", tt.query), nil)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
			assert.Equal(suite.T(), "the confirmation for the cleanup API call was incorrect", test.DecodeError(suite.T(), r.Body.Bytes()))
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events", nil)
	var response v1.EventListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}
