package models_test

import (
	"encoding/json"
	"time"

	"github.com/eventbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestEventTrimWhitespace() {
	event := suite.createTestEvent(models.Event{
		Name:   "\t Concert  ",
		Budget: models.NewDecimal(decimal.NewFromFloat(1000)),
	})

	suite.Assert().Equal("Concert", event.Name)
}

func (suite *TestSuiteStandard) TestEventTimestampsUTC() {
	event := suite.createTestEvent(models.Event{Name: "Concert"})

	var found models.Event
	suite.Require().Nil(models.DB.First(&found, event.ID).Error)

	suite.Assert().Equal(time.UTC, found.CreatedAt.Location())
	suite.Assert().Equal(time.UTC, found.UpdatedAt.Location())
}

func (suite *TestSuiteStandard) TestEventBudgetPrecision() {
	for _, value := range []string{"1234.56789", "1234567890.12345678", "-0.00000001", "99999999999.99999999"} {
		suite.Run(value, func() {
			budget := decimal.RequireFromString(value)
			event := suite.createTestEvent(models.Event{Name: "Precise", Budget: models.NewDecimal(budget)})

			var found models.Event
			suite.Require().Nil(models.DB.First(&found, event.ID).Error)

			suite.Assert().True(budget.Equal(found.Budget.Decimal), "budget is %s", found.Budget)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenditureAmountPrecision() {
	event := suite.createTestEvent(models.Event{Name: "Concert"})
	amount := decimal.RequireFromString("987654321.98765432")
	expenditure := suite.createTestExpenditure(models.Expenditure{EventID: event.ID, Amount: models.NewDecimal(amount)})

	var found models.Expenditure
	suite.Require().Nil(models.DB.First(&found, expenditure.ID).Error)

	suite.Assert().True(amount.Equal(found.Amount.Decimal), "amount is %s", found.Amount)
}

func (suite *TestSuiteStandard) TestEventExpenditures() {
	concert := suite.createTestEvent(models.Event{Name: "Concert"})
	other := suite.createTestEvent(models.Event{Name: "Other"})

	stage := suite.createTestExpenditure(models.Expenditure{EventID: concert.ID, Description: "Stage", Amount: models.NewDecimal(decimal.NewFromFloat(300))})
	_ = suite.createTestExpenditure(models.Expenditure{EventID: other.ID, Description: "Food", Amount: models.NewDecimal(decimal.NewFromFloat(10))})
	sound := suite.createTestExpenditure(models.Expenditure{EventID: concert.ID, Description: "Sound", Amount: models.NewDecimal(decimal.NewFromFloat(150))})

	expenditures, err := concert.Expenditures(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(expenditures, 2)
	suite.Assert().Equal(stage.ID, expenditures[0].ID)
	suite.Assert().Equal(sound.ID, expenditures[1].ID)
}

func (suite *TestSuiteStandard) TestEventExpendituresNone() {
	event := suite.createTestEvent(models.Event{Name: "Empty"})

	expenditures, err := event.Expenditures(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(expenditures, 0)
}

func (suite *TestSuiteStandard) TestExport() {
	event := suite.createTestEvent(models.Event{Name: "Concert", Budget: models.NewDecimal(decimal.NewFromFloat(1000))})
	_ = suite.createTestExpenditure(models.Expenditure{EventID: event.ID, Description: "Stage", Amount: models.NewDecimal(decimal.NewFromFloat(300))})

	for _, model := range models.Registry {
		b, err := model.Export()
		suite.Require().Nil(err)

		var rows []map[string]any
		suite.Require().Nil(json.Unmarshal(b, &rows))
		suite.Assert().Len(rows, 1)
	}
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	for _, model := range models.Registry {
		_, err := model.Export()
		suite.Assert().ErrorIs(err, models.ErrGeneral)
	}
}

func (suite *TestSuiteStandard) TestExpenditureTrimWhitespace() {
	event := suite.createTestEvent(models.Event{Name: "Concert"})
	expenditure := suite.createTestExpenditure(models.Expenditure{EventID: event.ID, Description: " Stage\n", Amount: models.NewDecimal(decimal.NewFromFloat(300))})

	suite.Assert().Equal("Stage", expenditure.Description)
}
