package ledger_test

import (
	"sync"

	"github.com/eventbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateEvent() {
	event := suite.createEvent("Concert", "1000")

	suite.Assert().NotZero(event.ID)
	suite.Assert().Equal("Concert", event.Name)
	suite.assertDecimal("1000", suite.budget(event.ID))
}

func (suite *TestSuiteStandard) TestCreateEventIDsAscending() {
	first := suite.createEvent("First", "1")
	second := suite.createEvent("Second", "2")

	suite.Assert().Greater(second.ID, first.ID)
}

func (suite *TestSuiteStandard) TestCreateEventNegativeBudget() {
	event := suite.createEvent("Overdrawn", "-25.5")
	suite.assertDecimal("-25.5", suite.budget(event.ID))
}

func (suite *TestSuiteStandard) TestIncreaseBudget() {
	event := suite.createEvent("Festival", "400")

	suite.Require().Nil(suite.store.IncreaseBudget(event.ID, decimal.NewFromInt(50)))
	suite.assertDecimal("450", suite.budget(event.ID))

	suite.Require().Nil(suite.store.IncreaseBudget(event.ID, decimal.NewFromInt(-500)))
	suite.assertDecimal("-50", suite.budget(event.ID))
}

func (suite *TestSuiteStandard) TestIncreaseBudgetConcurrent() {
	event := suite.createEvent("Festival", "0")
	other := suite.createEvent("Market", "1000")

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- suite.store.IncreaseBudget(event.ID, decimal.RequireFromString("0.01"))
		}()
		go func() {
			defer wg.Done()
			errs <- suite.store.Transfer(other.ID, event.ID, decimal.NewFromInt(1))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	suite.assertDecimal("20.2", suite.budget(event.ID))
	suite.assertDecimal("980", suite.budget(other.ID))
}

func (suite *TestSuiteStandard) TestIncreaseBudgetMissingEvent() {
	event := suite.createEvent("Festival", "400")

	suite.Assert().Nil(suite.store.IncreaseBudget(event.ID+1, decimal.NewFromInt(50)))
	suite.assertDecimal("400", suite.budget(event.ID))
}

func (suite *TestSuiteStandard) TestTransfer() {
	a := suite.createEvent("A", "500")
	b := suite.createEvent("B", "200")

	suite.Require().Nil(suite.store.Transfer(a.ID, b.ID, decimal.NewFromInt(100)))

	suite.assertDecimal("400", suite.budget(a.ID))
	suite.assertDecimal("300", suite.budget(b.ID))
	suite.assertDecimal("700", suite.budget(a.ID).Add(suite.budget(b.ID)))
}

func (suite *TestSuiteStandard) TestTransferPreservesSum() {
	tests := []struct {
		name   string
		amount string
	}{
		{"Positive", "100"},
		{"Overspend", "10000"},
		{"Negative", "-250"},
		{"Fraction", "0.01"},
		{"Zero", "0"},
		{"Precise", "33.33333333"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			a := suite.createEvent("A", "500")
			b := suite.createEvent("B", "200")
			sum := suite.budget(a.ID).Add(suite.budget(b.ID))

			amount := decimal.RequireFromString(tt.amount)
			suite.Require().Nil(suite.store.Transfer(a.ID, b.ID, amount))

			suite.assertDecimal(decimal.NewFromInt(500).Sub(amount).String(), suite.budget(a.ID))
			suite.assertDecimal(decimal.NewFromInt(200).Add(amount).String(), suite.budget(b.ID))
			suite.assertDecimal(sum.String(), suite.budget(a.ID).Add(suite.budget(b.ID)))
		})
	}
}

func (suite *TestSuiteStandard) TestTransferHighPrecision() {
	a := suite.createEvent("A", "1234567890.12345678")
	b := suite.createEvent("B", "0.1")

	suite.Require().Nil(suite.store.Transfer(a.ID, b.ID, decimal.RequireFromString("0.00000001")))

	suite.assertDecimal("1234567890.12345677", suite.budget(a.ID))
	suite.assertDecimal("0.10000001", suite.budget(b.ID))
	suite.assertDecimal("1234567890.22345678", suite.budget(a.ID).Add(suite.budget(b.ID)))
}

func (suite *TestSuiteStandard) TestTransferMissingEvent() {
	a := suite.createEvent("A", "500")

	suite.Assert().Nil(suite.store.Transfer(a.ID, a.ID+1, decimal.NewFromInt(100)))
	suite.assertDecimal("500", suite.budget(a.ID))

	suite.Assert().Nil(suite.store.Transfer(a.ID+1, a.ID, decimal.NewFromInt(100)))
	suite.assertDecimal("500", suite.budget(a.ID))
}

func (suite *TestSuiteStandard) TestTransferSameEvent() {
	a := suite.createEvent("A", "500")

	suite.Assert().Nil(suite.store.Transfer(a.ID, a.ID, decimal.NewFromInt(100)))
	suite.assertDecimal("500", suite.budget(a.ID))
}

func (suite *TestSuiteStandard) TestAddExpenditure() {
	event := suite.createEvent("Concert", "1000")

	expenditure := suite.addExpenditure(event.ID, "Stage", "300")
	suite.Assert().NotZero(expenditure.ID)
	suite.Assert().Equal(event.ID, expenditure.EventID)
	suite.Assert().Equal("Stage", expenditure.Description)
	suite.assertDecimal("300", expenditure.Amount.Decimal)
}

func (suite *TestSuiteStandard) TestAddExpenditureGuarded() {
	event := suite.createEvent("Concert", "1000")
	suite.addExpenditure(event.ID, "Stage", "300")

	missing := event.ID + 1
	zero := uint(0)

	tests := []struct {
		name    string
		eventID *uint
	}{
		{"Nil", nil},
		{"Zero", &zero},
		{"Missing event", &missing},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			expenditure, err := suite.store.AddExpenditure(tt.eventID, "Orphan", decimal.NewFromInt(10))
			suite.Assert().Nil(err)
			suite.Assert().Nil(expenditure)
			suite.Assert().Equal(int64(1), suite.countExpenditures())
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteExpenditure() {
	event := suite.createEvent("Concert", "1000")
	stage := suite.addExpenditure(event.ID, "Stage", "300")
	suite.addExpenditure(event.ID, "Sound", "150")

	suite.Require().Nil(suite.store.DeleteExpenditure(stage.ID))

	expenditures, err := suite.store.Expenditures(event.ID)
	suite.Require().Nil(err)
	suite.Require().Len(expenditures, 1)
	suite.Assert().Equal("Sound", expenditures[0].Description)

	// Deleting again is a no-op
	suite.Assert().Nil(suite.store.DeleteExpenditure(stage.ID))
}

func (suite *TestSuiteStandard) TestDeleteEvent() {
	concert := suite.createEvent("Concert", "1000")
	other := suite.createEvent("Other", "100")
	suite.addExpenditure(concert.ID, "Stage", "300")
	suite.addExpenditure(concert.ID, "Sound", "150")
	suite.addExpenditure(other.ID, "Food", "20")

	suite.Require().Nil(suite.store.DeleteEvent(concert.ID))

	_, err := suite.store.Event(concert.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	expenditures, err := suite.store.Expenditures(concert.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(expenditures, 0)

	// Other events are not affected
	suite.Assert().Equal(int64(1), suite.countExpenditures())
	suite.assertDecimal("100", suite.budget(other.ID))

	// Deleting again is a no-op
	suite.Assert().Nil(suite.store.DeleteEvent(concert.ID))
}

func (suite *TestSuiteStandard) TestEvents() {
	suite.createEvent("First", "1")
	suite.createEvent("Second", "2")
	suite.createEvent("Third", "3")

	events, err := suite.store.Events()
	suite.Require().Nil(err)
	suite.Require().Len(events, 3)
	suite.Assert().Equal("First", events[0].Name)
	suite.Assert().Equal("Second", events[1].Name)
	suite.Assert().Equal("Third", events[2].Name)
}

func (suite *TestSuiteStandard) TestOperationsDBClosed() {
	event := suite.createEvent("Concert", "1000")
	suite.CloseDB()

	_, err := suite.store.CreateEvent("Closed", decimal.Zero)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	suite.Assert().ErrorIs(suite.store.IncreaseBudget(event.ID, decimal.NewFromInt(1)), models.ErrGeneral)
	suite.Assert().ErrorIs(suite.store.Transfer(event.ID, event.ID+1, decimal.NewFromInt(1)), models.ErrGeneral)
	suite.Assert().ErrorIs(suite.store.DeleteExpenditure(1), models.ErrGeneral)
	suite.Assert().ErrorIs(suite.store.DeleteEvent(event.ID), models.ErrGeneral)

	id := event.ID
	_, err = suite.store.AddExpenditure(&id, "Stage", decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
