package models_test

import (
	"errors"
	"path/filepath"

	"github.com/eventbudget/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDatabaseNotFoundError() {
	var event models.Event
	err := models.DB.First(&event, 42).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no event matching your query", err.Error())

	var expenditure models.Expenditure
	err = models.DB.First(&expenditure, 42).Error
	suite.Assert().Equal("there is no expenditure matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Event{Name: "Closed"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = models.DB.Find(&[]models.Event{}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestHandleError() {
	other := errors.New("some error")

	suite.Assert().Nil(models.HandleError(nil))
	suite.Assert().Equal(other, models.HandleError(other))
	suite.Assert().ErrorIs(models.HandleError(errors.New("sql: database is closed")), models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect(filepath.Join(suite.T().TempDir(), "missing", "directory", "db.sqlite"))
	assert.NotNil(suite.T(), err)

	// Reconnect so that the teardown has a database to close
	suite.SetupTest()
}
