// Package healthz reports whether the event budget backend can serve
// requests: the database must be reachable and hold the ledger tables.
package healthz

import (
	"errors"
	"net/http"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

var errLedgerTables = errors.New("the database does not contain the event and expenditure tables")

type Response struct {
	Error string `json:"error" example:"sql: database is closed"` // The error, if the ledger database is not usable
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Checks that the ledger database is reachable and migrated. Returns an error if it is not
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	err := check(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func check(c *gin.Context) error {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	err = sqlDB.PingContext(c.Request.Context())
	if err != nil {
		return err
	}

	migrator := models.DB.WithContext(c.Request.Context()).Migrator()
	if !migrator.HasTable(&models.Event{}) || !migrator.HasTable(&models.Expenditure{}) {
		return errLedgerTables
	}

	return nil
}
