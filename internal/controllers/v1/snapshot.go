package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/ledger"
	"github.com/eventbudget/backend/internal/report"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SnapshotResponse struct {
	Data  *ledger.Snapshot `json:"data"`                                                  // The snapshot of all events
	Error *string          `json:"error" example:"there is no event matching your query"` // The error, if any occurred
}

func RegisterSnapshotRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSnapshot)
		r.GET("", GetSnapshot)
		r.OPTIONS("/xlsx", OptionsSnapshot)
		r.GET("/xlsx", GetSnapshotSpreadsheet)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Snapshot
// @Success		204
// @Router			/v1/snapshot [options]
// @Router			/v1/snapshot/xlsx [options]
func OptionsSnapshot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get snapshot
// @Description	Returns all events with their expenditures, spent and remaining amounts and the totals over all events
// @Tags			Snapshot
// @Produce		json
// @Success		200	{object}	SnapshotResponse
// @Failure		500	{object}	SnapshotResponse
// @Router			/v1/snapshot [get]
func GetSnapshot(c *gin.Context) {
	snapshot, err := store(c).Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SnapshotResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SnapshotResponse{Data: &snapshot})
}

// @Summary		Get snapshot spreadsheet
// @Description	Returns the snapshot as xlsx workbook. The first sheet can be imported again.
// @Tags			Snapshot
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/snapshot/xlsx [get]
func GetSnapshotSpreadsheet(c *gin.Context) {
	snapshot, err := store(c).Snapshot()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	workbook, err := report.Spreadsheet(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"snapshot_%s.xlsx\"", time.Now().Format("20060102_150405")))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
