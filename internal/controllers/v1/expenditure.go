package v1

import (
	"net/http"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterExpenditureRoutes registers the routes for expenditures with
// the RouterGroup that is passed.
func RegisterExpenditureRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenditureList)
		r.GET("", GetExpenditures)
		r.POST("", CreateExpenditure)
	}

	// Expenditure with ID
	{
		r.OPTIONS("/:id", OptionsExpenditureDetail)
		r.DELETE("/:id", DeleteExpenditure)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenditures
// @Success		204
// @Router			/v1/expenditures [options]
func OptionsExpenditureList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenditures
// @Success		204
// @Param			id	path	URIID	true	"ID formatted as string"
// @Router			/v1/expenditures/{id} [options]
func OptionsExpenditureDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Create expenditure
// @Description	Records an expenditure for an event. If the event ID is empty or the event does not exist, nothing is recorded and 204 is returned.
// @Tags			Expenditures
// @Accept			json
// @Produce		json
// @Success		201			{object}	ExpenditureResponse
// @Success		204
// @Failure		400			{object}	ExpenditureResponse
// @Failure		500			{object}	ExpenditureResponse
// @Param			expenditure	body		ExpenditureEditable	true	"Expenditure"
// @Router			/v1/expenditures [post]
func CreateExpenditure(c *gin.Context) {
	var editable ExpenditureEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenditureResponse{
			Error: &e,
		})
		return
	}

	amount, err := editable.Amount.Value()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenditureResponse{
			Error: &e,
		})
		return
	}

	expenditure, err := store(c).AddExpenditure(editable.EventID.Pointer(), editable.Description, amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenditureResponse{
			Error: &e,
		})
		return
	}

	if expenditure == nil {
		c.Status(http.StatusNoContent)
		return
	}

	data := newExpenditure(c, *expenditure)
	c.JSON(http.StatusCreated, ExpenditureResponse{Data: &data})
}

// @Summary		List expenditures
// @Description	Returns a list of expenditures in the order they were recorded
// @Tags			Expenditures
// @Produce		json
// @Success		200			{object}	ExpenditureListResponse
// @Failure		400			{object}	ExpenditureListResponse
// @Failure		500			{object}	ExpenditureListResponse
// @Param			event		query		uint	false	"Filter by event ID"
// @Param			description	query		string	false	"Filter by description. Supports * as wildcard"
// @Param			offset		query		uint	false	"The offset of the first expenditure returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of expenditures to return. Defaults to 50."
// @Router			/v1/expenditures [get]
func GetExpenditures(c *gin.Context) {
	var filter ExpenditureQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenditureListResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var expenditures []models.Expenditure
	err := models.DB.
		WithContext(c.Request.Context()).
		Order("id ASC").
		Where(filter.model(), queryFields...).
		Find(&expenditures).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenditureListResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(setFields, "Description") {
		matching := make([]models.Expenditure, 0, len(expenditures))
		for _, expenditure := range expenditures {
			if glob.Glob(filter.Description, expenditure.Description) {
				matching = append(matching, expenditure)
			}
		}
		expenditures = matching
	}

	total := len(expenditures)

	// Default to 50 expenditures and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	start := min(int(filter.Offset), total)
	end := total
	if limit >= 0 {
		end = min(start+limit, total)
	}

	apiResources := make([]Expenditure, 0, end-start)
	for _, expenditure := range expenditures[start:end] {
		apiResources = append(apiResources, newExpenditure(c, expenditure))
	}

	c.JSON(http.StatusOK, ExpenditureListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Delete expenditure
// @Description	Deletes an expenditure. Deleting an expenditure that does not exist does nothing.
// @Tags			Expenditures
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/expenditures/{id} [delete]
func DeleteExpenditure(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = store(c).DeleteExpenditure(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
