package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/ledger"
	"github.com/eventbudget/backend/internal/report"
	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes registers the routes for events with
// the RouterGroup that is passed.
func RegisterEventRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEventList)
		r.GET("", GetEvents)
		r.POST("", CreateEvent)
	}

	// Event with ID
	{
		r.OPTIONS("/:id", OptionsEventDetail)
		r.GET("/:id", GetEvent)
		r.DELETE("/:id", DeleteEvent)
		r.OPTIONS("/:id/increase", OptionsEventIncrease)
		r.POST("/:id/increase", IncreaseEventBudget)
		r.OPTIONS("/:id/report", OptionsEventReport)
		r.GET("/:id/report", GetEventReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func OptionsEventList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/events/{id} [options]
func OptionsEventDetail(c *gin.Context) {
	if _, ok := getEvent(c); !ok {
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Param			id	path	URIID	true	"ID formatted as string"
// @Router			/v1/events/{id}/increase [options]
func OptionsEventIncrease(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Param			id	path	URIID	true	"ID formatted as string"
// @Router			/v1/events/{id}/report [options]
func OptionsEventReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create event
// @Description	Creates a new event with its initial budget
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		201		{object}	EventResponse
// @Failure		400		{object}	EventResponse
// @Failure		500		{object}	EventResponse
// @Param			event	body		EventEditable	true	"Event"
// @Router			/v1/events [post]
func CreateEvent(c *gin.Context) {
	var editable EventEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	budget, err := editable.Budget.Value()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	event, err := store(c).CreateEvent(editable.Name, budget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	data := newEvent(c, ledger.Summarize(event, nil))
	c.JSON(http.StatusCreated, EventResponse{Data: &data})
}

// @Summary		List events
// @Description	Returns all events in the order they were created, with spent and remaining amounts
// @Tags			Events
// @Produce		json
// @Success		200		{object}	EventListResponse
// @Failure		500		{object}	EventListResponse
// @Param			name	query		string	false	"Filter by name, case insensitive substring match"
// @Router			/v1/events [get]
func GetEvents(c *gin.Context) {
	var filter EventQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	snapshot, err := store(c).Snapshot()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Event, 0, len(snapshot.Events))
	for _, summary := range snapshot.Events {
		if filter.Name != "" && !strings.Contains(strings.ToLower(summary.Name), strings.ToLower(filter.Name)) {
			continue
		}

		data = append(data, newEvent(c, summary))
	}

	c.JSON(http.StatusOK, EventListResponse{Data: data})
}

// @Summary		Get event
// @Description	Returns a specific event with its expenditures, spent and remaining amounts
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventResponse
// @Failure		400	{object}	EventResponse
// @Failure		404	{object}	EventResponse
// @Failure		500	{object}	EventResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/events/{id} [get]
func GetEvent(c *gin.Context) {
	summary, ok := getEvent(c)
	if !ok {
		return
	}

	data := newEvent(c, summary)
	c.JSON(http.StatusOK, EventResponse{Data: &data})
}

// @Summary		Delete event
// @Description	Deletes an event and all of its expenditures. Deleting an event that does not exist does nothing.
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = store(c).DeleteEvent(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Increase budget
// @Description	Adds the amount to the budget of the event. Increasing the budget of an event that does not exist does nothing.
// @Tags			Events
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			amount	body		EventIncrease	true	"Amount"
// @Router			/v1/events/{id}/increase [post]
func IncreaseEventBudget(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var data EventIncrease
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	amount, err := data.Amount.Value()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = store(c).IncreaseBudget(uri.ID, amount)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get report
// @Description	Returns the PDF report for the event, listing its budget and expenditures on a single page
// @Tags			Events
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/events/{id}/report [get]
func GetEventReport(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	document, err := report.Render(store(c), uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"report_%d.pdf\"", uri.ID))
	c.Data(http.StatusOK, "application/pdf", document)
}

// getEvent binds the ID from the URI and returns the summary for the event.
// If an error occurs, the response is written and ok is false.
func getEvent(c *gin.Context) (ledger.EventSummary, bool) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return ledger.EventSummary{}, false
	}

	summary, err := store(c).Summary(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return ledger.EventSummary{}, false
	}

	return summary, true
}
