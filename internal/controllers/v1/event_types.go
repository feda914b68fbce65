package v1

import (
	"fmt"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// EventEditable contains the fields to create an event.
type EventEditable struct {
	Name   string          `json:"name" example:"Concert"`                     // Name of the event
	Budget httputil.Amount `json:"budget" swaggertype:"string" example:"1000"` // Initial budget of the event
}

// EventIncrease is the request body to increase the budget of an event.
type EventIncrease struct {
	Amount httputil.Amount `json:"amount" swaggertype:"string" example:"50"` // The amount to add to the budget. Can be negative
}

type EventLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/events/3"`                     // The event itself
	Expenditures string `json:"expenditures" example:"https://example.com/api/v1/expenditures?event=3"` // Expenditures for this event
	Increase     string `json:"increase" example:"https://example.com/api/v1/events/3/increase"`        // Endpoint to increase the budget
	Report       string `json:"report" example:"https://example.com/api/v1/events/3/report"`            // PDF report for this event
}

// Event is the API representation of an event with its spent and remaining amounts.
type Event struct {
	ledger.EventSummary
	Links EventLinks `json:"links"`
}

func newEvent(c *gin.Context, summary ledger.EventSummary) Event {
	self := fmt.Sprintf("%s/v1/events/%d", url(c), summary.ID)

	return Event{
		EventSummary: summary,
		Links: EventLinks{
			Self:         self,
			Expenditures: fmt.Sprintf("%s/v1/expenditures?event=%d", url(c), summary.ID),
			Increase:     self + "/increase",
			Report:       self + "/report",
		},
	}
}

type EventListResponse struct {
	Data  []Event `json:"data"`                                             // List of events
	Error *string `json:"error" example:"the amount is not a valid number"` // The error, if any occurred
}

type EventResponse struct {
	Data  *Event  `json:"data"`                                             // Data for the event
	Error *string `json:"error" example:"the amount is not a valid number"` // The error, if any occurred
}

type EventQueryFilter struct {
	Name string `form:"name" filterField:"false"` // Filter by name
}
