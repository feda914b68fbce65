package v1

import (
	"fmt"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ExpenditureEditable contains the fields to record an expenditure.
type ExpenditureEditable struct {
	EventID     httputil.OptionalID `json:"eventId" swaggertype:"integer" example:"3"`  // ID of the event. If empty or 0, the expenditure is not recorded
	Description string              `json:"description" example:"Stage rental"`         // What the money was spent on
	Amount      httputil.Amount     `json:"amount" swaggertype:"string" example:"12.5"` // The amount spent. Can be negative for refunds
}

type ExpenditureLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/expenditures/17"` // The expenditure itself
	Event string `json:"event" example:"https://example.com/api/v1/events/3"`       // The event the expenditure belongs to
}

// Expenditure is the API representation of an expenditure.
type Expenditure struct {
	models.Expenditure
	Links ExpenditureLinks `json:"links"`
}

func newExpenditure(c *gin.Context, model models.Expenditure) Expenditure {
	return Expenditure{
		Expenditure: model,
		Links: ExpenditureLinks{
			Self:  fmt.Sprintf("%s/v1/expenditures/%d", url(c), model.ID),
			Event: fmt.Sprintf("%s/v1/events/%d", url(c), model.EventID),
		},
	}
}

type ExpenditureListResponse struct {
	Data       []Expenditure `json:"data"`                                             // List of expenditures
	Error      *string       `json:"error" example:"the amount is not a valid number"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                       // Pagination information
}

type ExpenditureResponse struct {
	Data  *Expenditure `json:"data"`                                             // Data for the expenditure
	Error *string      `json:"error" example:"the amount is not a valid number"` // The error, if any occurred
}

type ExpenditureQueryFilter struct {
	EventID     uint   `form:"event"`                           // By ID of the event
	Description string `form:"description" filterField:"false"` // Glob pattern for the description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first expenditure returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of expenditures to return. Defaults to 50.
}

func (f ExpenditureQueryFilter) model() models.Expenditure {
	return models.Expenditure{
		EventID: f.EventID,
	}
}
