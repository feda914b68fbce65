package v1

import (
	"github.com/eventbudget/backend/internal/ledger"
	"github.com/eventbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID uint `uri:"id" binding:"required" example:"3"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// store returns the ledger for the request.
func store(c *gin.Context) ledger.Store {
	return ledger.New(models.DB).WithContext(c.Request.Context())
}

// url returns the base URL of the API.
func url(c *gin.Context) string {
	return c.GetString(string(models.ContextURL))
}
