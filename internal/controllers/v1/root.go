package v1

import (
	"net/http"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Events       string `json:"events" example:"https://example.com/api/v1/events"`             // URL of Event collection endpoint
	Expenditures string `json:"expenditures" example:"https://example.com/api/v1/expenditures"` // URL of Expenditure collection endpoint
	Transfers    string `json:"transfers" example:"https://example.com/api/v1/transfers"`       // URL of Transfer endpoint
	Snapshot     string `json:"snapshot" example:"https://example.com/api/v1/snapshot"`         // URL of Snapshot endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/import"`             // URL of import endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export"`             // URL of export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: Links{
			Events:       url(c) + "/v1/events",
			Expenditures: url(c) + "/v1/expenditures",
			Transfers:    url(c) + "/v1/transfers",
			Snapshot:     url(c) + "/v1/snapshot",
			Import:       url(c) + "/v1/import",
			Export:       url(c) + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all events and expenditures
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Expenditures reference events, so they are deleted first
	resources := []any{
		&models.Expenditure{},
		&models.Event{},
	}

	err = models.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, model := range resources {
			err := tx.Where("1 = 1").Delete(model).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	err = models.HandleError(err)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
