// Package version reports which build of the event budget backend is running.
package version

import (
	"net/http"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Name identifies the event budget backend in version responses.
const Name = "event-budget-backend"

// Version of the API
//
// This is set at build time with -ldflags "-X main.version=..."
var apiVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Name    string `json:"name" example:"event-budget-backend"` // Name of the backend
	Version string `json:"version" example:"1.1.0"`             // the running version of the backend
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	// set the API version so that responses are correct
	apiVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the name and software version of the event budget backend
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Name:    Name,
			Version: apiVersion,
		},
	})
}
