// Package root serves the entrypoint of the event budget API.
package root

import (
	"net/http"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs     string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz  string `json:"healthz" example:"https://example.com/api/healthz"`      // Healthz endpoint
	Version  string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Metrics  string `json:"metrics" example:"https://example.com/api/metrics"`      // Endpoint returning Prometheus metrics
	V1       string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
	Events   string `json:"events" example:"https://example.com/api/v1/events"`     // Events with their budgets
	Snapshot string `json:"snapshot" example:"https://example.com/api/v1/snapshot"` // Snapshot of all budgets and spendings
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the event budget API, listing all endpoints and the most used ledger resources
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:     url + "/docs/index.html",
			Healthz:  url + "/healthz",
			Version:  url + "/version",
			Metrics:  url + "/metrics",
			V1:       url + "/v1",
			Events:   url + "/v1/events",
			Snapshot: url + "/v1/snapshot",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
