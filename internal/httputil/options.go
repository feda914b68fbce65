package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// allow answers an OPTIONS request with the allowed methods. OPTIONS
// itself is always allowed.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

func OptionsPost(c *gin.Context) {
	allow(c, http.MethodPost)
}

func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

func OptionsDelete(c *gin.Context) {
	allow(c, http.MethodDelete)
}

func OptionsGetDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodDelete)
}
