package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/eventbudget/backend/internal/importer"
	"github.com/eventbudget/backend/internal/importer/parser/xlsx"
	"github.com/eventbudget/backend/internal/ledger"
	"github.com/eventbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.POST("", ImportSpreadsheet)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import events
// @Description	Creates one event per row of the sheet "Pasākumi". The column "Pasākums" holds the name, "Budžets" the budget. If any row fails, no event is created.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	EventListResponse
// @Failure		400		{object}	EventListResponse
// @Failure		500		{object}	EventListResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func ImportSpreadsheet(c *gin.Context) {
	f, err := getUploadedFile(c, ".xlsx")
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventListResponse{
			Error: &e,
		})
		return
	}
	defer f.Close()

	resources, err := xlsx.Parse(f)
	if err != nil {
		// xlsx.Parse returns a usable error already
		e := err.Error()
		c.JSON(http.StatusBadRequest, EventListResponse{
			Error: &e,
		})
		return
	}

	events, err := importer.Create(models.DB.WithContext(c.Request.Context()), resources)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Event, 0, len(events))
	for _, event := range events {
		data = append(data, newEvent(c, ledger.Summarize(event, nil)))
	}

	c.JSON(http.StatusCreated, EventListResponse{Data: data})
}
