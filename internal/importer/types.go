package importer

import (
	"github.com/eventbudget/backend/internal/models"
)

// ParsedResources is the struct containing all resources that are to be created.
type ParsedResources struct {
	Events []models.Event
}
