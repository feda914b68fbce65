package importer

import (
	"fmt"
	"io"
	"os"

	"github.com/eventbudget/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Parser parses a file into resources to create.
type Parser func(r io.Reader) (ParsedResources, error)

// Create creates all parsed resources in a single transaction.
func Create(db *gorm.DB, resources ParsedResources) ([]models.Event, error) {
	events := make([]models.Event, 0, len(resources.Events))

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, event := range resources.Events {
			err := tx.Create(&event).Error
			if err != nil {
				return fmt.Errorf("creating event '%s': %w", event.Name, err)
			}

			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, models.HandleError(err)
	}

	return events, nil
}

// ImportIfEmpty imports the file at path when there are no events yet.
//
// A missing file is not an error. The number of created events is returned.
func ImportIfEmpty(db *gorm.DB, path string, parse Parser) (int, error) {
	var count int64
	err := db.Model(&models.Event{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	if count > 0 {
		log.Debug().Int64("events", count).Msg("events exist, skipping import")
		return 0, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("no import file")
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	resources, err := parse(f)
	if err != nil {
		return 0, fmt.Errorf("parsing '%s': %w", path, err)
	}

	events, err := Create(db, resources)
	if err != nil {
		return 0, err
	}

	log.Info().Str("path", path).Int("events", len(events)).Msg("imported events")
	return len(events), nil
}
