package ledger

import (
	"fmt"

	"github.com/eventbudget/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateEvent creates an event with the initial budget. Neither the name
// nor the sign of the budget are checked.
func (s Store) CreateEvent(name string, budget decimal.Decimal) (models.Event, error) {
	event := models.Event{
		Name:   name,
		Budget: models.NewDecimal(budget),
	}

	err := s.transaction(func(tx *gorm.DB) error {
		return tx.Create(&event).Error
	})
	if err != nil {
		return models.Event{}, fmt.Errorf("creating event: %w", err)
	}

	return event, nil
}

// IncreaseBudget adds amount to the budget of the event.
func (s Store) IncreaseBudget(eventID uint, amount decimal.Decimal) error {
	return s.transaction(func(tx *gorm.DB) error {
		event, ok, err := findEvent(tx, eventID)
		if err != nil {
			return err
		}

		if !ok {
			log.Debug().Uint("event", eventID).Msg("budget increase for missing event ignored")
			return nil
		}

		return setBudget(tx, event, event.Budget.Add(amount))
	})
}

// Transfer moves amount from the budget of one event to another.
//
// Both budgets are updated in the same transaction, their sum does not
// change. The source may end up with a negative budget. If either event
// does not exist, nothing is changed.
func (s Store) Transfer(fromID, toID uint, amount decimal.Decimal) error {
	if fromID == toID {
		return nil
	}

	return s.transaction(func(tx *gorm.DB) error {
		events, err := lockEvents(tx, fromID, toID)
		if err != nil {
			return err
		}

		from, ok := events[fromID]
		if !ok {
			return nil
		}

		to, ok := events[toID]
		if !ok {
			return nil
		}

		err = setBudget(tx, from, from.Budget.Sub(amount))
		if err != nil {
			return err
		}

		return setBudget(tx, to, to.Budget.Add(amount))
	})
}

// AddExpenditure records an expenditure for the event.
//
// When eventID is nil or zero, or the event does not exist, no expenditure
// is created and both return values are nil.
func (s Store) AddExpenditure(eventID *uint, description string, amount decimal.Decimal) (*models.Expenditure, error) {
	if eventID == nil || *eventID == 0 {
		log.Debug().Str("description", description).Msg("expenditure without event dropped")
		return nil, nil
	}

	var created *models.Expenditure
	err := s.transaction(func(tx *gorm.DB) error {
		_, ok, err := findEvent(tx, *eventID)
		if err != nil || !ok {
			return err
		}

		expenditure := models.Expenditure{
			EventID:     *eventID,
			Description: description,
			Amount:      models.NewDecimal(amount),
		}

		err = tx.Create(&expenditure).Error
		if err != nil {
			return err
		}

		created = &expenditure
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating expenditure: %w", err)
	}

	return created, nil
}

// DeleteExpenditure deletes the expenditure with the id.
func (s Store) DeleteExpenditure(id uint) error {
	return s.transaction(func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&models.Expenditure{}).Error
	})
}

// DeleteEvent deletes the event and all of its expenditures.
func (s Store) DeleteEvent(id uint) error {
	return s.transaction(func(tx *gorm.DB) error {
		err := tx.Where("event_id = ?", id).Delete(&models.Expenditure{}).Error
		if err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Event{}).Error
	})
}

func setBudget(tx *gorm.DB, event models.Event, budget decimal.Decimal) error {
	return tx.Model(&event).Update("budget", models.NewDecimal(budget)).Error
}
