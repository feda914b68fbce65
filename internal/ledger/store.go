// Package ledger implements the budget ledger: events with their budgets,
// expenditures recorded against them and the aggregation of both.
//
// All mutations run in a database transaction. Operations on ids that
// do not exist are no-ops, not errors.
package ledger

import (
	"context"

	"github.com/eventbudget/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the ledger on top of a database handle.
type Store struct {
	db *gorm.DB
}

// New returns a Store using the database handle.
func New(db *gorm.DB) Store {
	return Store{db: db}
}

// WithContext returns a Store whose queries use ctx.
func (s Store) WithContext(ctx context.Context) Store {
	return Store{db: s.db.WithContext(ctx)}
}

// transaction runs fn in a database transaction. It is committed when fn
// returns nil and rolled back on errors and panics.
func (s Store) transaction(fn func(tx *gorm.DB) error) error {
	return models.HandleError(s.db.Transaction(fn))
}

// Event returns the event with the id. If it does not exist, the error
// wraps models.ErrResourceNotFound.
func (s Store) Event(id uint) (models.Event, error) {
	var event models.Event
	err := s.db.First(&event, id).Error
	return event, err
}

// Events returns all events in insertion order.
func (s Store) Events() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Order("id ASC").Find(&events).Error
	return events, err
}

// Expenditures returns all expenditures of the event in insertion order.
func (s Store) Expenditures(eventID uint) ([]models.Expenditure, error) {
	return models.Event{Model: models.Model{ID: eventID}}.Expenditures(s.db)
}

// forUpdate locks the selected rows until the transaction ends, so that
// budgets are not updated from stale reads. SQLite has no row locks, its
// dialect drops the clause and the single connection serializes writers.
func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// findEvent looks up and locks an event without treating a missing row
// as an error.
func findEvent(tx *gorm.DB, id uint) (models.Event, bool, error) {
	var events []models.Event
	err := forUpdate(tx).Where("id = ?", id).Limit(1).Find(&events).Error
	if err != nil || len(events) == 0 {
		return models.Event{}, false, err
	}

	return events[0], true, nil
}

// lockEvents looks up and locks the events with the ids. Rows are locked in
// ascending id order, concurrent transfers between the same events in
// opposite directions wait for each other instead of deadlocking.
func lockEvents(tx *gorm.DB, ids ...uint) (map[uint]models.Event, error) {
	var events []models.Event
	err := forUpdate(tx).Where("id IN ?", ids).Order("id ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	return byID, nil
}
