package ledger

import (
	"fmt"

	"github.com/eventbudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventSummary is an event with its expenditures and the amounts derived from them.
type EventSummary struct {
	models.Event
	Spent        decimal.Decimal      `json:"spent" example:"450"`     // Sum of all expenditure amounts
	Remaining    decimal.Decimal      `json:"remaining" example:"550"` // Budget minus spent
	Expenditures []models.Expenditure `json:"expenditures"`            // Expenditures in insertion order
}

// Snapshot is the state of all events at one point in time.
type Snapshot struct {
	Events         []EventSummary  `json:"events"`                       // Events in insertion order
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"1200"`   // Sum of all budgets
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"450"`     // Sum of all spent amounts
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"750"` // Total budget minus total spent
}

// Summarize calculates spent and remaining amounts for the event.
func Summarize(event models.Event, expenditures []models.Expenditure) EventSummary {
	spent := decimal.Zero
	for _, e := range expenditures {
		spent = spent.Add(e.Amount.Decimal)
	}

	if expenditures == nil {
		expenditures = []models.Expenditure{}
	}

	return EventSummary{
		Event:        event,
		Spent:        spent,
		Remaining:    event.Budget.Sub(spent),
		Expenditures: expenditures,
	}
}

// Summary returns the summary for a single event.
func (s Store) Summary(eventID uint) (EventSummary, error) {
	var summary EventSummary
	err := s.transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := tx.First(&event, eventID).Error
		if err != nil {
			return err
		}

		expenditures, err := event.Expenditures(tx)
		if err != nil {
			return err
		}

		summary = Summarize(event, expenditures)
		return nil
	})

	return summary, err
}

// Snapshot calculates spent and remaining amounts for all events and the totals
// over all events. Events and expenditures are read in the same transaction.
func (s Store) Snapshot() (Snapshot, error) {
	var (
		events       []models.Event
		expenditures []models.Expenditure
	)

	err := s.transaction(func(tx *gorm.DB) error {
		err := tx.Order("id ASC").Find(&events).Error
		if err != nil {
			return err
		}

		return tx.Order("id ASC").Find(&expenditures).Error
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading ledger: %w", err)
	}

	byEvent := make(map[uint][]models.Expenditure, len(events))
	for _, e := range expenditures {
		byEvent[e.EventID] = append(byEvent[e.EventID], e)
	}

	snapshot := Snapshot{
		Events:         make([]EventSummary, 0, len(events)),
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}

	for _, event := range events {
		summary := Summarize(event, byEvent[event.ID])

		snapshot.Events = append(snapshot.Events, summary)
		snapshot.TotalBudget = snapshot.TotalBudget.Add(summary.Budget.Decimal)
		snapshot.TotalSpent = snapshot.TotalSpent.Add(summary.Spent)
	}

	snapshot.TotalRemaining = snapshot.TotalBudget.Sub(snapshot.TotalSpent)

	return snapshot, nil
}
