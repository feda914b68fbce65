package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Event is a named budget allocation.
//
// Spent and remaining amounts are never stored, they are always
// calculated from the expenditures referencing the event.
type Event struct {
	Model
	Name   string  `json:"name" example:"Concert"`
	Budget Decimal `json:"budget" swaggertype:"string" example:"1000"`
}

// BeforeSave trims whitespace from the name.
func (e *Event) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	return nil
}

// AfterFind normalizes the timestamps.
func (e *Event) AfterFind(_ *gorm.DB) error {
	e.inUTC()
	return nil
}

// Expenditures returns all expenditures for the event in insertion order.
func (e Event) Expenditures(db *gorm.DB) ([]Expenditure, error) {
	var expenditures []Expenditure
	err := db.Where("event_id = ?", e.ID).Order("id ASC").Find(&expenditures).Error
	return expenditures, err
}

// Returns all events on this instance for export
func (Event) Export() (json.RawMessage, error) {
	var events []Event
	err := DB.Order("id ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&events)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
