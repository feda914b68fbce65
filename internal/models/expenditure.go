package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Expenditure is a recorded cost against one event.
//
// The reference to the event is not a database constraint, deleting
// an event removes its expenditures explicitly.
type Expenditure struct {
	Model
	EventID     uint    `json:"eventId" gorm:"index" example:"3"`
	Description string  `json:"description" example:"Stage"`
	Amount      Decimal `json:"amount" swaggertype:"string" example:"300"`
}

func (e *Expenditure) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	return nil
}

func (e *Expenditure) AfterFind(_ *gorm.DB) error {
	e.inUTC()
	return nil
}

// Returns all expenditures on this instance for export
func (Expenditure) Export() (json.RawMessage, error) {
	var expenditures []Expenditure
	err := DB.Order("id ASC").Find(&expenditures).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenditures)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
