package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Decimal is an amount of money as stored in the database.
//
// SQLite stores values of DECIMAL columns as 64 bit floats, which keeps
// only about 15 significant digits. There, amounts are stored as text so
// that they are read back exactly.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal returns d as stored amount.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// GormDBDataType returns the column type for the database in use.
func (Decimal) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}

	return "DECIMAL(20,8)"
}
