package models

import "time"

// PrintingSettings is a single-row table; updates are last-writer-wins.
type PrintingSettings struct {
	ID            int       `gorm:"column:id;primary_key" json:"id"`
	PricePerSheet float64   `gorm:"column:price_per_sheet;type:numeric(12,2);not null" json:"price_per_sheet"`
	UpdatedBy     string    `gorm:"column:updated_by;type:varchar(64)" json:"updated_by"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (PrintingSettings) TableName() string {
	return "printing_settings"
}

// SettingsRowID is the id of the only printing_settings row.
const SettingsRowID = 1
