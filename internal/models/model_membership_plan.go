package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlanFeatures stores the plan's marketing attributes as JSONB.
type PlanFeatures struct {
	DeskHours    *int64   `json:"desk_hours,omitempty"`
	RoomCredits  *int64   `json:"room_credits,omitempty"`
	FreeSheets   *int64   `json:"free_sheets,omitempty"`
	Perks        []string `json:"perks,omitempty"`
	Descripcion  string   `json:"descripcion,omitempty"`
	HighlightTag string   `json:"highlight_tag,omitempty"`
}

type MembershipPlan struct {
	ID            string                              `gorm:"column:id;primary_key;type:uuid" json:"id"`
	Name          string                              `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Price         float64                             `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Currency      string                              `gorm:"column:currency;type:varchar(8);not null;default:'ARS'" json:"currency"`
	BillingPeriod string                              `gorm:"column:billing_period;type:varchar(32);not null;default:'monthly'" json:"billing_period"`
	Features      datatypes.JSONType[*PlanFeatures]   `gorm:"column:features;type:jsonb;default:'{}'" json:"features"`
	Active        bool                                `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt     time.Time                           `json:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at"`
}

func (MembershipPlan) TableName() string {
	return "membership_plans"
}
