package models

import (
	"time"

	"github.com/espacionido/nido-backend/pkg/types"
)

// PrintRecord is one metered print job. The relational store is the single
// canonical home for print usage.
type PrintRecord struct {
	ID            string                  `gorm:"column:id;primary_key;type:uuid;index:idx_client_id_id,priority:2,sort:desc" json:"id"`
	ClientID      string                  `gorm:"column:client_id;type:varchar(64);not null;index:idx_client_id_id,priority:1" json:"client_id"`
	UserID        string                  `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`
	Sheets        int                     `gorm:"column:sheets;not null" json:"sheets"`
	PricePerSheet float64                 `gorm:"column:price_per_sheet;type:numeric(12,2);not null" json:"price_per_sheet"`
	TotalPrice    float64                 `gorm:"column:total_price;type:numeric(12,2);not null" json:"total_price"`
	Status        types.PrintRecordStatus `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	// PaidAt is set exactly once, when the record transitions to paid.
	PaidAt *time.Time `gorm:"column:paid_at;default:null" json:"paid_at"`
	// PaymentRequestID links a bulk settlement back to the approved request.
	PaymentRequestID *string   `gorm:"column:payment_request_id;type:varchar(64);default:null" json:"payment_request_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (PrintRecord) TableName() string {
	return "print_records"
}

func (r *PrintRecord) Paid() bool {
	return r != nil && r.Status == types.PrintRecordStatusPaid
}
