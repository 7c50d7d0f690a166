package models

import (
	"time"

	"github.com/espacionido/nido-backend/pkg/types"
)

// Client is the coworking member document.
//
// CurrentPeriod is a monotonic counter incremented by exactly 1 per payment
// approval. BillingAnchor is the explicit anchor date the period label is
// derived from; it is seeded on the first approval and never walked back from
// wall-clock time.
type Client struct {
	ID                string             `bson:"_id" json:"id"`
	UserID            string             `bson:"user_id" json:"user_id"`
	UserName          string             `bson:"user_name" json:"user_name"`
	UserEmail         string             `bson:"user_email" json:"user_email"`
	PlanID            string             `bson:"plan_id" json:"plan_id"`
	PlanName          string             `bson:"plan_name" json:"plan_name"`
	Status            types.ClientStatus `bson:"status" json:"status"`
	PaymentStatus     string             `bson:"payment_status" json:"payment_status"`
	CurrentPeriod     int                `bson:"current_period" json:"current_period"`
	NextPaymentPeriod string             `bson:"next_payment_period" json:"next_payment_period"`
	BillingAnchor     *time.Time         `bson:"billing_anchor,omitempty" json:"billing_anchor,omitempty"`
	LastPaymentDate   *time.Time         `bson:"last_payment_date,omitempty" json:"last_payment_date,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// BillingAdvance carries the client fields rewritten by a payment approval.
type BillingAdvance struct {
	CurrentPeriod     int
	NextPaymentPeriod string
	BillingAnchor     time.Time
	LastPaymentDate   time.Time
	PaymentStatus     string
}
