package models

import (
	"time"

	"github.com/espacionido/nido-backend/pkg/types"
)

// PaymentRequest lives in the payment_requests collection. Requests are never
// deleted; approved/rejected are terminal statuses.
type PaymentRequest struct {
	ID               string                     `bson:"_id" json:"id"`
	ClientID         string                     `bson:"client_id" json:"client_id"`
	UserID           string                     `bson:"user_id" json:"user_id"`
	UserName         string                     `bson:"user_name" json:"user_name"`
	UserEmail        string                     `bson:"user_email" json:"user_email"`
	Amount           float64                    `bson:"amount" json:"amount"`
	PlanName         string                     `bson:"plan_name" json:"plan_name"`
	Period           string                     `bson:"period" json:"period"`
	DueDate          *time.Time                 `bson:"due_date,omitempty" json:"due_date,omitempty"`
	RequestDate      time.Time                  `bson:"request_date" json:"request_date"`
	Status           types.PaymentRequestStatus `bson:"status" json:"status"`
	PaymentType      types.PaymentType          `bson:"payment_type" json:"payment_type"`
	PrintRecordIDs   []string                   `bson:"print_record_ids,omitempty" json:"print_record_ids,omitempty"`
	PrintAmount      float64                    `bson:"print_amount" json:"print_amount"`
	MembershipAmount float64                    `bson:"membership_amount" json:"membership_amount"`
	// GatewayPaymentID is set when the request was created by the payment-gateway webhook.
	GatewayPaymentID string     `bson:"gateway_payment_id,omitempty" json:"gateway_payment_id,omitempty"`
	ProcessedAt      *time.Time `bson:"processed_at,omitempty" json:"processed_at,omitempty"`
	ProcessedBy      string     `bson:"processed_by,omitempty" json:"processed_by,omitempty"`
	RejectionReason  string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
}

// PaymentDecision carries the fields written by an approve/reject transition.
type PaymentDecision struct {
	Status          types.PaymentRequestStatus
	ProcessedAt     time.Time
	ProcessedBy     string
	RejectionReason string
}
