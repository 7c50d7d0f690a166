package models

import "time"

// PaymentHistory is an append-only ledger entry, written once on approval.
// Status is the literal "pagado" the dashboards expect.
type PaymentHistory struct {
	ID            string    `bson:"_id" json:"id"`
	ClientID      string    `bson:"client_id" json:"client_id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Amount        float64   `bson:"amount" json:"amount"`
	PlanName      string    `bson:"plan_name" json:"plan_name"`
	Period        string    `bson:"period" json:"period"`
	Status        string    `bson:"status" json:"status"`
	TransactionID string    `bson:"transaction_id" json:"transaction_id"`
	PaymentDate   time.Time `bson:"payment_date" json:"payment_date"`
	RequestID     string    `bson:"request_id" json:"request_id"`
}

const PaymentHistoryStatusPaid = "pagado"
