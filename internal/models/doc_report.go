package models

import (
	"time"

	"github.com/espacionido/nido-backend/pkg/types"
)

// Report is an incident reported from the client dashboard. Image, when
// present, is a data URL embedded verbatim in the operator email.
type Report struct {
	ID        string             `bson:"_id" json:"id"`
	ClientID  string             `bson:"client_id" json:"client_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Type      types.ReportType   `bson:"type" json:"type"`
	Priority  types.Priority     `bson:"priority" json:"priority"`
	Message   string             `bson:"message" json:"message"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Status    types.ReportStatus `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
