package models

import "time"

// FCMToken is a registered push target, upserted by user_id.
type FCMToken struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Token     string    `bson:"token" json:"token"`
	Platform  string    `bson:"platform,omitempty" json:"platform,omitempty"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
