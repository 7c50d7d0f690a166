package models

import (
	"time"

	"github.com/espacionido/nido-backend/pkg/types"
)

// Announcement is created by an admin and fanned out by email/push to every
// active client at creation time. Deletion is a hard delete.
type Announcement struct {
	ID        string                 `bson:"_id" json:"id"`
	Title     string                 `bson:"title" json:"title"`
	Content   string                 `bson:"content" json:"content"`
	Type      types.AnnouncementType `bson:"type" json:"type"`
	Priority  types.Priority         `bson:"priority" json:"priority"`
	Active    bool                   `bson:"active" json:"active"`
	CreatedBy string                 `bson:"created_by" json:"created_by"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
}
