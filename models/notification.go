package models

import "time"

const (
	NotificationFollow         = "follow"
	NotificationFollowRequest  = "follow_request"
	NotificationFollowAccepted = "follow_accepted"
)

// Notification is a best-effort emission: writes here must never fail the
// operation that triggered them.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	DedupeKey   string    `json:"dedupe_key" gorm:"size:36;uniqueIndex"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
