package models

import (
	"time"
)

const (
	FollowRequestPending  = "pending"
	FollowRequestRejected = "rejected"
)

// FollowRequest gates a new follow edge when the target account is private.
// An approved request is consumed: the row is deleted and a Follow created in
// the same transaction, so "approved" is never a stored status. A rejected
// row is kept so the requester can resubmit, flipping it back to pending
// without ever producing a second row for the pair.
type FollowRequest struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequesterID  uint      `gorm:"not null;index:idx_request_pair,unique" json:"requester_id"`
	TargetUserID uint      `gorm:"not null;index:idx_request_pair,unique;index:idx_request_target" json:"target_user_id"`
	Status       string    `gorm:"not null;default:'pending';type:varchar(20)" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Requester  User `gorm:"foreignKey:RequesterID" json:"-"`
	TargetUser User `gorm:"foreignKey:TargetUserID" json:"-"`
}
