package models

import (
	"time"
)

// Follow is a directed edge: FollowerUser receives FollowingUser's content.
// The composite unique index keeps concurrent follow calls from writing
// duplicate edges.
type Follow struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerUserID  uint      `gorm:"not null;index:idx_follow_pair,unique;index:idx_follow_follower" json:"follower_user_id"`
	FollowingUserID uint      `gorm:"not null;index:idx_follow_pair,unique;index:idx_follow_following" json:"following_user_id"`
	CreatedAt       time.Time `json:"created_at"`

	FollowerUser  User `gorm:"foreignKey:FollowerUserID" json:"-"`
	FollowingUser User `gorm:"foreignKey:FollowingUserID" json:"-"`
}
