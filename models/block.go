package models

import (
	"time"
)

// Block is stored directed (who blocked whom) but checked symmetrically:
// a block in either direction suppresses the pair's visibility everywhere.
// No soft delete here; unblock must free the unique pair index so a later
// re-block can insert again.
type Block struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockerUserID uint      `gorm:"not null;index:idx_block_pair,unique" json:"blocker_user_id"`
	BlockedUserID uint      `gorm:"not null;index:idx_block_pair,unique;index:idx_block_blocked" json:"blocked_user_id"`
	CreatedAt     time.Time `json:"created_at"`

	BlockerUser User `gorm:"foreignKey:BlockerUserID" json:"-"`
	BlockedUser User `gorm:"foreignKey:BlockedUserID" json:"-"`
}
