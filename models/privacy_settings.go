package models

import (
	"time"
)

// PrivacySettings holds per-user visibility configuration. The row is
// created lazily on first access through PrivacySettingsStore.Get.
type PrivacySettings struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	IsPrivateAccount  bool      `gorm:"not null;default:false" json:"is_private_account"`
	ShowInSearch      bool      `gorm:"not null;default:true" json:"show_in_search"`
	HideFollowersList bool      `gorm:"not null;default:false" json:"hide_followers_list"`
	HideFollowingList bool      `gorm:"not null;default:false" json:"hide_following_list"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultPrivacySettings is the canonical shape for a user with no stored
// row: public account, discoverable in search, lists visible. Accounts that
// predate the privacy feature have no row, so the missing-row default must be
// public or the existing graph would silently disappear.
func DefaultPrivacySettings(userID uint) PrivacySettings {
	return PrivacySettings{
		UserID:            userID,
		IsPrivateAccount:  false,
		ShowInSearch:      true,
		HideFollowersList: false,
		HideFollowingList: false,
	}
}
