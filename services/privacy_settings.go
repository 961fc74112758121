package services

import (
	"context"

	"github.com/wanderlist/api-go/models"
	"gorm.io/gorm"
)

// PrivacySettingsStore reads and updates per-user visibility configuration.
type PrivacySettingsStore struct {
	db *gorm.DB
}

func NewPrivacySettingsStore(db *gorm.DB) *PrivacySettingsStore {
	return &PrivacySettingsStore{db: db}
}

// PrivacyPatch applies only the fields that are set.
type PrivacyPatch struct {
	IsPrivateAccount  *bool `json:"isPrivateAccount"`
	ShowInSearch      *bool `json:"showInSearch"`
	HideFollowersList *bool `json:"hideFollowersList"`
	HideFollowingList *bool `json:"hideFollowingList"`
}

// Get returns the user's settings, creating the default (public) row on
// first access.
func (s *PrivacySettingsStore) Get(ctx context.Context, userID uint) (models.PrivacySettings, error) {
	settings := models.DefaultPrivacySettings(userID)
	err := s.db.WithContext(ctx).
		Where(models.PrivacySettings{UserID: userID}).
		FirstOrCreate(&settings).Error
	return settings, err
}

// Update applies the patch. When the account flips private -> public, every
// pending incoming request is converted into a follow edge and consumed
// inside the same transaction; the count of conversions is returned. Running
// the same update again converts nothing and reports zero.
func (s *PrivacySettingsStore) Update(ctx context.Context, userID uint, patch PrivacyPatch) (models.PrivacySettings, int64, error) {
	var settings models.PrivacySettings
	var autoApproved int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings = models.DefaultPrivacySettings(userID)
		if err := tx.Where(models.PrivacySettings{UserID: userID}).FirstOrCreate(&settings).Error; err != nil {
			return err
		}
		wasPrivate := settings.IsPrivateAccount

		updates := map[string]interface{}{}
		if patch.IsPrivateAccount != nil {
			settings.IsPrivateAccount = *patch.IsPrivateAccount
			updates["is_private_account"] = *patch.IsPrivateAccount
		}
		if patch.ShowInSearch != nil {
			settings.ShowInSearch = *patch.ShowInSearch
			updates["show_in_search"] = *patch.ShowInSearch
		}
		if patch.HideFollowersList != nil {
			settings.HideFollowersList = *patch.HideFollowersList
			updates["hide_followers_list"] = *patch.HideFollowersList
		}
		if patch.HideFollowingList != nil {
			settings.HideFollowingList = *patch.HideFollowingList
			updates["hide_following_list"] = *patch.HideFollowingList
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&models.PrivacySettings{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return err
		}

		if wasPrivate && !settings.IsPrivateAccount {
			var pending []models.FollowRequest
			if err := tx.Where("target_user_id = ? AND status = ?", userID, models.FollowRequestPending).
				Find(&pending).Error; err != nil {
				return err
			}
			for _, request := range pending {
				if err := insertFollow(tx, request.RequesterID, request.TargetUserID); err != nil {
					return err
				}
			}
			result := tx.Where("target_user_id = ? AND status = ?", userID, models.FollowRequestPending).
				Delete(&models.FollowRequest{})
			if result.Error != nil {
				return result.Error
			}
			autoApproved = result.RowsAffected
		}
		return nil
	})
	return settings, autoApproved, err
}
