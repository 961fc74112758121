package services

import (
	"context"

	"github.com/wanderlist/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlockRegistry stores block edges and owns the cascade that scrubs every
// follow relationship between a blocked pair.
type BlockRegistry struct {
	db *gorm.DB
}

func NewBlockRegistry(db *gorm.DB) *BlockRegistry {
	return &BlockRegistry{db: db}
}

// Block inserts the block edge and, in the same transaction, deletes any
// follow edge and any follow request between the pair in both directions.
// Blocking an already-blocked user is a no-op.
func (r *BlockRegistry) Block(ctx context.Context, blockerID, targetID uint) error {
	if blockerID == targetID {
		return ValidationError("Cannot block yourself")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where("blocker_user_id = ? AND blocked_user_id = ?", blockerID, targetID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		block := models.Block{BlockerUserID: blockerID, BlockedUserID: targetID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&block).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"(follower_user_id = ? AND following_user_id = ?) OR (follower_user_id = ? AND following_user_id = ?)",
			blockerID, targetID, targetID, blockerID,
		).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Where(
			"(requester_id = ? AND target_user_id = ?) OR (requester_id = ? AND target_user_id = ?)",
			blockerID, targetID, targetID, blockerID,
		).Delete(&models.FollowRequest{}).Error
	})
}

// Unblock removes the block edge only; it never restores follow state the
// cascade removed.
func (r *BlockRegistry) Unblock(ctx context.Context, blockerID, targetID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("blocker_user_id = ? AND blocked_user_id = ?", blockerID, targetID).
		Delete(&models.Block{})
	return result.RowsAffected > 0, result.Error
}

// HasBlockBetween reports whether a block exists in either direction. Every
// other component checks this before creating a new relationship.
func (r *BlockRegistry) HasBlockBetween(ctx context.Context, a, b uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Block{}).
		Where(
			"(blocker_user_id = ? AND blocked_user_id = ?) OR (blocker_user_id = ? AND blocked_user_id = ?)",
			a, b, b, a,
		).Count(&count).Error
	return count > 0, err
}
