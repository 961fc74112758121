package services

import (
	"context"
	"time"

	"github.com/wanderlist/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowGraph stores and queries directed follow edges.
type FollowGraph struct {
	db    *gorm.DB
	users *UserDirectory
}

func NewFollowGraph(db *gorm.DB, users *UserDirectory) *FollowGraph {
	return &FollowGraph{db: db, users: users}
}

// insertFollow writes a follow edge, relying on the unique pair index to make
// concurrent duplicates a no-op. Shared with the request manager and the
// privacy store so approval and bulk-conversion can reuse it inside their own
// transactions.
func insertFollow(tx *gorm.DB, followerID, followingID uint) error {
	follow := models.Follow{FollowerUserID: followerID, FollowingUserID: followingID}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

// Create inserts the edge; repeating an existing follow is a no-op, not an
// error.
func (g *FollowGraph) Create(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return ValidationError("Cannot follow yourself")
	}
	exists, err := g.users.Exists(ctx, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return NotFoundError("User not found")
	}
	return insertFollow(g.db.WithContext(ctx), followerID, targetID)
}

// Delete removes the edge if present and reports whether a row was removed.
func (g *FollowGraph) Delete(ctx context.Context, followerID, targetID uint) (bool, error) {
	result := g.db.WithContext(ctx).
		Where("follower_user_id = ? AND following_user_id = ?", followerID, targetID).
		Delete(&models.Follow{})
	return result.RowsAffected > 0, result.Error
}

func (g *FollowGraph) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_user_id = ? AND following_user_id = ?", followerID, targetID).
		Count(&count).Error
	return count > 0, err
}

func (g *FollowGraph) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&models.Follow{}).
		Where("following_user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (g *FollowGraph) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// FollowListItem is one entry of a followers/following page. ViewerFollows
// says whether the requesting viewer follows the listed user, not whether the
// list owner does.
type FollowListItem struct {
	UserID        uint      `json:"userId"`
	Username      string    `json:"username"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Avatar        string    `json:"avatar"`
	FollowedAt    time.Time `json:"followedAt"`
	ViewerFollows bool      `json:"viewerFollows" gorm:"-"`
}

// ListFollowers returns userID's followers ordered by follow recency, newest
// first. viewerID 0 means anonymous; annotations stay false.
func (g *FollowGraph) ListFollowers(ctx context.Context, userID, viewerID uint, limit, offset int) ([]FollowListItem, error) {
	var items []FollowListItem
	err := g.db.WithContext(ctx).Model(&models.Follow{}).
		Select("users.id as user_id, users.username, users.first_name, users.last_name, users.avatar, follows.created_at as followed_at").
		Joins("JOIN users ON users.id = follows.follower_user_id").
		Where("follows.following_user_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return g.annotateViewerFollows(ctx, viewerID, items)
}

// ListFollowing returns the users userID follows, newest follow first.
func (g *FollowGraph) ListFollowing(ctx context.Context, userID, viewerID uint, limit, offset int) ([]FollowListItem, error) {
	var items []FollowListItem
	err := g.db.WithContext(ctx).Model(&models.Follow{}).
		Select("users.id as user_id, users.username, users.first_name, users.last_name, users.avatar, follows.created_at as followed_at").
		Joins("JOIN users ON users.id = follows.following_user_id").
		Where("follows.follower_user_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return g.annotateViewerFollows(ctx, viewerID, items)
}

func (g *FollowGraph) annotateViewerFollows(ctx context.Context, viewerID uint, items []FollowListItem) ([]FollowListItem, error) {
	if viewerID == 0 || len(items) == 0 {
		return items, nil
	}
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.UserID
	}
	var followedIDs []uint
	err := g.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_user_id = ? AND following_user_id IN ?", viewerID, ids).
		Pluck("following_user_id", &followedIDs).Error
	if err != nil {
		return nil, err
	}
	followed := make(map[uint]bool, len(followedIDs))
	for _, id := range followedIDs {
		followed[id] = true
	}
	for i := range items {
		items[i].ViewerFollows = followed[items[i].UserID]
	}
	return items, nil
}
