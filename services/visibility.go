package services

import (
	"context"
	"errors"

	"github.com/wanderlist/api-go/models"
	"gorm.io/gorm"
)

// FollowStatus is the viewer's relationship to a profile.
type FollowStatus string

const (
	StatusNotFollowing FollowStatus = "not_following"
	StatusFollowing    FollowStatus = "following"
	StatusRequested    FollowStatus = "requested"
)

// VisibilityResolver is the single decision layer for "can viewer V see X
// belonging to owner O". Every read path goes through it; it never mutates.
// A block between viewer and owner denies before any other rule is consulted.
type VisibilityResolver struct {
	db      *gorm.DB
	graph   *FollowGraph
	blocks  *BlockRegistry
	privacy *PrivacySettingsStore
}

func NewVisibilityResolver(db *gorm.DB, graph *FollowGraph, blocks *BlockRegistry, privacy *PrivacySettingsStore) *VisibilityResolver {
	return &VisibilityResolver{db: db, graph: graph, blocks: blocks, privacy: privacy}
}

// CanSeeFullProfile reports whether the viewer may see the owner's full
// profile: the owner always can, anyone can for a public account, and
// followers can for a private one. viewerID 0 is an anonymous viewer.
func (v *VisibilityResolver) CanSeeFullProfile(ctx context.Context, viewerID, ownerID uint) (bool, error) {
	if viewerID != 0 && viewerID != ownerID {
		blocked, err := v.blocks.HasBlockBetween(ctx, viewerID, ownerID)
		if err != nil {
			return false, err
		}
		if blocked {
			return false, nil
		}
	}
	if viewerID != 0 && viewerID == ownerID {
		return true, nil
	}
	settings, err := v.privacy.Get(ctx, ownerID)
	if err != nil {
		return false, err
	}
	if !settings.IsPrivateAccount {
		return true, nil
	}
	if viewerID == 0 {
		return false, nil
	}
	return v.graph.IsFollowing(ctx, viewerID, ownerID)
}

// FollowStatus resolves the viewer's relationship to the owner. Only pending
// requests count as requested; rejected rows read as not_following.
func (v *VisibilityResolver) FollowStatus(ctx context.Context, viewerID, ownerID uint) (FollowStatus, error) {
	if viewerID == 0 || viewerID == ownerID {
		return StatusNotFollowing, nil
	}
	blocked, err := v.blocks.HasBlockBetween(ctx, viewerID, ownerID)
	if err != nil {
		return StatusNotFollowing, err
	}
	if blocked {
		return StatusNotFollowing, nil
	}
	following, err := v.graph.IsFollowing(ctx, viewerID, ownerID)
	if err != nil {
		return StatusNotFollowing, err
	}
	if following {
		return StatusFollowing, nil
	}
	var request models.FollowRequest
	err = v.db.WithContext(ctx).
		Where("requester_id = ? AND target_user_id = ? AND status = ?",
			viewerID, ownerID, models.FollowRequestPending).
		First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StatusNotFollowing, nil
	}
	if err != nil {
		return StatusNotFollowing, err
	}
	return StatusRequested, nil
}

// ContributionVisible applies the per-item visibility flag. Items still in
// moderation are author-only whatever their flag says.
func (v *VisibilityResolver) ContributionVisible(ctx context.Context, viewerID uint, contribution models.Contribution) (bool, error) {
	if viewerID != 0 && viewerID == contribution.AuthorID {
		return true, nil
	}
	if viewerID != 0 {
		blocked, err := v.blocks.HasBlockBetween(ctx, viewerID, contribution.AuthorID)
		if err != nil {
			return false, err
		}
		if blocked {
			return false, nil
		}
	}
	if contribution.Status != models.ContributionApproved {
		return false, nil
	}
	switch contribution.Visibility {
	case models.VisibilityPublic:
		return true, nil
	case models.VisibilityFollowersOnly:
		if viewerID == 0 {
			return false, nil
		}
		return v.graph.IsFollowing(ctx, viewerID, contribution.AuthorID)
	default:
		// private, or an unknown flag: author only
		return false, nil
	}
}

// VisibleContributions lists authorID's contributions the viewer may see,
// newest first, pushing the same rules ContributionVisible applies into the
// query so listings stay one round trip.
func (v *VisibilityResolver) VisibleContributions(ctx context.Context, viewerID, authorID uint, limit, offset int) ([]models.Contribution, error) {
	var contributions []models.Contribution
	query := v.db.WithContext(ctx).Where("author_id = ?", authorID)

	if viewerID != authorID || viewerID == 0 {
		if viewerID != 0 {
			blocked, err := v.blocks.HasBlockBetween(ctx, viewerID, authorID)
			if err != nil {
				return nil, err
			}
			if blocked {
				return []models.Contribution{}, nil
			}
		}
		allowed := []string{models.VisibilityPublic}
		if viewerID != 0 {
			following, err := v.graph.IsFollowing(ctx, viewerID, authorID)
			if err != nil {
				return nil, err
			}
			if following {
				allowed = append(allowed, models.VisibilityFollowersOnly)
			}
		}
		query = query.Where("status = ? AND visibility IN ?", models.ContributionApproved, allowed)
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&contributions).Error
	return contributions, err
}

// ListVisibility reports whether the viewer may see the owner's followers and
// following lists. The owner always sees their own.
func (v *VisibilityResolver) ListVisibility(ctx context.Context, viewerID, ownerID uint) (followers bool, following bool, err error) {
	if viewerID != 0 && viewerID == ownerID {
		return true, true, nil
	}
	if viewerID != 0 {
		blocked, err := v.blocks.HasBlockBetween(ctx, viewerID, ownerID)
		if err != nil {
			return false, false, err
		}
		if blocked {
			return false, false, nil
		}
	}
	settings, err := v.privacy.Get(ctx, ownerID)
	if err != nil {
		return false, false, err
	}
	return !settings.HideFollowersList, !settings.HideFollowingList, nil
}
