package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/models"
	"github.com/wanderlist/api-go/services"
	"github.com/wanderlist/api-go/utils"
	"gorm.io/gorm"
)

const recentActivityLimit = 10

type ProfileController struct {
	DB       *gorm.DB
	users    *services.UserDirectory
	graph    *services.FollowGraph
	blocks   *services.BlockRegistry
	privacy  *services.PrivacySettingsStore
	resolver *services.VisibilityResolver
}

func NewProfileController(db *gorm.DB, users *services.UserDirectory, graph *services.FollowGraph, blocks *services.BlockRegistry, privacy *services.PrivacySettingsStore, resolver *services.VisibilityResolver) *ProfileController {
	return &ProfileController{DB: db, users: users, graph: graph, blocks: blocks, privacy: privacy, resolver: resolver}
}

// GetProfile godoc
// @Summary Get a user's profile by username
// @Description Returns the profile with follow status and counts. Private accounts show stats only unless the viewer follows them; a blocked viewer sees nothing.
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{}
// @Router /profiles/{username} [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := utils.ViewerID(c)

	owner, err := pc.users.FindByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	// A blocked pair resolves as if the profile did not exist.
	if viewerID != 0 && viewerID != owner.ID {
		blocked, err := pc.blocks.HasBlockBetween(ctx, viewerID, owner.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		if blocked {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
	}

	settings, err := pc.privacy.Get(ctx, owner.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	canSeeFullProfile, err := pc.resolver.CanSeeFullProfile(ctx, viewerID, owner.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	followStatus, err := pc.resolver.FollowStatus(ctx, viewerID, owner.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	var stats struct {
		ContributionsCount int64 `json:"contributionsCount"`
		FollowersCount     int64 `json:"followersCount"`
		FollowingCount     int64 `json:"followingCount"`
	}
	if err := pc.DB.WithContext(ctx).Model(&models.Contribution{}).
		Where("author_id = ? AND status = ?", owner.ID, models.ContributionApproved).
		Count(&stats.ContributionsCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if stats.FollowersCount, err = pc.graph.CountFollowers(ctx, owner.ID); err != nil {
		respondError(c, err)
		return
	}
	if stats.FollowingCount, err = pc.graph.CountFollowing(ctx, owner.ID); err != nil {
		respondError(c, err)
		return
	}

	activity := []models.Contribution{}
	if canSeeFullProfile {
		activity, err = pc.resolver.VisibleContributions(ctx, viewerID, owner.ID, recentActivityLimit, 0)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":                 owner.ID,
			"username":           owner.Username,
			"firstName":          owner.FirstName,
			"lastName":           owner.LastName,
			"bio":                owner.Bio,
			"avatar":             owner.Avatar,
			"createdAt":          owner.CreatedAt,
			"isOwnProfile":       viewerID != 0 && viewerID == owner.ID,
			"isPrivateAccount":   settings.IsPrivateAccount,
			"canSeeFullProfile":  canSeeFullProfile,
			"hideFollowersList":  settings.HideFollowersList,
			"hideFollowingList":  settings.HideFollowingList,
			"followStatus":       followStatus,
			"contributionsCount": stats.ContributionsCount,
			"followersCount":     stats.FollowersCount,
			"followingCount":     stats.FollowingCount,
			"activity":           activity,
		},
	})
}
