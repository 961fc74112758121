package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/services"
	"github.com/wanderlist/api-go/utils"
)

type SocialController struct {
	graph    *services.FollowGraph
	blocks   *services.BlockRegistry
	requests *services.FollowRequestManager
	resolver *services.VisibilityResolver
}

func NewSocialController(graph *services.FollowGraph, blocks *services.BlockRegistry, requests *services.FollowRequestManager, resolver *services.VisibilityResolver) *SocialController {
	return &SocialController{graph: graph, blocks: blocks, requests: requests, resolver: resolver}
}

func parseUserID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(id), true
}

// FollowUser godoc
// @Summary Follow a user
// @Description Follows a public account directly, or files a follow request for a private one. Repeating the call reports the existing state.
// @Tags social
// @Accept json
// @Produce json
// @Param userId path string true "User ID to follow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/follow [post]
func (sc *SocialController) FollowUser(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	targetID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}

	status, err := sc.requests.Request(c.Request.Context(), currentUser.UserID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	followerCount, err := sc.graph.CountFollowers(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"status":        status,
		"followerCount": followerCount,
	})
}

// UnfollowUser godoc
// @Summary Unfollow a user
// @Description Removes the follow edge if present; idempotent.
// @Tags social
// @Produce json
// @Param userId path string true "User ID to unfollow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/follow [delete]
func (sc *SocialController) UnfollowUser(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	targetID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}

	if _, err := sc.graph.Delete(c.Request.Context(), currentUser.UserID, targetID); err != nil {
		respondError(c, err)
		return
	}
	followerCount, err := sc.graph.CountFollowers(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"followerCount": followerCount,
	})
}

// BlockUser godoc
// @Summary Block a user
// @Description Blocks the user and removes any follow relationship or pending request between the pair in both directions.
// @Tags social
// @Produce json
// @Param userId path string true "User ID to block"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/block [post]
func (sc *SocialController) BlockUser(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	targetID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}

	if err := sc.blocks.Block(c.Request.Context(), currentUser.UserID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User blocked successfully",
	})
}

// UnblockUser godoc
// @Summary Unblock a user
// @Description Removes the block edge only; follow state removed by the block is not restored.
// @Tags social
// @Produce json
// @Param userId path string true "User ID to unblock"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/block [delete]
func (sc *SocialController) UnblockUser(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	targetID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}

	if _, err := sc.blocks.Unblock(c.Request.Context(), currentUser.UserID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User unblocked successfully",
	})
}

// GetUserFollowers godoc
// @Summary Get user's followers
// @Description Returns a paginated follower list, newest follows first, each entry annotated with whether the viewer follows that user.
// @Tags social
// @Produce json
// @Param userId path string true "User ID"
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 20, max: 50)"
// @Success 200 {object} StandardResponse
// @Router /users/{userId}/followers [get]
func (sc *SocialController) GetUserFollowers(c *gin.Context) {
	ownerID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}
	viewerID := utils.ViewerID(c)
	page, pageSize, offset := utils.ParsePagination(c)

	followersVisible, _, err := sc.resolver.ListVisibility(c.Request.Context(), viewerID, ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !followersVisible {
		c.JSON(http.StatusForbidden, gin.H{"error": "Followers list is hidden"})
		return
	}

	items, err := sc.graph.ListFollowers(c.Request.Context(), ownerID, viewerID, pageSize, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := sc.graph.CountFollowers(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       items,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

// GetUserFollowing godoc
// @Summary Get users a user is following
// @Description Returns a paginated following list, newest follows first, each entry annotated with whether the viewer follows that user.
// @Tags social
// @Produce json
// @Param userId path string true "User ID"
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 20, max: 50)"
// @Success 200 {object} StandardResponse
// @Router /users/{userId}/following [get]
func (sc *SocialController) GetUserFollowing(c *gin.Context) {
	ownerID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}
	viewerID := utils.ViewerID(c)
	page, pageSize, offset := utils.ParsePagination(c)

	_, followingVisible, err := sc.resolver.ListVisibility(c.Request.Context(), viewerID, ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !followingVisible {
		c.JSON(http.StatusForbidden, gin.H{"error": "Following list is hidden"})
		return
	}

	items, err := sc.graph.ListFollowing(c.Request.Context(), ownerID, viewerID, pageSize, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := sc.graph.CountFollowing(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       items,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

// GetFollowRequests godoc
// @Summary Get incoming follow requests
// @Description Returns the caller's pending incoming follow requests, newest first.
// @Tags social
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 20, max: 50)"
// @Success 200 {object} StandardResponse
// @Router /follow-requests [get]
func (sc *SocialController) GetFollowRequests(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	_, pageSize, offset := utils.ParsePagination(c)

	requests, err := sc.requests.ListIncoming(c.Request.Context(), currentUser.UserID, pageSize, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    requests,
	})
}

type respondToRequestBody struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// RespondToFollowRequest godoc
// @Summary Approve or reject a follow request
// @Description Approving converts the request into a follow edge; rejecting keeps it so the requester may resubmit later.
// @Tags social
// @Accept json
// @Produce json
// @Param requestId path string true "Follow request ID"
// @Param body body respondToRequestBody true "approve or reject"
// @Success 200 {object} map[string]interface{}
// @Router /follow-requests/{requestId} [post]
func (sc *SocialController) RespondToFollowRequest(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	requestID, err := strconv.ParseUint(c.Param("requestId"), 10, 32)
	if err != nil || requestID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}
	var body respondToRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Action == "approve" {
		err = sc.requests.Approve(c.Request.Context(), uint(requestID), currentUser.UserID)
	} else {
		err = sc.requests.Reject(c.Request.Context(), uint(requestID), currentUser.UserID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelFollowRequest godoc
// @Summary Cancel a pending follow request
// @Description Withdraws the caller's pending request to the given user; idempotent.
// @Tags social
// @Produce json
// @Param userId path string true "Target user ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/follow-request [delete]
func (sc *SocialController) CancelFollowRequest(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	targetID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}

	removed, err := sc.requests.Cancel(c.Request.Context(), currentUser.UserID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"cancelled": removed,
	})
}
