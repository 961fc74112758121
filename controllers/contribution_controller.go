package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/services"
	"github.com/wanderlist/api-go/utils"
)

type ContributionController struct {
	resolver *services.VisibilityResolver
}

func NewContributionController(resolver *services.VisibilityResolver) *ContributionController {
	return &ContributionController{resolver: resolver}
}

// GetUserContributions godoc
// @Summary Get a user's place contributions
// @Description Returns the author's contributions the viewer is allowed to see, newest first. Authors see everything of their own including items still in moderation.
// @Tags contributions
// @Produce json
// @Param userId path string true "Author user ID"
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 20, max: 50)"
// @Success 200 {object} StandardResponse
// @Router /users/{userId}/contributions [get]
func (cc *ContributionController) GetUserContributions(c *gin.Context) {
	authorID, ok := parseUserID(c, "userId")
	if !ok {
		return
	}
	viewerID := utils.ViewerID(c)
	_, pageSize, offset := utils.ParsePagination(c)

	contributions, err := cc.resolver.VisibleContributions(c.Request.Context(), viewerID, authorID, pageSize, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    contributions,
	})
}
