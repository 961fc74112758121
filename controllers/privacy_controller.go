package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/services"
	"github.com/wanderlist/api-go/utils"
)

type PrivacyController struct {
	privacy *services.PrivacySettingsStore
}

func NewPrivacyController(privacy *services.PrivacySettingsStore) *PrivacyController {
	return &PrivacyController{privacy: privacy}
}

// GetPrivacySettings godoc
// @Summary Get the caller's privacy settings
// @Description Returns the stored settings, creating the default public row on first access.
// @Tags privacy
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /privacy [get]
func (pc *PrivacyController) GetPrivacySettings(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	settings, err := pc.privacy.Get(c.Request.Context(), currentUser.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"settings": settings,
	})
}

// UpdatePrivacySettings godoc
// @Summary Update the caller's privacy settings
// @Description Applies only the supplied fields. Switching a private account public auto-approves every pending incoming follow request and reports how many were converted.
// @Tags privacy
// @Accept json
// @Produce json
// @Param body body services.PrivacyPatch true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Router /privacy [put]
func (pc *PrivacyController) UpdatePrivacySettings(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var patch services.PrivacyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, autoApproved, err := pc.privacy.Update(c.Request.Context(), currentUser.UserID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"settings":          settings,
		"autoApprovedCount": autoApproved,
	})
}
