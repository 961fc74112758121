package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/controllers"
)

func SetupSocialRoutes(protected *gin.RouterGroup, socialController *controllers.SocialController) {
	users := protected.Group("/users")
	{
		users.POST("/:userId/follow", socialController.FollowUser)
		users.DELETE("/:userId/follow", socialController.UnfollowUser)
		users.POST("/:userId/block", socialController.BlockUser)
		users.DELETE("/:userId/block", socialController.UnblockUser)
		users.DELETE("/:userId/follow-request", socialController.CancelFollowRequest)
	}

	requests := protected.Group("/follow-requests")
	{
		requests.GET("", socialController.GetFollowRequests)
		requests.POST("/:requestId", socialController.RespondToFollowRequest)
	}
}
