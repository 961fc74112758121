package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/controllers"
)

func SetupPrivacyRoutes(protected *gin.RouterGroup, privacyController *controllers.PrivacyController) {
	privacy := protected.Group("/privacy")
	{
		privacy.GET("", privacyController.GetPrivacySettings)
		privacy.PUT("", privacyController.UpdatePrivacySettings)
	}
}
