package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderlist/api-go/controllers"
	"github.com/wanderlist/api-go/middleware"
	"github.com/wanderlist/api-go/services"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Wire the social services; the resolver and request manager compose the
	// leaf components rather than re-querying on their own.
	users := services.NewUserDirectory(db)
	notifier := services.NewNotifier(db)
	blocks := services.NewBlockRegistry(db)
	privacy := services.NewPrivacySettingsStore(db)
	graph := services.NewFollowGraph(db, users)
	requests := services.NewFollowRequestManager(db, graph, blocks, privacy, users, notifier)
	resolver := services.NewVisibilityResolver(db, graph, blocks, privacy)

	socialController := controllers.NewSocialController(graph, blocks, requests, resolver)
	profileController := controllers.NewProfileController(db, users, graph, blocks, privacy, resolver)
	privacyController := controllers.NewPrivacyController(privacy)
	contributionController := controllers.NewContributionController(resolver)

	// Read endpoints anonymous viewers may hit; identity is resolved when a
	// token is present.
	public := r.Group("/api")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/profiles/:username", profileController.GetProfile)
		public.GET("/users/:userId/followers", socialController.GetUserFollowers)
		public.GET("/users/:userId/following", socialController.GetUserFollowing)
		public.GET("/users/:userId/contributions", contributionController.GetUserContributions)
	}

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupSocialRoutes(protected, socialController)
		SetupPrivacyRoutes(protected, privacyController)
	}
}
