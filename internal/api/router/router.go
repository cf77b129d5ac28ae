package router

import (
	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup registers all business routes.
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	dashboardHandler *handler.DashboardHandler,
	historyHandler *handler.HistoryHandler,
	playlistHandler *handler.PlaylistHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.Me)
			authRequired.POST("/change-password", authHandler.ChangePassword)
		}
	}

	users := v1.Group("/users")
	{
		// Channel pages are public; the viewer identity only refines
		// the subscription flag.
		users.GET("/c/:userName", middleware.AuthOptional(), userHandler.GetChannelProfile)
		users.GET("/c/:userName/videos", userHandler.GetChannelVideos)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.PATCH("/me", userHandler.UpdateAccount)
			usersAuth.PATCH("/me/avatar", userHandler.UpdateAvatar)
			usersAuth.PATCH("/me/cover-image", userHandler.UpdateCoverImage)
		}
	}

	videos := v1.Group("/videos")
	{
		videos.GET("", videoHandler.Feed)
		videos.GET("/:id", middleware.AuthOptional(), videoHandler.GetDetail)

		videosAuth := videos.Group("", middleware.AuthRequired())
		{
			videosAuth.POST("", videoHandler.Upload)
			videosAuth.PATCH("/:id", videoHandler.Update)
			videosAuth.PATCH("/:id/toggle-publish", videoHandler.TogglePublish)
			videosAuth.DELETE("/:id", videoHandler.Delete)
		}
	}

	comments := v1.Group("/comments")
	{
		comments.GET("/video/:video_id", middleware.AuthOptional(), commentHandler.ListByVideo)

		commentsAuth := comments.Group("", middleware.AuthRequired())
		{
			commentsAuth.POST("/video/:video_id", commentHandler.Create)
			commentsAuth.PATCH("/:id", commentHandler.Update)
			commentsAuth.DELETE("/:id", commentHandler.Delete)
		}
	}

	likes := v1.Group("/likes", middleware.AuthRequired())
	{
		likes.POST("/video/:video_id", likeHandler.ToggleVideo)
		likes.POST("/comment/:comment_id", likeHandler.ToggleComment)
		likes.GET("/videos", likeHandler.LikedVideos)
	}

	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.GET("/channel/:channel_id/count", subscriptionHandler.SubscriberCount)

		subsAuth := subscriptions.Group("", middleware.AuthRequired())
		{
			subsAuth.POST("/channel/:channel_id", subscriptionHandler.Toggle)
			subsAuth.GET("/my", subscriptionHandler.ListSubscribed)
		}
	}

	dashboard := v1.Group("/dashboard", middleware.AuthRequired())
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/videos", dashboardHandler.Videos)
	}

	history := v1.Group("/history", middleware.AuthRequired())
	{
		history.GET("", historyHandler.List)
	}

	playlists := v1.Group("/playlists")
	{
		playlists.GET("/:id", playlistHandler.Get)

		playlistsAuth := playlists.Group("", middleware.AuthRequired())
		{
			playlistsAuth.POST("", playlistHandler.Create)
			playlistsAuth.GET("/my", playlistHandler.ListMine)
			playlistsAuth.POST("/:id/videos/:video_id", playlistHandler.AddVideo)
			playlistsAuth.DELETE("/:id/videos/:video_id", playlistHandler.RemoveVideo)
			playlistsAuth.DELETE("/:id", playlistHandler.Delete)
		}
	}

	v1.GET("/search", searchHandler.Search)
}
