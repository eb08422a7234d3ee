package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/twitter-lite/internal/cache"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/handlers"
	"github.com/thereayou/twitter-lite/internal/middleware"
	"github.com/thereayou/twitter-lite/pkg/apikey"
)

func APIEndpoints(r *gin.Engine, db *database.Database, cipher *apikey.Cipher, creds *cache.CredentialCache) {
	tweetH := handlers.NewTweetHandler(db)
	userH := handlers.NewUserHandler(db, cipher, creds)
	mediaH := handlers.NewMediaHandler(db)

	// Формат ссылки /media/{id} стабильный: он встроен в ответы ленты
	r.GET("/media/:id", mediaH.Download)

	api := r.Group("/api")
	{
		api.POST("/users", userH.Register)
		// :id принимает и "me", поэтому профиль сам решает вопрос аутентификации
		api.GET("/users/:id", userH.GetProfile)
	}

	authorized := api.Group("", middleware.APIKeyMiddleware(db, cipher, creds))
	{
		authorized.GET("/tweets", tweetH.GetFeed)
		authorized.POST("/tweets", tweetH.CreateTweet)
		authorized.DELETE("/tweets/:id", tweetH.DeleteTweet)
		authorized.POST("/tweets/:id/likes", tweetH.Like)
		authorized.DELETE("/tweets/:id/likes", tweetH.Unlike)

		authorized.PUT("/users/me", userH.UpdateMe)
		authorized.POST("/users/:id/follow", userH.Follow)
		authorized.DELETE("/users/:id/follow", userH.Unfollow)

		authorized.POST("/medias", mediaH.Upload)
	}
}
