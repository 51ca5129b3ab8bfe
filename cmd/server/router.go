package main

import (
	"github.com/gin-gonic/gin"

	"github.com/haveanidea/api/internal/handlers"
	"github.com/haveanidea/api/internal/middleware"
	"github.com/haveanidea/api/pkg/auth"
)

func APIEndpoints(r *gin.Engine, jwtMgr *auth.JWTManager, authH *handlers.AuthHandler, ideaH *handlers.IdeaHandler, uploadH *handlers.UploadHandler) {
	authRequired := middleware.AuthMiddleware(jwtMgr)

	r.GET("/health", handlers.Health)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authH.Login)
		authGroup.GET("/profile", authRequired, authH.Profile)
	}

	ideas := r.Group("/ideas")
	{
		ideas.GET("", ideaH.List)
		ideas.GET("/:id", ideaH.Get)
		ideas.POST("", authRequired, ideaH.Create)
		ideas.PUT("/:id", authRequired, ideaH.Update)
		ideas.DELETE("/:id", authRequired, ideaH.Delete)
		ideas.PUT("/:id/launch", authRequired, ideaH.UpdateLaunch)
	}

	r.POST("/upload", authRequired, uploadH.Upload)
}
