package routes

import (
	"github.com/gin-gonic/gin"

	"transit_manage/internal/controllers"
	"transit_manage/internal/middleware"
)

func AuthRoutes(r *gin.Engine, ctl *controllers.Controller, tokens *middleware.Tokens) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
		auth.GET("/me", tokens.RequireAuth(), ctl.Me)
	}
}
