package routes

import (
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"transit_manage/internal/controllers"
	"transit_manage/internal/middleware"
)

// SetupRouter wires every endpoint. Request logs go to requestLog.
func SetupRouter(ctl *controllers.Controller, tokens *middleware.Tokens, requestLog io.Writer) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger(ginlog.WithWriter(requestLog), ginlog.WithUTC(true)))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	AuthRoutes(r, ctl, tokens)

	api := r.Group("/api")
	api.Use(tokens.RequireAuth())
	{
		CompanyRoutes(api, ctl)
		FleetRoutes(api, ctl)
		RouteRoutes(api, ctl)
		MemberRoutes(api, ctl)
		BusRoutes(api, ctl)
		StopRoutes(api, ctl)
		ViolationRoutes(api, ctl)
	}

	return r
}
