package routes

import (
	"github.com/gin-gonic/gin"

	"transit_manage/internal/controllers"
)

func CompanyRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	companies := api.Group("/companies")
	{
		companies.GET("", ctl.ListCompanies)
		companies.POST("", ctl.CreateCompany)
		companies.GET("/:id", ctl.GetCompany)
		companies.PUT("/:id", ctl.UpdateCompany)
		companies.DELETE("/:id", ctl.DeleteCompany)
	}
}

func FleetRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	fleets := api.Group("/fleets")
	{
		fleets.GET("", ctl.ListFleets)
		fleets.POST("", ctl.CreateFleet)
		fleets.GET("/:id", ctl.GetFleet)
		fleets.PUT("/:id", ctl.UpdateFleet)
		fleets.DELETE("/:id", ctl.DeleteFleet)
		fleets.GET("/:id/company", ctl.GetFleetCompany)
		fleets.GET("/:id/captain", ctl.GetFleetCaptain)
		fleets.GET("/:id/members", ctl.ListFleetMembers)
		fleets.GET("/:id/stats", ctl.FleetStats)
	}
}

func RouteRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	routes := api.Group("/routes")
	{
		routes.GET("", ctl.ListRoutes)
		routes.POST("", ctl.CreateRoute)
		routes.GET("/:id", ctl.GetRoute)
		routes.PUT("/:id", ctl.UpdateRoute)
		routes.DELETE("/:id", ctl.DeleteRoute)
		routes.GET("/:id/fleet", ctl.GetRouteFleet)
		routes.GET("/:id/captain", ctl.GetRouteCaptain)
		routes.GET("/:id/stops", ctl.ListRouteStops)
		routes.POST("/:id/stops", ctl.AddRouteStops)
		routes.GET("/:id/buses", ctl.ListRouteBuses)
	}
}

func MemberRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	members := api.Group("/members")
	{
		members.GET("", ctl.ListMembers)
		members.POST("", ctl.CreateMember)
		members.GET("/:id", ctl.GetMember)
		members.PUT("/:id", ctl.UpdateMember)
		members.DELETE("/:id", ctl.DeleteMember)
		members.GET("/:id/route", ctl.GetMemberRoute)
		members.GET("/:id/fleet", ctl.GetCaptainFleet)
		members.GET("/:id/violations", ctl.ListMemberViolations)
	}
}

func BusRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	buses := api.Group("/buses")
	{
		buses.GET("", ctl.ListBuses)
		buses.POST("", ctl.CreateBus)
		buses.GET("/:number", ctl.GetBus)
		buses.PUT("/:number", ctl.UpdateBus)
		buses.DELETE("/:number", ctl.DeleteBus)
		buses.GET("/:number/route", ctl.GetBusRoute)
	}
}

func StopRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	stops := api.Group("/stops")
	{
		stops.GET("", ctl.ListStops)
		stops.POST("", ctl.CreateStop)
		stops.GET("/:name", ctl.GetStop)
		stops.PUT("/:name", ctl.UpdateStop)
		stops.DELETE("/:name", ctl.DeleteStop)
	}
}

func ViolationRoutes(api *gin.RouterGroup, ctl *controllers.Controller) {
	violations := api.Group("/violations")
	{
		violations.GET("", ctl.ListViolations)
		violations.POST("", ctl.CreateViolation)
		violations.GET("/:name", ctl.GetViolation)
		violations.PUT("/:name", ctl.UpdateViolation)
		violations.DELETE("/:name", ctl.DeleteViolation)
	}

	records := api.Group("/violation-records")
	{
		records.GET("", ctl.ListViolationRecords)
		records.POST("", ctl.CreateViolationRecord)
		records.GET("/:id", ctl.GetViolationRecord)
		records.PUT("/:id", ctl.UpdateViolationRecord)
		records.DELETE("/:id", ctl.DeleteViolationRecord)
		records.GET("/:id/:relation", ctl.GetViolationRecordRelation)
	}
}
