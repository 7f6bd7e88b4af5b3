package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListRoutes(c *gin.Context) {
	page, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	ids, err := uintKeys(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	routes, err := ctl.repos.Route.List(c.Request.Context(), nil, page, ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": routes})
}

func (ctl *Controller) loadRoute(c *gin.Context) (*models.Route, bool) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	route, err := ctl.repos.Route.Get(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return route, true
}

func (ctl *Controller) GetRoute(c *gin.Context) {
	route, ok := ctl.loadRoute(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// CreateRoute creates a route and, when stops are listed, its stop
// sequence in the same transaction.
func (ctl *Controller) CreateRoute(c *gin.Context) {
	var input struct {
		models.RouteInput
		Stops []string `json:"stops"`
	}
	if !bindJSON(c, &input) {
		return
	}

	ctx := c.Request.Context()
	var route *models.Route
	var stops []*models.StopRoute
	err := ctl.repos.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		if route, err = ctl.repos.Route.Create(ctx, tx, input.RouteInput); err != nil {
			return err
		}
		stops, err = ctl.repos.StopRoute.AddStops(ctx, tx, route.ID, input.Stops)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"route": route, "stops": stops})
}

func (ctl *Controller) UpdateRoute(c *gin.Context) {
	route, ok := ctl.loadRoute(c)
	if !ok {
		return
	}
	var input models.RouteInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.Route.Update(c.Request.Context(), nil, route, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": updated})
}

func (ctl *Controller) DeleteRoute(c *gin.Context) {
	route, ok := ctl.loadRoute(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.Route.Delete(c.Request.Context(), nil, route)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": deleted})
}

func (ctl *Controller) GetRouteFleet(c *gin.Context) {
	route, ok := ctl.loadRoute(c)
	if !ok {
		return
	}
	fleet, err := ctl.repos.Route.Fleet(c.Request.Context(), nil, route)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fleet": fleet})
}

func (ctl *Controller) GetRouteCaptain(c *gin.Context) {
	route, ok := ctl.loadRoute(c)
	if !ok {
		return
	}
	captain, err := ctl.repos.Route.Captain(c.Request.Context(), nil, route)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": captain})
}

func (ctl *Controller) ListRouteStops(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	stops, err := ctl.repos.StopRoute.ListByRoute(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stops})
}

// AddRouteStops appends the listed stops to the route, numbered from 1.
func (ctl *Controller) AddRouteStops(c *gin.Context) {
	route, ok := ctl.loadRoute(c)
	if !ok {
		return
	}
	var input struct {
		Stops []string `json:"stops" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	stops, err := ctl.repos.StopRoute.AddStops(c.Request.Context(), nil, route.ID, input.Stops)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": stops})
}

func (ctl *Controller) ListRouteBuses(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	buses, err := ctl.repos.Bus.ListByRoute(c.Request.Context(), nil, id, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": buses})
}
