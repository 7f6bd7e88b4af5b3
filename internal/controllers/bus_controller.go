package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListBuses(c *gin.Context) {
	page, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	buses, err := ctl.repos.Bus.List(c.Request.Context(), nil, page, stringKeys(c, "number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": buses})
}

func (ctl *Controller) loadBus(c *gin.Context) (*models.Bus, bool) {
	bus, err := ctl.repos.Bus.Get(c.Request.Context(), nil, c.Param("number"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return bus, true
}

func (ctl *Controller) GetBus(c *gin.Context) {
	bus, ok := ctl.loadBus(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": bus})
}

func (ctl *Controller) CreateBus(c *gin.Context) {
	var input models.BusInput
	if !bindJSON(c, &input) {
		return
	}
	bus, err := ctl.repos.Bus.Create(c.Request.Context(), nil, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bus": bus})
}

func (ctl *Controller) UpdateBus(c *gin.Context) {
	bus, ok := ctl.loadBus(c)
	if !ok {
		return
	}
	var input models.BusInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.Bus.Update(c.Request.Context(), nil, bus, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": updated})
}

func (ctl *Controller) DeleteBus(c *gin.Context) {
	bus, ok := ctl.loadBus(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.Bus.Delete(c.Request.Context(), nil, bus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": deleted})
}

func (ctl *Controller) GetBusRoute(c *gin.Context) {
	bus, ok := ctl.loadBus(c)
	if !ok {
		return
	}
	route, err := ctl.repos.Bus.Route(c.Request.Context(), nil, bus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}
