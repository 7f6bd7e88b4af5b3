package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListFleets(c *gin.Context) {
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
	fleets, err := ctl.repos.Fleet.List(c.Request.Context(), nil, page, ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": fleets})
}

func (ctl *Controller) loadFleet(c *gin.Context) (*models.Fleet, bool) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	fleet, err := ctl.repos.Fleet.Get(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return fleet, true
}

func (ctl *Controller) GetFleet(c *gin.Context) {
	fleet, ok := ctl.loadFleet(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"fleet": fleet})
}

func (ctl *Controller) CreateFleet(c *gin.Context) {
	var input models.FleetInput
	if !bindJSON(c, &input) {
		return
	}
	fleet, err := ctl.repos.Fleet.Create(c.Request.Context(), nil, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fleet": fleet})
}

func (ctl *Controller) UpdateFleet(c *gin.Context) {
	fleet, ok := ctl.loadFleet(c)
	if !ok {
		return
	}
	var input models.FleetInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.Fleet.Update(c.Request.Context(), nil, fleet, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fleet": updated})
}

func (ctl *Controller) DeleteFleet(c *gin.Context) {
	fleet, ok := ctl.loadFleet(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.Fleet.Delete(c.Request.Context(), nil, fleet)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fleet": deleted})
}

func (ctl *Controller) GetFleetCompany(c *gin.Context) {
	fleet, ok := ctl.loadFleet(c)
	if !ok {
		return
	}
	company, err := ctl.repos.Fleet.Company(c.Request.Context(), nil, fleet)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (ctl *Controller) GetFleetCaptain(c *gin.Context) {
	fleet, ok := ctl.loadFleet(c)
	if !ok {
		return
	}
	captain, err := ctl.repos.Fleet.Captain(c.Request.Context(), nil, fleet)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": captain})
}

// ListFleetMembers returns members assigned to any route of the fleet.
func (ctl *Controller) ListFleetMembers(c *gin.Context) {
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
	members, err := ctl.repos.Member.ListByFleet(c.Request.Context(), nil, id, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": members})
}

// FleetStats counts the fleet's violation records per violation name
// between the start and end query parameters.
func (ctl *Controller) FleetStats(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	start, end, err := window(c)
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := ctl.repos.ViolationRecord.StatByFleet(c.Request.Context(), nil, start, end, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}
