package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListStops(c *gin.Context) {
	page, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	stops, err := ctl.repos.Stop.List(c.Request.Context(), nil, page, stringKeys(c, "name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stops})
}

func (ctl *Controller) loadStop(c *gin.Context) (*models.Stop, bool) {
	stop, err := ctl.repos.Stop.Get(c.Request.Context(), nil, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return stop, true
}

func (ctl *Controller) GetStop(c *gin.Context) {
	stop, ok := ctl.loadStop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"stop": stop})
}

func (ctl *Controller) CreateStop(c *gin.Context) {
	var input models.StopInput
	if !bindJSON(c, &input) {
		return
	}
	stop, err := ctl.repos.Stop.Create(c.Request.Context(), nil, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stop": stop})
}

func (ctl *Controller) UpdateStop(c *gin.Context) {
	stop, ok := ctl.loadStop(c)
	if !ok {
		return
	}
	var input models.StopInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.Stop.Update(c.Request.Context(), nil, stop, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stop": updated})
}

func (ctl *Controller) DeleteStop(c *gin.Context) {
	stop, ok := ctl.loadStop(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.Stop.Delete(c.Request.Context(), nil, stop)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stop": deleted})
}
