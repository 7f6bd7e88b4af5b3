package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListViolations(c *gin.Context) {
	page, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	violations, err := ctl.repos.Violation.List(c.Request.Context(), nil, page, stringKeys(c, "name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": violations})
}

func (ctl *Controller) loadViolation(c *gin.Context) (*models.Violation, bool) {
	violation, err := ctl.repos.Violation.Get(c.Request.Context(), nil, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return violation, true
}

func (ctl *Controller) GetViolation(c *gin.Context) {
	violation, ok := ctl.loadViolation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"violation": violation})
}

func (ctl *Controller) CreateViolation(c *gin.Context) {
	var input models.ViolationInput
	if !bindJSON(c, &input) {
		return
	}
	violation, err := ctl.repos.Violation.Create(c.Request.Context(), nil, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"violation": violation})
}

func (ctl *Controller) UpdateViolation(c *gin.Context) {
	violation, ok := ctl.loadViolation(c)
	if !ok {
		return
	}
	var input models.ViolationInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.Violation.Update(c.Request.Context(), nil, violation, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"violation": updated})
}

func (ctl *Controller) DeleteViolation(c *gin.Context) {
	violation, ok := ctl.loadViolation(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.Violation.Delete(c.Request.Context(), nil, violation)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"violation": deleted})
}
