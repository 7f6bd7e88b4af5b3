package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListMembers(c *gin.Context) {
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
	members, err := ctl.repos.Member.List(c.Request.Context(), nil, page, ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": members})
}

func (ctl *Controller) loadMember(c *gin.Context) (*models.Member, bool) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	member, err := ctl.repos.Member.Get(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return member, true
}

func (ctl *Controller) GetMember(c *gin.Context) {
	member, ok := ctl.loadMember(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

func (ctl *Controller) CreateMember(c *gin.Context) {
	var input models.MemberInput
	if !bindJSON(c, &input) {
		return
	}
	member, err := ctl.repos.Member.Create(c.Request.Context(), nil, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": member})
}

func (ctl *Controller) UpdateMember(c *gin.Context) {
	member, ok := ctl.loadMember(c)
	if !ok {
		return
	}
	var input models.MemberInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.Member.Update(c.Request.Context(), nil, member, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": updated})
}

func (ctl *Controller) DeleteMember(c *gin.Context) {
	member, ok := ctl.loadMember(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.Member.Delete(c.Request.Context(), nil, member)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": deleted})
}

func (ctl *Controller) GetMemberRoute(c *gin.Context) {
	member, ok := ctl.loadMember(c)
	if !ok {
		return
	}
	route, err := ctl.repos.Member.Route(c.Request.Context(), nil, member)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// GetCaptainFleet returns the fleet the member captains.
func (ctl *Controller) GetCaptainFleet(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	fleet, err := ctl.repos.Fleet.GetByCaptain(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fleet": fleet})
}

func (ctl *Controller) ListMemberViolations(c *gin.Context) {
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
	page, err := pagination(c)
	if err != nil {
		respondError(c, err)
		return
	}
	records, err := ctl.repos.ViolationRecord.ListByDriver(c.Request.Context(), nil, start, end, id, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}
