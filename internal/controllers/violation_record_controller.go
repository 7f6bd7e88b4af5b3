package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListViolationRecords(c *gin.Context) {
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
	records, err := ctl.repos.ViolationRecord.List(c.Request.Context(), nil, page, ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (ctl *Controller) loadViolationRecord(c *gin.Context) (*models.ViolationRecord, bool) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	record, err := ctl.repos.ViolationRecord.Get(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return record, true
}

func (ctl *Controller) GetViolationRecord(c *gin.Context) {
	record, ok := ctl.loadViolationRecord(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"violation_record": record})
}

// CreateViolationRecord records an infraction. Omitting routeId and fleetId
// has them filled in from the driver's route.
func (ctl *Controller) CreateViolationRecord(c *gin.Context) {
	var input models.ViolationRecordInput
	if !bindJSON(c, &input) {
		return
	}
	record, err := ctl.repos.ViolationRecord.Create(c.Request.Context(), nil, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"violation_record": record})
}

func (ctl *Controller) UpdateViolationRecord(c *gin.Context) {
	record, ok := ctl.loadViolationRecord(c)
	if !ok {
		return
	}
	var input models.ViolationRecordInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.ViolationRecord.Update(c.Request.Context(), nil, record, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"violation_record": updated})
}

func (ctl *Controller) DeleteViolationRecord(c *gin.Context) {
	record, ok := ctl.loadViolationRecord(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.ViolationRecord.Delete(c.Request.Context(), nil, record)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"violation_record": deleted})
}

// GetViolationRecordRelation resolves one of the record's references,
// selected by the :relation path segment.
func (ctl *Controller) GetViolationRecordRelation(c *gin.Context) {
	record, ok := ctl.loadViolationRecord(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	vr := ctl.repos.ViolationRecord

	var (
		key    string
		result any
		err    error
	)
	switch c.Param("relation") {
	case "driver":
		key = "member"
		result, err = vr.Driver(ctx, nil, record)
	case "recorder":
		key = "member"
		result, err = vr.Recorder(ctx, nil, record)
	case "bus":
		key = "bus"
		result, err = vr.Bus(ctx, nil, record)
	case "fleet":
		key = "fleet"
		result, err = vr.Fleet(ctx, nil, record)
	case "route":
		key = "route"
		result, err = vr.Route(ctx, nil, record)
	case "violation":
		key = "violation"
		result, err = vr.Violation(ctx, nil, record)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown relation " + c.Param("relation")})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: result})
}
