package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_manage/internal/models"
)

func (ctl *Controller) ListCompanies(c *gin.Context) {
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
	companies, err := ctl.repos.Company.List(c.Request.Context(), nil, page, ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": companies})
}

func (ctl *Controller) loadCompany(c *gin.Context) (*models.Company, bool) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	company, err := ctl.repos.Company.Get(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return company, true
}

func (ctl *Controller) GetCompany(c *gin.Context) {
	company, ok := ctl.loadCompany(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (ctl *Controller) CreateCompany(c *gin.Context) {
	var input models.CompanyInput
	if !bindJSON(c, &input) {
		return
	}
	company, err := ctl.repos.Company.Create(c.Request.Context(), nil, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

func (ctl *Controller) UpdateCompany(c *gin.Context) {
	company, ok := ctl.loadCompany(c)
	if !ok {
		return
	}
	var input models.CompanyInput
	if !bindJSON(c, &input) {
		return
	}
	updated, err := ctl.repos.Company.Update(c.Request.Context(), nil, company, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": updated})
}

func (ctl *Controller) DeleteCompany(c *gin.Context) {
	company, ok := ctl.loadCompany(c)
	if !ok {
		return
	}
	deleted, err := ctl.repos.Company.Delete(c.Request.Context(), nil, company)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": deleted})
}
