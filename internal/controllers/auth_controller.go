package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"transit_manage/internal/middleware"
)

type loginInput struct {
	MemberID uint `json:"memberId" binding:"required"`
}

// Login signs a member in by staff number and returns a bearer token.
func (ctl *Controller) Login(c *gin.Context) {
	var input loginInput
	if !bindJSON(c, &input) {
		return
	}

	member, err := ctl.repos.Member.Get(c.Request.Context(), nil, input.MemberID)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctl.tokens.GenerateToken(member.ID, member.Job)
	if err != nil {
		logrus.WithError(err).Error("Login: could not sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "member": member})
}

// Me returns the member behind the bearer token.
func (ctl *Controller) Me(c *gin.Context) {
	id := c.GetUint(middleware.ContextMemberID)
	member, err := ctl.repos.Member.Get(c.Request.Context(), nil, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}
