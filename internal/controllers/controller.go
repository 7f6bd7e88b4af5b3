package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"transit_manage/internal/middleware"
	"transit_manage/internal/models"
	"transit_manage/internal/repos"
)

// Controller serves the JSON API over the repositories.
type Controller struct {
	repos  *repos.Repos
	tokens *middleware.Tokens
}

func New(r *repos.Repos, tokens *middleware.Tokens) *Controller {
	return &Controller{repos: r, tokens: tokens}
}

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// respondError maps repository and storage errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repos.ErrNotFound), errors.Is(err, repos.ErrMissingRelation):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidPagination), errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, gorm.ErrDuplicatedKey):
		status = http.StatusConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logrus.WithError(err).WithField("path", c.FullPath()).Warn("invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return false
	}
	return true
}

// pagination reads page and size; both absent means unpaged.
func pagination(c *gin.Context) (*models.Pagination, error) {
	pageStr, hasPage := c.GetQuery("page")
	sizeStr, hasSize := c.GetQuery("size")
	if !hasPage && !hasSize {
		return nil, nil
	}
	if !hasPage || !hasSize {
		return nil, fmt.Errorf("%w: page and size must be given together", models.ErrInvalidPagination)
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return nil, fmt.Errorf("%w: page %q", models.ErrInvalidPagination, pageStr)
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: size %q", models.ErrInvalidPagination, sizeStr)
	}
	p := &models.Pagination{Page: page, Size: size}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseUint(raw, name string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, badRequest("invalid %s %q", name, raw)
	}
	return uint(v), nil
}

func uintParam(c *gin.Context, name string) (uint, error) {
	return parseUint(c.Param(name), name)
}

// uintKeys reads a repeated query parameter as a key set. An absent
// parameter yields nil, meaning no filter.
func uintKeys(c *gin.Context, name string) ([]uint, error) {
	raw, ok := c.GetQueryArray(name)
	if !ok {
		return nil, nil
	}
	keys := make([]uint, 0, len(raw))
	for _, r := range raw {
		if r == "" {
			continue
		}
		k, err := parseUint(r, name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func stringKeys(c *gin.Context, name string) []string {
	raw, ok := c.GetQueryArray(name)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for _, r := range raw {
		if r != "" {
			keys = append(keys, r)
		}
	}
	return keys
}

// window reads the required RFC 3339 start and end query parameters.
func window(c *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, badRequest("invalid start %q", c.Query("start"))
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, badRequest("invalid end %q", c.Query("end"))
	}
	return start, end, nil
}
