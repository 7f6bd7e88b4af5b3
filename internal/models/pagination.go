package models

import (
	"errors"
	"fmt"
)

// MaxPageSize bounds Pagination.Size.
const MaxPageSize = 1000

// maxOffset keeps (page-1)*size well inside a signed 32-bit LIMIT/OFFSET.
const maxOffset = 1 << 30

var ErrInvalidPagination = errors.New("invalid pagination")

// Pagination selects a 1-based page of Size rows.
// A nil *Pagination means the full, unpaged sequence.
type Pagination struct {
	Page int `json:"page" form:"page"`
	Size int `json:"size" form:"size"`
}

func (p Pagination) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidPagination, p.Page)
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		return fmt.Errorf("%w: size must be in [1, %d], got %d", ErrInvalidPagination, MaxPageSize, p.Size)
	}
	if int64(p.Page-1)*int64(p.Size) > maxOffset {
		return fmt.Errorf("%w: page %d is out of range", ErrInvalidPagination, p.Page)
	}
	return nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

func (p Pagination) Limit() int {
	return p.Size
}
