package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Validate(t *testing.T) {
	tests := []struct {
		name string
		page Pagination
		ok   bool
	}{
		{"first page", Pagination{Page: 1, Size: 10}, true},
		{"max size", Pagination{Page: 3, Size: MaxPageSize}, true},
		{"zero page", Pagination{Page: 0, Size: 10}, false},
		{"negative page", Pagination{Page: -1, Size: 10}, false},
		{"zero size", Pagination{Page: 1, Size: 0}, false},
		{"oversized", Pagination{Page: 1, Size: MaxPageSize + 1}, false},
		{"offset overflow", Pagination{Page: 1<<30 + 2, Size: 1000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPagination)
			}
		})
	}
}

func TestPagination_Window(t *testing.T) {
	p := Pagination{Page: 2, Size: 10}
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 0, Pagination{Page: 1, Size: 5}.Offset())
}
