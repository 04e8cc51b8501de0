package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 50, 0},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{100, 50, 2},
		{101, 50, 3},
		{7, 3, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize),
			"total=%d pageSize=%d", tt.total, tt.pageSize)
	}
}

func TestTotalPagesCeilInvariant(t *testing.T) {
	// pages == ceil(total/limit) for a spread of totals and limits
	for _, limit := range []int{1, 2, 10, 50} {
		for total := int64(0); total <= 120; total++ {
			pages := TotalPages(total, limit)
			expected := int((total + int64(limit) - 1) / int64(limit))
			assert.Equal(t, expected, pages, "total=%d limit=%d", total, limit)
		}
	}
}

func TestValidatePaginationParams(t *testing.T) {
	assert.NoError(t, ValidatePaginationParams(PaginationParams{Page: 1, PageSize: 50}))
	assert.Error(t, ValidatePaginationParams(PaginationParams{Page: 0, PageSize: 50}))
	assert.Error(t, ValidatePaginationParams(PaginationParams{Page: 1, PageSize: 0}))
}
