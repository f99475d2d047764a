package usecase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"crypto_dashboard/internal/feature/prices/usecase"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		total          int
		page, limit    int
		wantPage       int
		wantLimit      int
		wantTotalPages int
		wantLen        int
		wantFirst      int
	}{
		{name: "first page", total: 237, page: 1, limit: 50, wantPage: 1, wantLimit: 50, wantTotalPages: 5, wantLen: 50, wantFirst: 0},
		{name: "last partial page", total: 237, page: 5, limit: 50, wantPage: 5, wantLimit: 50, wantTotalPages: 5, wantLen: 37, wantFirst: 200},
		{name: "past the end", total: 237, page: 6, limit: 50, wantPage: 6, wantLimit: 50, wantTotalPages: 5, wantLen: 0},
		{name: "exact multiple", total: 100, page: 2, limit: 50, wantPage: 2, wantLimit: 50, wantTotalPages: 2, wantLen: 50, wantFirst: 50},
		{name: "defaults on non-positive", total: 60, page: 0, limit: -1, wantPage: 1, wantLimit: usecase.DefaultPageLimit, wantTotalPages: 2, wantLen: 50, wantFirst: 0},
		{name: "empty", total: 0, page: 1, limit: 50, wantPage: 1, wantLimit: 50, wantTotalPages: 0, wantLen: 0},
		{name: "huge page is empty", total: 237, page: math.MaxInt/50 + 2, limit: 50, wantPage: math.MaxInt/50 + 2, wantLimit: 50, wantTotalPages: 5, wantLen: 0},
		{name: "max int page", total: 237, page: math.MaxInt, limit: 50, wantPage: math.MaxInt, wantLimit: 50, wantTotalPages: 5, wantLen: 0},
		{name: "huge limit is capped", total: 237, page: 1, limit: math.MaxInt, wantPage: 1, wantLimit: usecase.MaxPageLimit, wantTotalPages: 1, wantLen: 237, wantFirst: 0},
		{name: "huge page and limit", total: 237, page: math.MaxInt, limit: math.MaxInt, wantPage: math.MaxInt, wantLimit: usecase.MaxPageLimit, wantTotalPages: 1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := usecase.Paginate(seq(tt.total), tt.page, tt.limit)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Len(t, p.Items, tt.wantLen)
			assert.NotNil(t, p.Items)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, p.Items[0])
			}
		})
	}
}
