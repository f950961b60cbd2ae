package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                         string
		total, page, size            int
		wantPage, wantStart, wantEnd int
		wantPrev, wantNext           bool
	}{
		{name: "first page", total: 25, page: 1, size: 10, wantPage: 1, wantStart: 0, wantEnd: 10, wantNext: true},
		{name: "middle page", total: 25, page: 2, size: 10, wantPage: 2, wantStart: 10, wantEnd: 20, wantPrev: true, wantNext: true},
		{name: "last partial page", total: 25, page: 3, size: 10, wantPage: 3, wantStart: 20, wantEnd: 25, wantPrev: true},
		{name: "page past end clamps", total: 25, page: 9, size: 10, wantPage: 3, wantStart: 20, wantEnd: 25, wantPrev: true},
		{name: "page zero clamps", total: 5, page: 0, size: 10, wantPage: 1, wantStart: 0, wantEnd: 5},
		{name: "empty", total: 0, page: 1, size: 10, wantPage: 1, wantStart: 0, wantEnd: 0},
		{name: "no page size shows all", total: 7, page: 2, size: 0, wantPage: 1, wantStart: 0, wantEnd: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantStart, p.StartIndex)
			assert.Equal(t, tt.wantEnd, p.EndIndex)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.total, p.TotalCount)
		})
	}
}
