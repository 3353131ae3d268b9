package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Parallel()
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

	tests := []struct {
		name  string
		page  int
		size  int
		items []int
		want  []int
		meta  Meta
	}{
		{name: "first page", page: 1, size: 5, items: items, want: []int{1, 2, 3, 4, 5},
			meta: Meta{Page: 1, Size: 5, Total: 13, TotalPages: 3, HasNext: true}},
		{name: "middle page", page: 2, size: 5, items: items, want: []int{6, 7, 8, 9, 10},
			meta: Meta{Page: 2, Size: 5, Total: 13, TotalPages: 3, HasPrev: true, HasNext: true}},
		{name: "last partial page", page: 3, size: 5, items: items, want: []int{11, 12, 13},
			meta: Meta{Page: 3, Size: 5, Total: 13, TotalPages: 3, HasPrev: true}},
		{name: "past the end clamps", page: 9, size: 6, items: items, want: []int{13},
			meta: Meta{Page: 3, Size: 6, Total: 13, TotalPages: 3, HasPrev: true}},
		{name: "page below one", page: 0, size: 6, items: items, want: []int{1, 2, 3, 4, 5, 6},
			meta: Meta{Page: 1, Size: 6, Total: 13, TotalPages: 3, HasNext: true}},
		{name: "empty", page: 1, size: 5, items: []int{}, want: []int{},
			meta: Meta{Page: 1, Size: 5}},
		{name: "bad size falls back", page: 1, size: 0, items: items, want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			meta: Meta{Page: 1, Size: 10, Total: 13, TotalPages: 2, HasNext: true}},
	}

	for _, tt := range tests {
		got, meta := Paginate(tt.items, tt.page, tt.size)
		assert.Equal(t, tt.want, got, tt.name)
		assert.Equal(t, tt.meta, meta, tt.name)
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()
	from, limit := Calculate(3, 5)
	assert.Equal(t, 10, from)
	assert.Equal(t, 5, limit)

	from, limit = Calculate(-1, 500)
	assert.Equal(t, 0, from)
	assert.Equal(t, 10, limit)
}
