package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		count    int64
		number   int
		numPages int
		offset   int
	}{
		{"missing page", "", 14, 1, 2, 0},
		{"first page", "1", 14, 1, 2, 0},
		{"second page", "2", 14, 2, 2, 10},
		{"past the end", "7", 14, 2, 2, 10},
		{"zero", "0", 14, 1, 2, 0},
		{"negative", "-3", 14, 1, 2, 0},
		{"garbage", "abc", 14, 1, 2, 0},
		{"empty feed", "3", 0, 1, 1, 0},
		{"exact fit", "2", 20, 2, 2, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(tc.raw, tc.count, 10)
			assert.Equal(t, tc.number, p.Number)
			assert.Equal(t, tc.numPages, p.NumPages)
			assert.Equal(t, tc.offset, p.Offset())
			assert.Equal(t, 10, p.Limit())
		})
	}
}

func TestPageNavigation(t *testing.T) {
	first := Paginate("1", 25, 10)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	assert.Equal(t, 2, first.NextPageNumber())
	assert.Equal(t, 1, first.PreviousPageNumber())
	assert.Equal(t, []int{1, 2, 3}, first.PageRange())

	last := Paginate("3", 25, 10)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())
	assert.Equal(t, 2, last.PreviousPageNumber())

	single := Paginate("", 3, 10)
	assert.False(t, single.HasOtherPages())
}
