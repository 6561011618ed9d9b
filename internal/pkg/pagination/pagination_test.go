package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParamsClamps(t *testing.T) {
	p := NewParams(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = NewParams(3, 500)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 200, p.Offset)
}

func TestSliceWindows(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, meta := Slice(items, NewParams(2, 2))
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	got, meta = Slice(items, NewParams(3, 2))
	assert.Equal(t, []int{5}, got)
	assert.False(t, meta.HasNext)
}

func TestSlicePastEndIsEmpty(t *testing.T) {
	got, meta := Slice([]int{1, 2}, NewParams(9, 2))
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)

	got, meta = Slice([]int{}, NewParams(1, 10))
	assert.Empty(t, got)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestHugePageDoesNotOverflow(t *testing.T) {
	p := NewParams(768614336404564652, 12)
	assert.GreaterOrEqual(t, p.Offset, 0)

	got, meta := Slice([]int{1, 2, 3}, p)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 3, meta.Total)
	assert.False(t, meta.HasNext)
}

func TestSliceNegativeOffsetIsEmpty(t *testing.T) {
	got, _ := Slice([]int{1, 2, 3}, &Params{Page: 2, Limit: 2, Offset: -4})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
