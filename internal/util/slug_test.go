package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Living Room", "living-room"},
		{"Wall Art & Mirrors", "wall-art-mirrors"},
		{"  Trimmed  ", "trimmed"},
		{"ALL CAPS", "all-caps"},
		{"already-a-slug", "already-a-slug"},
		{"100% Cotton Throw", "100-cotton-throw"},
		{"___", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 25, 50, 25},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative size falls back", 1, -5, 0, DefaultPageSize},
		{"oversized page size falls back", 1, 1000, 0, DefaultPageSize},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestMetaFor(t *testing.T) {
	t.Parallel()

	meta := MetaFor(2, 10, 35)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Size)
	assert.EqualValues(t, 35, meta.Total)
	assert.EqualValues(t, 4, meta.TotalPages)
	assert.True(t, meta.HasPrev)
	assert.True(t, meta.HasNext)

	last := MetaFor(4, 10, 35)
	assert.False(t, last.HasNext)
}

func TestParseIntDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, ParseIntDefault("7", 1))
	assert.Equal(t, 1, ParseIntDefault("", 1))
	assert.Equal(t, 1, ParseIntDefault("seven", 1))
}
