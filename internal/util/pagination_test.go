package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{name: "first page", page: 1, limit: 20, wantOffset: 0, wantLimit: 20},
		{name: "third page", page: 3, limit: 10, wantOffset: 20, wantLimit: 10},
		{name: "page below one clamps", page: 0, limit: 10, wantOffset: 0, wantLimit: 10},
		{name: "limit above cap falls back", page: 2, limit: 500, wantOffset: 20, wantLimit: DefaultPageSize},
		{name: "non-positive limit falls back", page: 2, limit: 0, wantOffset: 20, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := Calculate(tt.page, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseIntDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, ParseIntDefault("7", 1))
	assert.Equal(t, 1, ParseIntDefault("", 1))
	assert.Equal(t, 1, ParseIntDefault("seven", 1))
}
