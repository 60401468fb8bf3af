package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abcdef", "abcdef", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "abc", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SequenceRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSequenceRatioPartialOverlap(t *testing.T) {
	got := SequenceRatio("the quick brown fox", "the quick brown cat")
	assert.Greater(t, got, 0.7)
	assert.Less(t, got, 1.0)
}

func TestSequenceRatioBounded(t *testing.T) {
	pairs := [][2]string{
		{"aaaa", "aa"},
		{"hello world", "world hello"},
		{"абв", "абг"},
	}
	for _, p := range pairs {
		got := SequenceRatio(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}
