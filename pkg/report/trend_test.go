package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     TrendResult
	}{
		{"both zero is neutral", 0, 0, TrendResult{0, TrendNeutral}},
		{"growth from zero baseline is a flat +100", 5, 0, TrendResult{100, TrendUp}},
		{"halving is -50 down", 50, 100, TrendResult{-50, TrendDown}},
		{"unchanged is neutral", 100, 100, TrendResult{0, TrendNeutral}},
		{"doubling is +100 up", 200, 100, TrendResult{100, TrendUp}},
		{"drop to zero is -100 down", 0, 80, TrendResult{-100, TrendDown}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Trend(tc.current, tc.previous))
		})
	}
}

func TestTrendZeroBaselineIsExactlyHundred(t *testing.T) {
	// Deliberate convention: previous==0 with any positive current must yield
	// exactly 100, never Inf and never an error.
	got := Trend(0.0001, 0)
	assert.Equal(t, 100.0, got.ChangePct)
	assert.Equal(t, TrendUp, got.Direction)
}

func TestTrendIsPure(t *testing.T) {
	first := Trend(42, 17)
	second := Trend(42, 17)
	assert.Equal(t, first, second)
}
