package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestEstimate(t *testing.T) {
	tests := []struct {
		name   string
		from   float64
		to     float64
		want   float64
		wantOK bool
	}{
		{name: "both bounds", from: 1000, to: 3000, want: 2000, wantOK: true},
		{name: "lower only", from: 1000, want: 1200, wantOK: true},
		{name: "upper only", to: 2000, want: 1600, wantOK: true},
		{name: "neither", wantOK: false},
		{name: "negative lower is still a bound", from: -100, to: 0, want: -120, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Estimate(tt.from, tt.to)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEstimateZeroMeansMissing(t *testing.T) {
	for _, v := range []float64{1, 50, 1234.5, 300000} {
		got, ok := Estimate(v, 0)
		assert.True(t, ok)
		assert.InDelta(t, v*1.2, got, 1e-9)

		got, ok = Estimate(0, v)
		assert.True(t, ok)
		assert.InDelta(t, v*0.8, got, 1e-9)

		got, ok = Estimate(v, 3*v)
		assert.True(t, ok)
		assert.InDelta(t, 2*v, got, 1e-9)
	}
}

func TestEstimatePtr(t *testing.T) {
	_, ok := EstimatePtr(nil, nil)
	assert.False(t, ok)

	_, ok = EstimatePtr(ptr(0), nil)
	assert.False(t, ok)

	got, ok := EstimatePtr(nil, ptr(1000))
	assert.True(t, ok)
	assert.InDelta(t, 800.0, got, 1e-9)

	got, ok = EstimatePtr(ptr(1000), ptr(2000))
	assert.True(t, ok)
	assert.InDelta(t, 1500.0, got, 1e-9)
}
