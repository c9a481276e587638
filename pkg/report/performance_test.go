package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_boundaries(t *testing.T) {
	// Targets are chosen so actual/expected hits each boundary exactly.
	tests := []struct {
		name  string
		ratio float64
		want  PerformanceStatus
	}{
		{"exactly 0.85 is on target", 0.85, StatusOnTarget},
		{"just below 0.85 is off target", 0.849999, StatusOffTarget},
		{"exactly 1.15 is on target", 1.15, StatusOnTarget},
		{"just above 1.15 is off target", 1.150001, StatusOffTarget},
		{"exactly 0.70 is off target", 0.70, StatusOffTarget},
		{"just below 0.70 is significantly off", 0.699999, StatusSignificantlyOff},
		{"exactly 1.30 is off target", 1.30, StatusOffTarget},
		{"just above 1.30 is significantly off", 1.300001, StatusSignificantlyOff},
		{"ratio 1.0 is on target", 1.0, StatusOnTarget},
		{"zero hours is significantly off", 0, StatusSignificantlyOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// expected of 1 makes actual the ratio itself
			status, err := Classify(tt.ratio, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestClassify_invalidTarget(t *testing.T) {
	_, err := Classify(10, 0)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = Classify(10, -5)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestClassify_typicalTargets(t *testing.T) {
	// 18h against a 20h target is 0.90
	status, err := Classify(18, 20)
	require.NoError(t, err)
	assert.Equal(t, StatusOnTarget, status)

	// 5h against a 20h target is 0.25
	status, err = Classify(5, 20)
	require.NoError(t, err)
	assert.Equal(t, StatusSignificantlyOff, status)
}
