package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"integer unchanged", 25, 25},
		{"two decimals unchanged", 26.25, 26.25},
		{"rounds down", 1.234, 1.23},
		{"rounds up", 1.235, 1.24},
		{"half boundary with float drift", 2.675, 2.68},
		{"negative half away from zero", -1.235, -1.24},
		{"negative rounds toward zero", -1.234, -1.23},
		{"zero", 0, 0},
		{"nan coerced to zero", math.NaN(), 0},
		{"positive infinity coerced to zero", math.Inf(1), 0},
		{"negative infinity coerced to zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.in), 1e-12)
		})
	}
}

func TestRound2Idempotent(t *testing.T) {
	values := []float64{0, 0.005, 1.005, 2.675, 19.99, 26.25, 123.456, 99999.995, -2.675, -0.004}
	for _, v := range values {
		once := Round2(v)
		assert.Equal(t, once, Round2(once), "Round2 must be stable for %v", v)
	}
}

func TestRound2StaysWithinHalfCent(t *testing.T) {
	values := []float64{0.001, 0.004999, 1.2349, 7.7777, 100.0049, 54321.9951, -3.3333}
	for _, v := range values {
		got := Round2(v)
		assert.LessOrEqual(t, math.Abs(got-v), 0.005+1e-9, "Round2(%v) drifted too far: %v", v, got)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(250, 0, 100))
	assert.Equal(t, 42.5, Clamp(42.5, 0, 100))
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(2625), Cents(26.25))
	assert.Equal(t, int64(0), Cents(math.NaN()))
	assert.Equal(t, int64(2500), Cents(25))
}
