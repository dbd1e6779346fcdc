package costfuncs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossEntropy_Cost(t *testing.T) {
	c := CrossEntropy()

	// confident and correct is near-zero cost; confident and wrong is large
	assert.InDelta(t, 0, c.Cost([]float64{0.999}, []float64{1}), 0.01)
	assert.Greater(t, c.Cost([]float64{0.001}, []float64{1}), 5.0)

	// saturated outputs stay finite
	assert.False(t, math.IsInf(c.Cost([]float64{0}, []float64{1}), 0))
	assert.False(t, math.IsInf(c.Cost([]float64{1}, []float64{0}), 0))
}

func TestCrossEntropy_Deriv(t *testing.T) {
	c := CrossEntropy()

	// for a sigmoid output the composed delta is (a - y); the raw cost
	// derivative is (a - y) / (a (1 - a))
	a, y := 0.8, 1.0
	assert.InDelta(t, (a-y)/(a*(1-a)), c.Deriv(a, y), 1e-12)

	// pushes up when under the target, down when over
	assert.Less(t, c.Deriv(0.2, 1), 0.0)
	assert.Greater(t, c.Deriv(0.8, 0), 0.0)
}

func TestMSE(t *testing.T) {
	m := MSE()

	assert.InDelta(t, 0.5*0.25, m.Cost([]float64{0.5}, []float64{1}), 1e-12)
	assert.Equal(t, 0.0, m.Cost([]float64{0.3}, []float64{0.3}))
	assert.InDelta(t, -0.5, m.Deriv(0.5, 1), 1e-12)
}
