package initializers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestGlorotUniform_Bounds(t *testing.T) {
	ws := make([]float64, 1000)
	GlorotUniform().Source(rand.NewSource(1)).Set(8, 4, ws)

	limit := math.Sqrt(6 / float64(8+4))
	for _, w := range ws {
		assert.GreaterOrEqual(t, w, -limit)
		assert.LessOrEqual(t, w, limit)
	}
}

func TestGlorotUniform_SeededIsReproducible(t *testing.T) {
	a := make([]float64, 100)
	b := make([]float64, 100)
	GlorotUniform().Source(rand.NewSource(9)).Set(4, 4, a)
	GlorotUniform().Source(rand.NewSource(9)).Set(4, 4, b)

	assert.Equal(t, a, b)
}

func TestUniform_Range(t *testing.T) {
	ws := make([]float64, 1000)
	Uniform().Range(-0.1, 0.1).Source(rand.NewSource(2)).Set(4, 4, ws)

	for _, w := range ws {
		assert.GreaterOrEqual(t, w, -0.1)
		assert.LessOrEqual(t, w, 0.1)
	}
}

func TestUniform_SwappedBounds(t *testing.T) {
	ws := make([]float64, 100)
	Uniform().Range(0.1, -0.1).Source(rand.NewSource(2)).Set(4, 4, ws)

	for _, w := range ws {
		assert.GreaterOrEqual(t, w, -0.1)
		assert.LessOrEqual(t, w, 0.1)
	}
}

func TestVarianceScaling_Truncation(t *testing.T) {
	ws := make([]float64, 1000)
	VarianceScaling().In().Source(rand.NewSource(3)).Set(16, 4, ws)

	sd := math.Sqrt(1.0 / 16)
	for _, w := range ws {
		assert.LessOrEqual(t, math.Abs(w), 2*sd)
	}
}
