package initializers

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type glorotUniform struct {
	src rand.Source
}

// GlorotUniform returns the Glorot (Xavier) uniform Initializer: weights are
// drawn from [-limit, limit] with limit = sqrt(6 / (fanIn + fanOut)). This is
// the default Initializer for new networks.
func GlorotUniform() *glorotUniform {
	return new(glorotUniform)
}

// XavierUniform is a proxy for GlorotUniform
func XavierUniform() *glorotUniform {
	return GlorotUniform()
}

// Source sets the random source used for draws, for reproducible
// initialization. The default source is the global one.
func (g *glorotUniform) Source(src rand.Source) *glorotUniform {
	g.src = src
	return g
}

func (g *glorotUniform) Set(fanIn, fanOut int, ws []float64) {
	limit := math.Sqrt(6 / float64(fanIn+fanOut))

	dist := distuv.Uniform{Min: -limit, Max: limit, Src: g.src}
	for i := range ws {
		ws[i] = dist.Rand()
	}
}
