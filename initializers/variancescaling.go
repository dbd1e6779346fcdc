package initializers

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type varianceScaling struct {
	// either: "in", "out", "avg"
	mode   string
	factor float64
	src    rand.Source
}

const defaultVarianceMode string = "avg"

// VarianceScaling returns the variance scaling Initializer, which has 3 modes
// and a user-defined scaling factor. The three modes can be set by In, Out,
// and Avg. It defaults to Avg with a factor of 1.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{mode: defaultVarianceMode, factor: 1}
}

// Factor sets the scaling factor to be used for the Initializer.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// In sets the scaling to be based on the number of values feeding the layer.
func (v *varianceScaling) In() *varianceScaling {
	v.mode = "in"
	return v
}

// Out sets the scaling to be based on the number of values the layer
// produces.
func (v *varianceScaling) Out() *varianceScaling {
	v.mode = "out"
	return v
}

// Avg sets the scaling to be based on the average of the numbers of values
// feeding the layer and produced by it.
func (v *varianceScaling) Avg() *varianceScaling {
	v.mode = defaultVarianceMode
	return v
}

// Source sets the random source used for draws, for reproducible
// initialization. The default source is the global one.
func (v *varianceScaling) Source(src rand.Source) *varianceScaling {
	v.src = src
	return v
}

// Set is the implementation of passnet.Initializer. Weights are drawn from a
// normal distribution truncated at two standard deviations.
func (v *varianceScaling) Set(fanIn, fanOut int, ws []float64) {
	var scale float64
	if v.mode == "in" {
		scale = float64(fanIn)
	} else if v.mode == "out" {
		scale = float64(fanOut)
	} else { // must be "avg"
		scale = float64(fanIn+fanOut) / 2
	}

	sd := math.Sqrt(v.factor / scale)
	dist := distuv.Normal{Mu: 0, Sigma: sd, Src: v.src}

	for i := range ws {
		w := dist.Rand()
		for math.Abs(w) > 2*sd {
			w = dist.Rand()
		}
		ws[i] = w
	}
}
