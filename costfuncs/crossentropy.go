// Package costfuncs provides the cost functions used to train networks. All
// types here implement passnet.CostFunction.
package costfuncs

import (
	"math"
)

// eps keeps the logarithm away from outputs that have saturated to exactly 0
// or 1.
const eps = 1e-7

type crossEntropy int8

// CrossEntropy returns the binary cross-entropy cost function, which
// implements passnet.CostFunction. It expects outputs in (0, 1) and targets
// in {0, 1}; outputs are nudged inside (0, 1) before the logarithm.
//
// CrossEntropy is the default cost function.
func CrossEntropy() crossEntropy {
	return crossEntropy(0)
}

// NegativeLog is a proxy for CrossEntropy
func NegativeLog() crossEntropy {
	return CrossEntropy()
}

func (c crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		a := squeeze(outs[i])
		sum -= targets[i]*math.Log(a) + (1-targets[i])*math.Log(1-a)
	}

	return sum / float64(len(outs))
}

func (c crossEntropy) Deriv(out, target float64) float64 {
	a := squeeze(out)
	return (a - target) / (a * (1 - a))
}

func squeeze(a float64) float64 {
	if a < eps {
		return eps
	} else if a > 1-eps {
		return 1 - eps
	}

	return a
}
