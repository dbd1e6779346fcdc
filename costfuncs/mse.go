package costfuncs

import (
	"math"
)

type mse int8

// MSE returns the mean squared error cost function, which implements
// passnet.CostFunction.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum += 0.5 * math.Pow(outs[i]-targets[i], 2)
	}

	return sum / float64(len(outs))
}

func (m mse) Deriv(out, target float64) float64 {
	return out - target
}
