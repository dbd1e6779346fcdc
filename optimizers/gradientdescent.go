// Package optimizers provides the weight-update rules used during training.
// All types here implement passnet.Optimizer.
package optimizers

type gradientdescent int8

// GradientDescent returns the plain stochastic gradient descent optimizer,
// which implements passnet.Optimizer. It is the default optimizer.
func GradientDescent() gradientdescent {
	return gradientdescent(0)
}

// SGD is a proxy for GradientDescent
func SGD() gradientdescent {
	return GradientDescent()
}

func (g gradientdescent) Run(size int, grad func(int) float64, add func(int, float64), learningRate float64) {
	for i := 0; i < size; i++ {
		add(i, -1*learningRate*grad(i))
	}
}
