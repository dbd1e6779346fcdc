package passnet

// CostFunction measures how far the network's outputs are from their targets,
// and supplies the derivative used to seed backpropagation. Implementations
// live in the subpackage "costfuncs".
type CostFunction interface {
	// Cost returns the scalar cost of the given outputs against their
	// targets. Both slices are guaranteed to have the same length.
	Cost(outs, targets []float64) float64

	// Deriv returns the derivative of the cost with respect to one output
	// value.
	Deriv(out, target float64) float64
}

// Optimizer applies gradients to one set of parameters. Implementations live
// in the subpackage "optimizers".
type Optimizer interface {
	// Run adjusts 'size' parameters. grad gives the gradient of the
	// parameter at an index; add adds a change to the parameter at an index.
	Run(size int, grad func(int) float64, add func(int, float64), learningRate float64)
}

// Initializer sets the starting values of one layer's weights.
// Implementations live in the subpackage "initializers".
type Initializer interface {
	// Set fills ws, given the number of values feeding the layer and the
	// number it produces.
	Set(fanIn, fanOut int, ws []float64)
}
