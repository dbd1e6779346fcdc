package passnet

import "fmt"

// Config describes the shape and learning rate of a Network. A Config is
// immutable for the lifetime of a training run; changing it means building a
// new Network.
type Config struct {
	// HiddenLayers gives the width of each hidden layer, in order from the
	// input side. It must be non-empty and every width must be >= 1.
	HiddenLayers []int

	// LearningRate is the step size handed to the optimizer. It must be
	// greater than zero.
	LearningRate float64
}

func (c Config) validate() error {
	if len(c.HiddenLayers) == 0 {
		return ConfigError{"at least one hidden layer is required"}
	}

	for i, w := range c.HiddenLayers {
		if w < 1 {
			return ConfigError{fmt.Sprintf("hidden layer %d has width %d, must be >= 1", i, w)}
		}
	}

	if !(c.LearningRate > 0) {
		return ConfigError{fmt.Sprintf("learning rate must be > 0 (%v)", c.LearningRate)}
	}

	return nil
}

// clone returns a copy of c that does not share the HiddenLayers slice.
func (c Config) clone() Config {
	hidden := make([]int, len(c.HiddenLayers))
	copy(hidden, c.HiddenLayers)
	return Config{HiddenLayers: hidden, LearningRate: c.LearningRate}
}
