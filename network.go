package passnet

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/edustats/passnet/costfuncs"
	"github.com/edustats/passnet/initializers"
	"github.com/edustats/passnet/optimizers"
)

// The topology of every Network is fixed at two input features and a single
// sigmoid output; only the hidden layers vary.
const (
	InputSize  = 2
	OutputSize = 1
)

// activation is one elementwise nonlinearity. Deriv is expressed through the
// activation's output value, which is all the backward pass keeps around.
type activation interface {
	Value(x float64) float64
	Deriv(out float64) float64
}

type relu int8

func (relu) Value(x float64) float64 {
	return math.Max(x, 0)
}

func (relu) Deriv(out float64) float64 {
	if out > 0 {
		return 1
	}
	return 0
}

type logistic int8

func (logistic) Value(x float64) float64 {
	return 0.5 + 0.5*math.Tanh(0.5*x)
}

func (logistic) Deriv(out float64) float64 {
	return out * (1 - out)
}

// layer is one dense layer: an out×in weight matrix, a bias per output value,
// and the activation applied to the affine result.
type layer struct {
	weights *mat.Dense
	biases  *mat.VecDense
	act     activation
}

func (l *layer) outSize() int {
	r, _ := l.weights.Dims()
	return r
}

// Network is a dense feed-forward classifier with topology
// [2, hidden..., 1]: ReLU on every hidden layer and a sigmoid output. A
// Network is created untrained by New, has its parameters adjusted in place
// by Fit, and is read-only thereafter.
type Network struct {
	cfg    Config
	layers []*layer
	cf     CostFunction
	opt    Optimizer
	init   Initializer
}

// Option adjusts how New assembles a Network.
type Option func(*Network)

// WithCost replaces the default binary cross-entropy cost function.
func WithCost(cf CostFunction) Option {
	return func(net *Network) {
		if cf != nil {
			net.cf = cf
		}
	}
}

// WithOptimizer replaces the default gradient descent optimizer.
func WithOptimizer(opt Optimizer) Option {
	return func(net *Network) {
		if opt != nil {
			net.opt = opt
		}
	}
}

// WithInitializer replaces the default Glorot-uniform weight initializer.
// The initializer is only consulted during New.
func WithInitializer(init Initializer) Option {
	return func(net *Network) {
		if init != nil {
			net.init = init
		}
	}
}

// New builds an untrained Network from cfg: one dense+ReLU layer per entry of
// cfg.HiddenLayers, in order, then a final dense+sigmoid layer of width 1.
// Weights are drawn by the configured Initializer and biases start at zero.
// A ConfigError is returned before any parameters are allocated if cfg is
// malformed.
func New(cfg Config, opts ...Option) (*Network, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	net := &Network{
		cfg:  cfg.clone(),
		cf:   costfuncs.CrossEntropy(),
		opt:  optimizers.GradientDescent(),
		init: initializers.GlorotUniform(),
	}
	for _, opt := range opts {
		opt(net)
	}

	widths := net.Widths()
	net.layers = make([]*layer, len(widths)-1)
	for i := range net.layers {
		in, out := widths[i], widths[i+1]

		ws := make([]float64, out*in)
		net.init.Set(in, out, ws)

		var act activation = relu(0)
		if i == len(net.layers)-1 {
			act = logistic(0)
		}

		net.layers[i] = &layer{
			weights: mat.NewDense(out, in, ws),
			biases:  mat.NewVecDense(out, nil),
			act:     act,
		}
	}

	return net, nil
}

// forward evaluates the network on x, returning the activation values of
// every layer. The first entry is x itself; the last holds the single output.
func (net *Network) forward(x []float64) [][]float64 {
	acts := make([][]float64, len(net.layers)+1)
	acts[0] = x

	a := mat.NewVecDense(len(x), x)
	for i, l := range net.layers {
		z := mat.NewVecDense(l.outSize(), nil)
		z.MulVec(l.weights, a)
		z.AddVec(z, l.biases)

		out := make([]float64, l.outSize())
		for j := range out {
			out[j] = l.act.Value(z.AtVec(j))
		}

		acts[i+1] = out
		a = mat.NewVecDense(len(out), out)
	}

	return acts
}

// GetOutputs returns the Network's output values for the given inputs,
// without updating any parameters. A SizeMismatchError is returned if the
// number of inputs is not InputSize.
func (net *Network) GetOutputs(inputs []float64) ([]float64, error) {
	if len(inputs) != InputSize {
		return nil, SizeMismatchError{Expected: InputSize, Got: len(inputs), Values: "inputs"}
	}

	acts := net.forward(inputs)
	out := make([]float64, OutputSize)
	copy(out, acts[len(acts)-1])
	return out, nil
}

// Widths returns the full layer widths of the Network, input first:
// [2, hidden..., 1]. It is safe to call on a nil Network, which returns nil;
// display layers use this to render an untrained state.
func (net *Network) Widths() []int {
	if net == nil {
		return nil
	}

	widths := make([]int, 0, len(net.cfg.HiddenLayers)+2)
	widths = append(widths, InputSize)
	widths = append(widths, net.cfg.HiddenLayers...)
	return append(widths, OutputSize)
}

// NumLayers returns the number of trainable (dense) layers. A nil Network has
// zero.
func (net *Network) NumLayers() int {
	if net == nil {
		return 0
	}
	return len(net.layers)
}

// LayerWeights returns a copy of the weight matrix of trainable layer i, with
// one row per output value of that layer. It returns nil if the Network is
// nil or i is out of range. The copy can be read freely by a display layer
// without observing training updates.
func (net *Network) LayerWeights(i int) *mat.Dense {
	if net == nil || i < 0 || i >= len(net.layers) {
		return nil
	}
	return mat.DenseCopyOf(net.layers[i].weights)
}

// LayerBiases returns a copy of the bias vector of trainable layer i, or nil
// if the Network is nil or i is out of range.
func (net *Network) LayerBiases(i int) []float64 {
	if net == nil || i < 0 || i >= len(net.layers) {
		return nil
	}

	l := net.layers[i]
	out := make([]float64, l.biases.Len())
	copy(out, l.biases.RawVector().Data)
	return out
}

// Config returns a copy of the configuration the Network was built from.
func (net *Network) Config() Config {
	return net.cfg.clone()
}
