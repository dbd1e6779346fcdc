package passnet

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// EpochMetric reports the state of the model after one completed epoch.
// Metrics are computed on the held-out portion of the training inputs (or on
// the training portion itself when the dataset is too small to hold anything
// out).
type EpochMetric struct {
	// Epoch is the 0-based index of the completed epoch.
	Epoch int

	// Loss is the mean cost over the reporting split.
	Loss float64

	// Correct is the fraction of the reporting split classified correctly,
	// thresholding the output at 0.5.
	// 0 → 1
	Correct float64
}

// holdoutFraction of the inputs, taken from the tail of the given order, is
// reserved for per-epoch metric reporting and never trained on.
const holdoutFraction = 0.2

// Fit runs exactly 'epochs' full passes of stochastic gradient descent over
// the training portion of (xs, ys), adjusting the Network's parameters in
// place. xs rows must each hold InputSize features; ys holds one label in
// {0, 1} per row. The last 20% of the rows, in the order given, are held out
// of training and used only to compute the reported metrics.
//
// After each epoch, onEpoch (if non-nil) is invoked synchronously with that
// epoch's EpochMetric before the next epoch begins. If onEpoch returns a
// non-nil error, the remaining epochs are discarded and the error is returned
// wrapped; parameter updates from completed epochs are kept.
//
// A SizeMismatchError is returned, before any updates, if xs and ys differ in
// length or any feature row has the wrong width.
func (net *Network) Fit(xs [][]float64, ys []float64, epochs int, onEpoch func(EpochMetric) error) error {
	if len(xs) != len(ys) {
		return SizeMismatchError{Expected: len(xs), Got: len(ys), Values: "labels"}
	}
	if len(xs) == 0 {
		return errors.Errorf("training requires at least one record")
	}
	for i := range xs {
		if len(xs[i]) != InputSize {
			return SizeMismatchError{Expected: InputSize, Got: len(xs[i]), Values: "feature width"}
		}
	}

	holdout := int(holdoutFraction * float64(len(xs)))
	split := len(xs) - holdout

	trainX, trainY := xs[:split], ys[:split]
	evalX, evalY := xs[split:], ys[split:]
	if holdout == 0 {
		evalX, evalY = trainX, trainY
	}

	for e := 0; e < epochs; e++ {
		for i := range trainX {
			net.step(trainX[i], trainY[i])
		}

		m, err := net.measure(e, evalX, evalY)
		if err != nil {
			return errors.Wrapf(err, "measuring metrics for epoch %d failed", e)
		}

		if onEpoch != nil {
			if err := onEpoch(m); err != nil {
				return errors.Wrapf(err, "training aborted by callback after epoch %d", e)
			}
		}
	}

	return nil
}

// step performs one forward/backward pass for a single sample and applies the
// gradients through the optimizer.
func (net *Network) step(x []float64, y float64) {
	acts := net.forward(x)

	// deltas of the current layer: dCost/dz for each of its output values
	out := acts[len(acts)-1]
	deltas := make([]float64, len(out))
	for i := range out {
		deltas[i] = net.cf.Deriv(out[i], y) * net.layers[len(net.layers)-1].act.Deriv(out[i])
	}

	for li := len(net.layers) - 1; li >= 0; li-- {
		l := net.layers[li]
		prev := acts[li]
		_, cols := l.weights.Dims()

		// deltas for the layer below, before this layer's weights move
		var below []float64
		if li > 0 {
			below = make([]float64, len(prev))
			for j := range prev {
				var sum float64
				for i := range deltas {
					sum += l.weights.At(i, j) * deltas[i]
				}
				below[j] = sum * net.layers[li-1].act.Deriv(prev[j])
			}
		}

		net.opt.Run(len(deltas)*cols,
			func(k int) float64 { return deltas[k/cols] * prev[k%cols] },
			func(k int, dw float64) {
				i, j := k/cols, k%cols
				l.weights.Set(i, j, l.weights.At(i, j)+dw)
			},
			net.cfg.LearningRate)

		net.opt.Run(len(deltas),
			func(i int) float64 { return deltas[i] },
			func(i int, db float64) { l.biases.SetVec(i, l.biases.AtVec(i)+db) },
			net.cfg.LearningRate)

		deltas = below
	}
}

// measure computes the reported loss and fraction correct over one split.
func (net *Network) measure(epoch int, xs [][]float64, ys []float64) (EpochMetric, error) {
	losses := make([]float64, len(xs))
	var correct float64

	for i := range xs {
		acts := net.forward(xs[i])
		out := acts[len(acts)-1]

		losses[i] = net.cf.Cost(out, []float64{ys[i]})
		if (out[0] >= 0.5) == (ys[i] == 1) {
			correct++
		}
	}

	loss, err := stats.Mean(losses)
	if err != nil {
		return EpochMetric{}, errors.Wrap(err, "averaging losses")
	}

	return EpochMetric{
		Epoch:   epoch,
		Loss:    loss,
		Correct: correct / float64(len(xs)),
	}, nil
}
