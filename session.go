package passnet

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/edustats/passnet/dataset"
)

// Session owns the model state for one training lifecycle: the Network, the
// dataset.Ranges that scaled its training inputs, and the per-epoch metric
// history. The three always change together; retraining discards all of them
// before the new run starts, since weights are meaningless without the ranges
// that produced their inputs.
//
// A Session is intended for single-threaded cooperative use: one training run
// at a time, with prediction and the read accessors used between epochs (from
// the per-epoch callback) or after training finishes.
type Session struct {
	cfg     Config
	log     *zap.Logger
	netOpts []Option

	training bool

	net     *Network
	ranges  dataset.Ranges
	history []EpochMetric
}

// SessionOption adjusts how NewSession assembles a Session.
type SessionOption func(*Session)

// WithLogger attaches a structured logger to the Session. The default logger
// discards everything.
func WithLogger(log *zap.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithModelOptions forwards options to New each time the Session builds a
// model.
func WithModelOptions(opts ...Option) SessionOption {
	return func(s *Session) {
		s.netOpts = opts
	}
}

// NewSession validates cfg and returns a Session with no trained model. A
// ConfigError is returned for malformed configurations.
func NewSession(cfg Config, opts ...SessionOption) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg.clone(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Train runs the full pipeline over an already-loaded Dataset: normalize,
// build a fresh model, and fit it for exactly 'epochs' epochs. onEpoch (which
// may be nil) observes each EpochMetric after it is appended to the history;
// returning a non-nil error from it aborts the remaining epochs.
//
// Train returns ErrTrainingInProgress if a previous run on this Session has
// not finished. A normalization failure leaves the previous model and ranges
// untouched; once fitting has begun, the previous state has been discarded
// and whatever epochs complete remain valid.
func (s *Session) Train(ds dataset.Dataset, epochs int, onEpoch func(EpochMetric) error) error {
	if s.training {
		return ErrTrainingInProgress
	}
	s.training = true
	defer func() { s.training = false }()

	recs, ranges, err := dataset.Normalize(ds)
	if err != nil {
		return errors.Wrap(err, "normalizing dataset")
	}

	net, err := New(s.cfg, s.netOpts...)
	if err != nil {
		return errors.Wrap(err, "building model")
	}

	// The old (model, ranges, history) unit dies here, as a unit.
	s.net = net
	s.ranges = ranges
	s.history = s.history[:0]

	xs, ys := dataset.Tensors(recs)
	s.log.Info("training started",
		zap.Int("records", len(ds)),
		zap.Int("epochs", epochs),
		zap.Ints("hidden", s.cfg.HiddenLayers),
		zap.Float64("learning_rate", s.cfg.LearningRate))

	err = net.Fit(xs, ys, epochs, func(m EpochMetric) error {
		s.history = append(s.history, m)
		s.log.Debug("epoch complete",
			zap.Int("epoch", m.Epoch),
			zap.Float64("loss", m.Loss),
			zap.Float64("correct", m.Correct))

		if onEpoch == nil {
			return nil
		}
		return onEpoch(m)
	})
	if err != nil {
		s.log.Warn("training stopped early", zap.Error(err))
		return err
	}

	s.log.Info("training finished", zap.Int("epochs", len(s.history)))
	return nil
}

// Predict answers one query against the current model, or 0 if no model has
// been trained yet.
func (s *Session) Predict(q Query) float64 {
	return s.net.Predict(q, s.ranges)
}

// Model returns the current Network, or nil before the first successful
// Train. Callers treat it as read-only.
func (s *Session) Model() *Network {
	return s.net
}

// Ranges reports the feature ranges of the current model. ok is false before
// the first training run has built a model.
func (s *Session) Ranges() (rs dataset.Ranges, ok bool) {
	return s.ranges, s.net != nil
}

// History returns a copy of the per-epoch metrics of the current training
// run, ordered by epoch.
func (s *Session) History() []EpochMetric {
	out := make([]EpochMetric, len(s.history))
	copy(out, s.history)
	return out
}

// Training reports whether a training run is currently active.
func (s *Session) Training() bool {
	return s.training
}
