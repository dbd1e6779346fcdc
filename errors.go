package passnet

import "fmt"

// Error is a wrapper for specific types of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	// ErrTrainingInProgress is returned by Session.Train when a previous
	// training run on the same Session has not completed or been abandoned.
	ErrTrainingInProgress = Error{"a training run is already in progress"}
)

// ConfigError documents a malformed model configuration. It is always
// returned before any model parameters have been allocated.
type ConfigError struct{ string }

func (err ConfigError) Error() string {
	return "invalid config: " + err.string
}

// SizeMismatchError documents training inputs whose dimensions do not fit the
// Network: an xs/ys length mismatch, or a feature row of the wrong width.
type SizeMismatchError struct {
	Expected, Got int

	// Values names the mismatched dimension, e.g. "labels" or "feature width".
	Values string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch for %s: expected %d, got %d", err.Values, err.Expected, err.Got)
}
