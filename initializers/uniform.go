// Package initializers provides the starting-weight distributions used when
// building networks. All types here implement passnet.Initializer.
package initializers

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type uniform struct {
	lower, upper float64
	src          rand.Source
}

// Uniform returns an Initializer that draws each weight from a uniform random
// sample within a range, which can be set by Range.
//
// The result of Uniform is a type that implements passnet.Initializer.
func Uniform() *uniform {
	return &uniform{lower: -0.05, upper: 0.05}
}

// Range sets the range of a Uniform Initializer, returning the same
// Initializer.
func (u *uniform) Range(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

// Source sets the random source used for draws, for reproducible
// initialization. The default source is the global one.
func (u *uniform) Source(src rand.Source) *uniform {
	u.src = src
	return u
}

func (u *uniform) Set(fanIn, fanOut int, ws []float64) {
	lower, upper := u.lower, u.upper
	if lower > upper {
		lower, upper = upper, lower
	}

	dist := distuv.Uniform{Min: lower, Max: upper, Src: u.src}
	for i := range ws {
		ws[i] = dist.Rand()
	}
}
