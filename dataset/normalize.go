package dataset

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Range is the observed [Min, Max] of one feature column, used for min-max
// scaling. A Range produced by Normalize always has Min strictly less than
// Max.
type Range struct {
	Min, Max float64
}

// Ranges holds the per-feature Ranges computed over one Dataset. A trained
// network is only meaningful together with the Ranges that scaled its
// training inputs; the two travel as a unit.
type Ranges struct {
	Hours      Range
	Attendance Range
}

// Normalized is a Record whose feature values have been scaled into [0, 1].
// The label is carried through untouched.
type Normalized struct {
	HoursStudied   float64
	AttendanceRate float64
	Passed         int
}

// RangeError documents a feature column that cannot be min-max scaled: it
// contains a non-finite value, or its minimum equals its maximum so that
// scaling would divide by zero. Either case is fatal to the training attempt.
type RangeError struct {
	Feature  string
	Min, Max float64
}

func (e RangeError) Error() string {
	if e.Min == e.Max && !math.IsNaN(e.Min) && !math.IsInf(e.Min, 0) {
		return fmt.Sprintf("normalize: feature %q has zero-width range [%v, %v]", e.Feature, e.Min, e.Max)
	}
	return fmt.Sprintf("normalize: feature %q contains a non-finite value", e.Feature)
}

// Normalize scales each feature of ds into [0, 1] with (v - min) / (max - min)
// and returns the scaled records alongside the Ranges used. The minimum
// observed value of a column maps to exactly 0 and the maximum to exactly 1.
// No clamping or imputation is done: a non-finite input anywhere, or a
// constant column, returns a RangeError and the caller must not proceed to
// training.
func Normalize(ds Dataset) ([]Normalized, Ranges, error) {
	if len(ds) == 0 {
		return nil, Ranges{}, errors.Errorf("normalize: empty dataset")
	}

	hours := make([]float64, len(ds))
	attendance := make([]float64, len(ds))
	for i, rec := range ds {
		hours[i] = rec.HoursStudied
		attendance[i] = rec.AttendanceRate
	}

	hr, err := scan("hours", hours)
	if err != nil {
		return nil, Ranges{}, err
	}
	ar, err := scan("attendance", attendance)
	if err != nil {
		return nil, Ranges{}, err
	}

	rs := Ranges{Hours: hr, Attendance: ar}
	out := make([]Normalized, len(ds))
	for i, rec := range ds {
		out[i] = Normalized{
			HoursStudied:   hr.scale(rec.HoursStudied),
			AttendanceRate: ar.scale(rec.AttendanceRate),
			Passed:         rec.Passed,
		}
	}
	return out, rs, nil
}

// Tensors flattens normalized records into the input/label pair consumed by
// the training loop: one [hours, attendance] row per record and one float
// label in {0, 1}.
func Tensors(recs []Normalized) (xs [][]float64, ys []float64) {
	xs = make([][]float64, len(recs))
	ys = make([]float64, len(recs))
	for i, rec := range recs {
		xs[i] = []float64{rec.HoursStudied, rec.AttendanceRate}
		ys[i] = float64(rec.Passed)
	}
	return xs, ys
}

func (r Range) scale(v float64) float64 {
	return (v - r.Min) / (r.Max - r.Min)
}

// scan computes the Range of one column in a single linear pass, rejecting
// non-finite values and zero-width ranges.
func scan(feature string, col []float64) (Range, error) {
	for _, v := range col {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Range{}, RangeError{Feature: feature, Min: math.NaN(), Max: math.NaN()}
		}
	}

	min, max := floats.Min(col), floats.Max(col)
	if min == max {
		return Range{}, RangeError{Feature: feature, Min: min, Max: max}
	}
	return Range{Min: min, Max: max}, nil
}
