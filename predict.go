package passnet

import (
	"math"

	"github.com/edustats/passnet/dataset"
)

// Plausible bounds on human input for prediction queries. Queries outside
// these bounds predict 0 rather than extrapolating, independent of what range
// the training data happened to cover.
const (
	MaxPlausibleHours      = 40
	MaxPlausibleAttendance = 100
)

// Query is one raw prediction input, in the same units as dataset.Record.
type Query struct {
	HoursStudied   float64
	AttendanceRate float64
}

// Predict returns the probability, in [0, 1], that a student with the given
// study habits passes the exam. ranges must be the dataset.Ranges from the
// training run that produced the Network's weights; the two are only
// meaningful together.
//
// Predict never fails: an implausible query (hours outside [0, 40] or
// attendance outside [0, 100]) or a degenerate normalization returns 0. The
// forward pass does not modify the Network, and the result is clamped to
// [0, 1] to absorb floating-point spill from the sigmoid.
func (net *Network) Predict(q Query, ranges dataset.Ranges) float64 {
	if net == nil {
		return 0
	}

	if q.HoursStudied < 0 || q.HoursStudied > MaxPlausibleHours ||
		q.AttendanceRate < 0 || q.AttendanceRate > MaxPlausibleAttendance {
		return 0
	}

	hours := (q.HoursStudied - ranges.Hours.Min) / (ranges.Hours.Max - ranges.Hours.Min)
	attendance := (q.AttendanceRate - ranges.Attendance.Min) / (ranges.Attendance.Max - ranges.Attendance.Min)

	// Degenerate ranges are rejected at training time; this only trips if a
	// caller hands Predict ranges that never went through Normalize.
	if math.IsNaN(hours) || math.IsInf(hours, 0) || math.IsNaN(attendance) || math.IsInf(attendance, 0) {
		return 0
	}

	outs, err := net.GetOutputs([]float64{hours, attendance})
	if err != nil {
		return 0
	}

	p := outs[0]
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}
	return p
}
