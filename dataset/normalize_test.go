package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Dataset {
	return Dataset{
		{HoursStudied: 5, AttendanceRate: 50, Passed: 0},
		{HoursStudied: 35, AttendanceRate: 95, Passed: 1},
		{HoursStudied: 20, AttendanceRate: 70, Passed: 1},
	}
}

func TestNormalize(t *testing.T) {
	recs, rs, err := Normalize(sample())
	require.NoError(t, err)

	assert.Equal(t, Range{Min: 5, Max: 35}, rs.Hours)
	assert.Equal(t, Range{Min: 50, Max: 95}, rs.Attendance)

	// extremes map to exactly 0 and exactly 1
	assert.Equal(t, 0.0, recs[0].HoursStudied)
	assert.Equal(t, 0.0, recs[0].AttendanceRate)
	assert.Equal(t, 1.0, recs[1].HoursStudied)
	assert.Equal(t, 1.0, recs[1].AttendanceRate)

	for _, r := range recs {
		assert.GreaterOrEqual(t, r.HoursStudied, 0.0)
		assert.LessOrEqual(t, r.HoursStudied, 1.0)
		assert.GreaterOrEqual(t, r.AttendanceRate, 0.0)
		assert.LessOrEqual(t, r.AttendanceRate, 1.0)
	}

	// labels pass through untouched
	assert.Equal(t, []int{0, 1, 1}, []int{recs[0].Passed, recs[1].Passed, recs[2].Passed})
}

func TestNormalize_RoundTrip(t *testing.T) {
	ds := sample()
	recs, rs, err := Normalize(ds)
	require.NoError(t, err)

	for i, r := range recs {
		hours := rs.Hours.Min + r.HoursStudied*(rs.Hours.Max-rs.Hours.Min)
		attendance := rs.Attendance.Min + r.AttendanceRate*(rs.Attendance.Max-rs.Attendance.Min)

		assert.InDelta(t, ds[i].HoursStudied, hours, 1e-12)
		assert.InDelta(t, ds[i].AttendanceRate, attendance, 1e-12)
	}
}

func TestNormalize_ConstantColumn(t *testing.T) {
	ds := Dataset{
		{HoursStudied: 10, AttendanceRate: 50, Passed: 0},
		{HoursStudied: 10, AttendanceRate: 95, Passed: 1},
	}

	_, _, err := Normalize(ds)
	require.Error(t, err)

	var re RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "hours", re.Feature)
	assert.Equal(t, re.Min, re.Max)
}

func TestNormalize_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		ds := Dataset{
			{HoursStudied: 10, AttendanceRate: 50, Passed: 0},
			{HoursStudied: 20, AttendanceRate: bad, Passed: 1},
		}

		_, _, err := Normalize(ds)
		require.Error(t, err)

		var re RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "attendance", re.Feature)
	}
}

func TestNormalize_SingleRecord(t *testing.T) {
	// one record means both columns are constant
	_, _, err := Normalize(Dataset{{HoursStudied: 10, AttendanceRate: 50, Passed: 1}})
	require.Error(t, err)

	var re RangeError
	assert.ErrorAs(t, err, &re)
}

func TestNormalize_Empty(t *testing.T) {
	_, _, err := Normalize(nil)
	require.Error(t, err)
}

func TestTensors(t *testing.T) {
	recs, _, err := Normalize(sample())
	require.NoError(t, err)

	xs, ys := Tensors(recs)
	require.Len(t, xs, 3)
	require.Len(t, ys, 3)

	assert.Equal(t, []float64{1, 1}, xs[1])
	assert.Equal(t, []float64{0, 1, 1}, ys)
	for _, x := range xs {
		assert.Len(t, x, 2)
	}
}
