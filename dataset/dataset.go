// Package dataset handles ingestion and normalization of the study-habits
// dataset: one row per student, with weekly study hours, attendance rate, and
// whether they passed the exam.
package dataset

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// Record is a single validated row of the dataset. All fields are present and
// numeric; rows that cannot be coerced to this shape are dropped during Load,
// never defaulted.
type Record struct {
	HoursStudied   float64
	AttendanceRate float64

	// Passed is the training label: 1 if the student passed the exam, else 0.
	Passed int
}

// Dataset is an ordered sequence of Records. A Dataset produced by Load is
// never empty.
type Dataset []Record

// row is the raw CSV shape. Fields are read as strings so that a malformed
// cell invalidates its own row rather than aborting the whole unmarshal.
type row struct {
	HoursStudied   string `csv:"hours_studied_per_week"`
	AttendanceRate string `csv:"attendance_rate_percent"`
	Passed         string `csv:"passed_exam"`
}

// LoadError documents a failure to produce a usable Dataset: the source could
// not be read, the CSV could not be parsed, or no valid rows survived
// filtering.
type LoadError struct {
	Reason string
	Err    error
}

func (e LoadError) Error() string {
	if e.Err != nil {
		return "load: " + e.Reason + ": " + e.Err.Error()
	}
	return "load: " + e.Reason
}

func (e LoadError) Unwrap() error {
	return e.Err
}

// Load reads CSV rows from r and returns the valid Records in input order.
// Required columns are hours_studied_per_week, attendance_rate_percent, and
// passed_exam. Rows with missing or non-numeric required fields are dropped;
// a label outside {0, 1} also drops its row. Load makes a single attempt and
// returns a LoadError if r cannot be parsed or zero rows survive; retrying is
// the caller's decision.
func Load(r io.Reader) (Dataset, error) {
	var rows []row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, LoadError{Reason: "unparseable source", Err: err}
	}

	ds := make(Dataset, 0, len(rows))
	for _, rw := range rows {
		rec, ok := coerce(rw)
		if !ok {
			continue
		}
		ds = append(ds, rec)
	}

	if len(ds) == 0 {
		return nil, LoadError{Reason: "no valid records after filtering"}
	}
	return ds, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadError{Reason: "source unreachable", Err: errors.Wrapf(err, "opening %q", path)}
	}
	defer f.Close()

	return Load(f)
}

// coerce validates one raw row, converting its string fields to the typed
// Record shape. It reports false for any row that should be dropped.
func coerce(rw row) (Record, bool) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(rw.HoursStudied), 64)
	if err != nil {
		return Record{}, false
	}

	attendance, err := strconv.ParseFloat(strings.TrimSpace(rw.AttendanceRate), 64)
	if err != nil {
		return Record{}, false
	}

	passed, err := strconv.Atoi(strings.TrimSpace(rw.Passed))
	if err != nil || (passed != 0 && passed != 1) {
		return Record{}, false
	}

	return Record{
		HoursStudied:   hours,
		AttendanceRate: attendance,
		Passed:         passed,
	}, true
}
