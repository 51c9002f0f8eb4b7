package database

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one result row; NULL columns arrive as "".
type Row []string

// FieldError reports a column that could not be projected into its Go type.
type FieldError struct {
	Index int
	Value string
	Want  string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("column %d: cannot read %q as %s: %v", e.Index, e.Value, e.Want, e.Err)
	}
	return fmt.Sprintf("column %d: cannot read %q as %s", e.Index, e.Value, e.Want)
}

func (e *FieldError) Unwrap() error { return e.Err }

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (r Row) raw(i int) (string, error) {
	if i < 0 || i >= len(r) {
		return "", &FieldError{Index: i, Want: "column", Err: fmt.Errorf("row has %d columns", len(r))}
	}
	return strings.TrimSpace(r[i]), nil
}

// Text returns column i with surrounding whitespace removed.
func (r Row) Text(i int) (string, error) { return r.raw(i) }

func (r Row) Int(i int) (int, error) {
	s, err := r.raw(i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldError{Index: i, Value: s, Want: "integer", Err: err}
	}
	return n, nil
}

func (r Row) Int64(i int) (int64, error) {
	s, err := r.raw(i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &FieldError{Index: i, Value: s, Want: "integer", Err: err}
	}
	return n, nil
}

func (r Row) Float(i int) (float64, error) {
	s, err := r.raw(i)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{Index: i, Value: s, Want: "number", Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FieldError{Index: i, Value: s, Want: "finite number"}
	}
	return f, nil
}

func (r Row) Decimal(i int) (decimal.Decimal, error) {
	s, err := r.raw(i)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldError{Index: i, Value: s, Want: "decimal", Err: err}
	}
	return d, nil
}

func (r Row) Time(i int) (time.Time, error) {
	s, err := r.raw(i)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &FieldError{Index: i, Value: s, Want: "timestamp"}
}

// Scan projects the row positionally into dest. Supported targets are
// *string, *int, *int64, *float64, *decimal.Decimal and *time.Time.
func (r Row) Scan(dest ...any) error {
	if len(dest) > len(r) {
		return fmt.Errorf("scan: %d targets for %d columns", len(dest), len(r))
	}
	for i, d := range dest {
		var err error
		switch v := d.(type) {
		case *string:
			*v, err = r.Text(i)
		case *int:
			*v, err = r.Int(i)
		case *int64:
			*v, err = r.Int64(i)
		case *float64:
			*v, err = r.Float(i)
		case *decimal.Decimal:
			*v, err = r.Decimal(i)
		case *time.Time:
			*v, err = r.Time(i)
		default:
			return fmt.Errorf("scan: unsupported target %T for column %d", d, i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ScanAll projects every row with fn, failing on the first malformed row.
func ScanAll[T any](rows []Row, fn func(Row) (T, error)) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		v, err := fn(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
