package caldate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bakery-orders/internal/pkg/errs"
)

var ErrAmbiguousDate = errors.New("date matches no recognized format")

const Layout = "2006-01-02"

// Date is a calendar day in canonical YYYY-MM-DD form. Values compare correctly as strings.
type Date string

var (
	canonicalRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	brazilianRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// Timestamp layouts whose calendar day is taken as written, ignoring any offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Normalize converts a date-like value into a canonical Date.
// Accepted inputs are canonical strings, DD/MM/YYYY (or D/M/YYYY) strings,
// ISO-8601 timestamps, time.Time, *time.Time and Date.
func Normalize(input any) (Date, error) {
	switch v := input.(type) {
	case Date:
		return parseString(string(v))
	case string:
		return parseString(v)
	case time.Time:
		if v.IsZero() {
			return "", errs.Wrap(ErrAmbiguousDate, "zero time")
		}
		return FromTime(v), nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return "", errs.Wrap(ErrAmbiguousDate, "nil time")
		}
		return FromTime(*v), nil
	default:
		return "", errs.Wrapf(ErrAmbiguousDate, "unsupported type %T", input)
	}
}

// MustNormalize is Normalize for fixed inputs such as seed data. It panics on error.
func MustNormalize(input any) Date {
	d, err := Normalize(input)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	return Date(t.Format(Layout))
}

func parseString(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errs.Wrap(ErrAmbiguousDate, "empty date")
	}

	if canonicalRegex.MatchString(s) {
		if _, err := time.Parse(Layout, s); err != nil {
			return "", errs.Wrapf(ErrAmbiguousDate, "invalid calendar day %q", s)
		}
		return Date(s), nil
	}

	if m := brazilianRegex.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return fromParts(year, month, day, s)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}

	return "", errs.Wrapf(ErrAmbiguousDate, "unrecognized date %q", s)
}

// fromParts rejects days that time.Date would silently roll over (31/02 etc).
func fromParts(year, month, day int, raw string) (Date, error) {
	if month < 1 || month > 12 || day < 1 {
		return "", errs.Wrapf(ErrAmbiguousDate, "invalid calendar day %q", raw)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return "", errs.Wrapf(ErrAmbiguousDate, "invalid calendar day %q", raw)
	}
	return FromTime(t), nil
}

func (d Date) String() string {
	return string(d)
}

func (d Date) IsZero() bool {
	return d == ""
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	t, err := time.Parse(Layout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Date) Year() int {
	return d.Time().Year()
}

// Month is 1-based.
func (d Date) Month() int {
	return int(d.Time().Month())
}

// MonthIndex is 0-based (January = 0).
func (d Date) MonthIndex() int {
	return d.Month() - 1
}

func (d Date) Day() int {
	return d.Time().Day()
}

func (d Date) Compare(other Date) int {
	return strings.Compare(string(d), string(other))
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// InMonth reports whether d falls in the given year and 0-based month.
func (d Date) InMonth(year, monthIndex int) bool {
	return d.Year() == year && d.MonthIndex() == monthIndex
}
