package eventmodels

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyExpiry           = errors.New("empty expiry")
	ErrUnsupportedDateFormat = errors.New("unsupported date format")
	ErrInvalidCalendarDate   = errors.New("invalid calendar date")
)

// ExpiryDate is a calendar date with no time of day and no zone.
type ExpiryDate struct {
	Year  int
	Month int
	Day   int
}

// SortKey orders dates chronologically: year*10000 + month*100 + day.
type SortKey int

func (k SortKey) ExpiryDate() ExpiryDate {
	n := int(k)
	return ExpiryDate{
		Year:  n / 10000,
		Month: n / 100 % 100,
		Day:   n % 100,
	}
}

// Format renders the key as DD-MM-YYYY.
func (k SortKey) Format() string {
	return k.ExpiryDate().Format()
}

func (d ExpiryDate) SortKey() SortKey {
	return SortKey(d.Year*10000 + d.Month*100 + d.Day)
}

// Format renders the date as DD-MM-YYYY regardless of the input format.
func (d ExpiryDate) Format() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

func (d ExpiryDate) String() string {
	return d.Format()
}

func (d ExpiryDate) ToTime(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func NewExpiryDate(year, month, day int) (ExpiryDate, error) {
	if year < 1000 || year > 9999 {
		return ExpiryDate{}, fmt.Errorf("%w: year %d", ErrInvalidCalendarDate, year)
	}

	if month < 1 || month > 12 || day < 1 {
		return ExpiryDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}

	// time.Date normalizes overflow, so 2025-02-30 comes back as March
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return ExpiryDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}

	return ExpiryDate{Year: year, Month: month, Day: day}, nil
}

// ToCanonicalDate converts a raw feed expiry into a calendar date. Epoch
// timestamps are read in loc. Zero, negative and blank values are rejected.
func ToCanonicalDate(raw RawExpiry, loc *time.Location) (ExpiryDate, error) {
	if raw.IsEpoch {
		return epochToExpiryDate(raw.Millis, loc)
	}

	return parseExpiryText(raw.Text)
}

func epochToExpiryDate(millis int64, loc *time.Location) (ExpiryDate, error) {
	if millis <= 0 {
		return ExpiryDate{}, fmt.Errorf("%w: timestamp %d", ErrEmptyExpiry, millis)
	}

	if loc == nil {
		loc = time.Local
	}

	t := time.UnixMilli(millis).In(loc)
	return NewExpiryDate(t.Year(), int(t.Month()), t.Day())
}

func parseExpiryText(text string) (ExpiryDate, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return ExpiryDate{}, ErrEmptyExpiry
	}

	var parts []string
	switch {
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	case strings.Contains(s, "/"):
		parts = strings.Split(s, "/")
	case len(s) == 8:
		parts = []string{s[:4], s[4:6], s[6:]}
	default:
		return ExpiryDate{}, fmt.Errorf("%w: %q", ErrUnsupportedDateFormat, s)
	}

	if len(parts) != 3 {
		return ExpiryDate{}, fmt.Errorf("%w: %q", ErrUnsupportedDateFormat, s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := atoiDigits(p)
		if err != nil {
			return ExpiryDate{}, fmt.Errorf("%w: %q", ErrUnsupportedDateFormat, s)
		}

		nums[i] = n
	}

	if len(parts[0]) == 4 {
		return NewExpiryDate(nums[0], nums[1], nums[2])
	}

	return NewExpiryDate(nums[2], nums[1], nums[0])
}

// atoiDigits accepts only ASCII digits, so signs and spaces inside a part fail.
func atoiDigits(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("atoiDigits: empty")
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("atoiDigits: non-digit %q", c)
		}
	}

	return strconv.Atoi(s)
}
