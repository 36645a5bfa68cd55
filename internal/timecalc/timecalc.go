package timecalc

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// MinutesPerDay is the longest span a single entry may cover.
const MinutesPerDay = 24 * 60

// DateLayout is the ISO date format used for work dates and range filters.
const DateLayout = "2006-01-02"

var (
	ErrInvalidTime   = errors.New("invalid time, expected HH:MM")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNoDuration    = errors.New("start and end give no duration")
	ErrSpanTooLong   = errors.New("span exceeds one day")
	ErrNegativeBreak = errors.New("break cannot be negative")
	ErrBreakTooLong  = errors.New("break must be shorter than the span")
)

var hhmm = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as zero-padded HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseHHMM parses a strict 24-hour HH:MM string. Single-digit hours,
// seconds and out-of-range values are rejected.
func ParseHHMM(s string) (Clock, error) {
	if !hhmm.MatchString(s) {
		return Clock{}, ErrInvalidTime
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	if h > 23 || m > 59 {
		return Clock{}, ErrInvalidTime
	}
	return Clock{Hour: h, Minute: m}, nil
}

// ParseDate parses a YYYY-MM-DD work date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Span returns the minutes from start to end. An end before the start is
// read as crossing midnight once.
func Span(start, end Clock) int {
	diff := end.Minutes() - start.Minutes()
	if diff < 0 {
		diff += MinutesPerDay
	}
	return diff
}

// ValidateSpan accepts spans in the range 1..1440.
func ValidateSpan(span int) error {
	if span <= 0 {
		return ErrNoDuration
	}
	if span > MinutesPerDay {
		return ErrSpanTooLong
	}
	return nil
}

// Duration subtracts the break from the span.
func Duration(span, breakMinutes int) (int, error) {
	if breakMinutes < 0 {
		return 0, ErrNegativeBreak
	}
	if breakMinutes >= span {
		return 0, ErrBreakTooLong
	}
	return span - breakMinutes, nil
}

// Hours converts minutes to hours rounded to two decimals.
func Hours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
