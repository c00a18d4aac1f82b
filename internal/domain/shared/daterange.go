package shared

import (
	"time"
)

// DateRange is an inclusive [Start, End] reporting window.
// Both bounds are interpreted at day granularity: Start is truncated to the
// beginning of its day and End extends to the last instant of its day, so a
// record created at any time on the end date is included.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two dates, normalising them to day bounds
func NewDateRange(start, end time.Time) (DateRange, error) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	if e.Before(s) {
		return DateRange{}, NewValidationError("endDate must not be before startDate")
	}
	return DateRange{Start: s, End: e}, nil
}

// ParseDateRange parses ISO date strings (2006-01-02) into an inclusive range
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return DateRange{}, NewValidationError("startDate must be an ISO date (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return DateRange{}, NewValidationError("endDate must be an ISO date (YYYY-MM-DD)")
	}
	return NewDateRange(start, end)
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Interval is the bucket size for time-series reports
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

// ParseInterval validates an interval query parameter, defaulting to day
func ParseInterval(s string) (Interval, error) {
	if s == "" {
		return IntervalDay, nil
	}
	switch Interval(s) {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalYear:
		return Interval(s), nil
	}
	return "", NewValidationError("interval must be one of day, week, month, year")
}

// Truncate returns the start of the bucket containing t.
// Weeks start on Monday.
func (i Interval) Truncate(t time.Time) time.Time {
	switch i {
	case IntervalWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case IntervalMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case IntervalYear:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// Next returns the start of the bucket following bucket
func (i Interval) Next(bucket time.Time) time.Time {
	switch i {
	case IntervalWeek:
		return bucket.AddDate(0, 0, 7)
	case IntervalMonth:
		return bucket.AddDate(0, 1, 0)
	case IntervalYear:
		return bucket.AddDate(1, 0, 0)
	default:
		return bucket.AddDate(0, 0, 1)
	}
}

// Buckets enumerates all bucket start times covering the range, in order
func (i Interval) Buckets(r DateRange) []time.Time {
	buckets := make([]time.Time, 0)
	for b := i.Truncate(r.Start); !b.After(r.End); b = i.Next(b) {
		buckets = append(buckets, b)
	}
	return buckets
}
