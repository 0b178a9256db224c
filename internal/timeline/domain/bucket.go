package domain

import "time"

// Window is the grouping granularity for timeline buckets.
type Window int

const (
	WindowDay Window = iota
	WindowWeek
	WindowMonth
)

// Truncate maps t to the start of its window.
// Weeks start on Monday.
func (w Window) Truncate(t time.Time) time.Time {
	switch w {
	case WindowDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case WindowWeek:
		daysBack := (int(t.Weekday()) + 6) % 7
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return day.AddDate(0, 0, -daysBack)
	case WindowMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// String returns a display label.
func (w Window) String() string {
	switch w {
	case WindowDay:
		return "day"
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	default:
		return "day"
	}
}

// ParseWindow maps a label to its Window. Unknown labels fall back to
// weekly grouping, the app's default timeline granularity.
func ParseWindow(s string) Window {
	switch s {
	case "day":
		return WindowDay
	case "week":
		return WindowWeek
	case "month":
		return WindowMonth
	default:
		return WindowWeek
	}
}

// Bucket is a time-windowed group of candidate records. Buckets are
// built per render request and discarded after sampling.
type Bucket struct {
	Start   time.Time
	Records []MetricRecord
}

// GroupByWindow groups chronologically ordered records into one bucket
// per distinct window start, preserving record order within a bucket.
// Empty buckets are never produced.
func GroupByWindow(records []MetricRecord, w Window) []Bucket {
	var buckets []Bucket
	for _, r := range records {
		start := w.Truncate(r.Timestamp)
		if n := len(buckets); n > 0 && buckets[n-1].Start.Equal(start) {
			buckets[n-1].Records = append(buckets[n-1].Records, r)
			continue
		}
		buckets = append(buckets, Bucket{Start: start, Records: []MetricRecord{r}})
	}
	return buckets
}
