// Package domain holds the timeline sampling model: metric records,
// time-window buckets, and the deterministic representative selection
// used to render long histories with a small number of points.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricRecord is a single logged body-metrics entry. Weight and BodyFat
// are optional; a nil pointer means the field was never logged. Records
// are owned by the caller and never mutated here.
type MetricRecord struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Weight    *float64  `json:"weight,omitempty"`
	BodyFat   *float64  `json:"body_fat,omitempty"`
	PhotoRef  string    `json:"photo_ref,omitempty"`
}

// HasWeight reports whether a weight was logged.
func (r MetricRecord) HasWeight() bool {
	return r.Weight != nil
}

// HasBodyFat reports whether a body-fat percentage was logged.
func (r MetricRecord) HasBodyFat() bool {
	return r.BodyFat != nil
}

// HasPhoto reports whether a non-empty photo reference was logged.
func (r MetricRecord) HasPhoto() bool {
	return r.PhotoRef != ""
}

// HasData reports whether the record carries any of weight, body fat,
// or a photo.
func (r MetricRecord) HasData() bool {
	return r.HasWeight() || r.HasBodyFat() || r.HasPhoto()
}

// FilterWithPhoto returns the records that carry a photo reference.
// The input slice is left untouched.
func FilterWithPhoto(records []MetricRecord) []MetricRecord {
	out := make([]MetricRecord, 0, len(records))
	for _, r := range records {
		if r.HasPhoto() {
			out = append(out, r)
		}
	}
	return out
}

// FilterWithData returns the records that carry at least one populated
// field. The input slice is left untouched.
func FilterWithData(records []MetricRecord) []MetricRecord {
	out := make([]MetricRecord, 0, len(records))
	for _, r := range records {
		if r.HasData() {
			out = append(out, r)
		}
	}
	return out
}
