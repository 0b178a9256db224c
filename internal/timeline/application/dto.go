package application

import (
	"time"

	"shapelog-v0/internal/timeline/domain"
)

// RenderRequest describes one timeline render: the visible time range,
// the display budget, grouping granularity, and an optional photos-only
// view. DataVersion is bumped by the caller whenever the underlying
// history changes, so stale cached renders never resurface.
type RenderRequest struct {
	From        time.Time
	To          time.Time
	MaxPoints   int
	Window      domain.Window
	PhotosOnly  bool
	DataVersion string
}

// RenderResult is an ordered timeline ready for display binding.
type RenderResult struct {
	Records   []domain.MetricRecord
	FromCache bool
}
