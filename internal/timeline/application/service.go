// Package application wires the timeline sampler to the bounded render
// cache: repeated renders of an identical range are served from cache,
// history mutations invalidate affected entries.
package application

import (
	"context"
	"strconv"
	"time"

	"shapelog-v0/internal/cache"
	sharedlogger "shapelog-v0/internal/shared/logger"
	"shapelog-v0/internal/timeline/domain"
	"shapelog-v0/pkg/utils"
)

const noTime = "none"

// Service renders timelines and caches the result per request
// fingerprint. The sampler itself is pure; the cache is the only
// shared state and carries its own lock.
type Service struct {
	logger sharedlogger.Logger
	cache  *cache.Cache[string, []domain.MetricRecord]
}

// NewService creates a render service whose cache holds cacheSize
// rendered timelines. cacheSize must be positive.
func NewService(logger sharedlogger.Logger, cacheSize int) (*Service, error) {
	c, err := cache.New[string, []domain.MetricRecord](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Service{
		logger: logger,
		cache:  c,
	}, nil
}

// Render produces the sampled timeline for req over the given records.
// Records must be in chronological order; they are never mutated. An
// identical request against an unchanged DataVersion is answered from
// cache without recomputation.
func (s *Service) Render(ctx context.Context, req RenderRequest, records []domain.MetricRecord) RenderResult {
	key := renderKey(req)

	if cached, found := s.cache.Get(key); found {
		s.logger.Debug("timeline served from cache", "key", key, "points", len(cached))
		return RenderResult{Records: cached, FromCache: true}
	}

	sampled := s.compute(req, records)
	s.cache.Put(key, sampled)

	s.logger.Debug("timeline computed", "key", key, "candidates", len(records), "points", len(sampled))
	return RenderResult{Records: sampled}
}

// Invalidate drops every cached render built on the given data version.
func (s *Service) Invalidate(dataVersion string) {
	s.cache.RemoveWhere(func(key string, _ []domain.MetricRecord) bool {
		return utils.ParseFingerprint(key).Labels["version"] == dataVersion
	})
}

// InvalidateRange drops every cached render whose time range overlaps
// [from, to], e.g. after a record inside that span was edited.
func (s *Service) InvalidateRange(from, to time.Time) {
	s.cache.RemoveWhere(func(key string, _ []domain.MetricRecord) bool {
		labels := utils.ParseFingerprint(key).Labels
		return rangesOverlap(labels["from"], labels["to"], from, to)
	})
}

// Clear drops all cached renders.
func (s *Service) Clear() {
	s.cache.Clear()
}

// CacheStats exposes the render cache counters.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}

func (s *Service) compute(req RenderRequest, records []domain.MetricRecord) []domain.MetricRecord {
	candidates := records
	if req.PhotosOnly {
		candidates = domain.FilterWithPhoto(candidates)
	} else {
		candidates = domain.FilterWithData(candidates)
	}
	candidates = clipRange(candidates, req.From, req.To)

	buckets := domain.GroupByWindow(candidates, req.Window)
	return domain.SelectRepresentatives(buckets, req.MaxPoints)
}

// clipRange keeps records inside [from, to]. A zero bound is open.
func clipRange(records []domain.MetricRecord, from, to time.Time) []domain.MetricRecord {
	out := make([]domain.MetricRecord, 0, len(records))
	for _, r := range records {
		if !from.IsZero() && r.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && r.Timestamp.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// renderKey fingerprints the full render context. Equal requests yield
// equal keys regardless of how the request struct was built.
func renderKey(req RenderRequest) string {
	fp := utils.Fingerprint{
		Kind: "render",
		Labels: map[string]string{
			"from":    formatBound(req.From),
			"to":      formatBound(req.To),
			"max":     strconv.Itoa(req.MaxPoints),
			"window":  req.Window.String(),
			"photos":  strconv.FormatBool(req.PhotosOnly),
			"version": req.DataVersion,
		},
	}
	return fp.Canonical()
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return noTime
	}
	return t.UTC().Format(time.RFC3339)
}

func parseBound(s string) (time.Time, bool) {
	if s == "" || s == noTime {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// rangesOverlap reports whether the cached range [keyFrom, keyTo]
// intersects [from, to]. Open bounds always overlap on their side.
func rangesOverlap(keyFrom, keyTo string, from, to time.Time) bool {
	entryFrom, hasFrom := parseBound(keyFrom)
	entryTo, hasTo := parseBound(keyTo)

	if hasFrom && !to.IsZero() && entryFrom.After(to) {
		return false
	}
	if hasTo && !from.IsZero() && entryTo.Before(from) {
		return false
	}
	return true
}
