package domain

// SelectRepresentatives picks at most max records to stand in for the
// given buckets, one per retained bucket, in chronological bucket
// order. Empty buckets are skipped. When more than max buckets remain,
// the bucket set is thinned by stride before selection, trading
// milestone precision for even time coverage.
//
// The function is pure: same buckets and max always produce the same
// output, and neither buckets nor records are mutated. max <= 0 or an
// all-empty input yields an empty result.
func SelectRepresentatives(buckets []Bucket, max int) []MetricRecord {
	if max <= 0 {
		return nil
	}

	nonEmpty := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		if len(b.Records) > 0 {
			nonEmpty = append(nonEmpty, b)
		}
	}
	if len(nonEmpty) == 0 {
		return nil
	}

	chosen := nonEmpty
	if len(nonEmpty) > max {
		chosen = thinBuckets(nonEmpty, max)
	}

	out := make([]MetricRecord, 0, len(chosen))
	var prev *MetricRecord
	for _, b := range chosen {
		rep := pickRepresentative(b, prev)
		out = append(out, rep)
		// milestones compare against the previously selected
		// representative, not the previous raw record
		prev = &out[len(out)-1]
	}
	return out
}

// thinBuckets keeps max buckets at stride-spaced indices. With
// len(buckets) > max the stride exceeds 1, so the floored indices are
// strictly increasing and never repeat. Skipped buckets are never
// revisited, even if they hold stronger milestone signals.
func thinBuckets(buckets []Bucket, max int) []Bucket {
	stride := float64(len(buckets)) / float64(max)
	out := make([]Bucket, 0, max)
	for i := 0; i < max; i++ {
		out = append(out, buckets[int(float64(i)*stride)])
	}
	return out
}

// pickRepresentative returns the highest-scoring candidate of a
// non-empty bucket. A single candidate passes through unscored. Ties
// keep the first-encountered candidate (strict greater-than), so
// repeated runs are bit-identical.
func pickRepresentative(b Bucket, prev *MetricRecord) MetricRecord {
	if len(b.Records) == 1 {
		return b.Records[0]
	}

	best := b.Records[0]
	bestScore := scoreCandidate(best, prev)
	for _, c := range b.Records[1:] {
		if s := scoreCandidate(c, prev); s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best
}
