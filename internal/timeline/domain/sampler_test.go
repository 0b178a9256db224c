package domain

import (
	"testing"
	"time"
)

var baseTime = time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)

// weeklyBuckets builds n single-candidate buckets one week apart, each
// holding a complete record with linearly increasing weight.
func weeklyBuckets(n int) []Bucket {
	buckets := make([]Bucket, 0, n)
	for i := 0; i < n; i++ {
		ts := baseTime.AddDate(0, 0, 7*i)
		buckets = append(buckets, Bucket{
			Start:   WindowWeek.Truncate(ts),
			Records: []MetricRecord{record(ts, ptr(200+float64(i)), nil, "")},
		})
	}
	return buckets
}

func TestSelectRepresentatives_EmptyHistory(t *testing.T) {
	if got := SelectRepresentatives(nil, 10); len(got) != 0 {
		t.Errorf("expected empty output for nil buckets, got %d records", len(got))
	}
	if got := SelectRepresentatives([]Bucket{}, 10); len(got) != 0 {
		t.Errorf("expected empty output for zero buckets, got %d records", len(got))
	}
	if got := SelectRepresentatives([]Bucket{{Start: baseTime}}, 10); len(got) != 0 {
		t.Errorf("expected empty output for all-empty buckets, got %d records", len(got))
	}
}

func TestSelectRepresentatives_NonPositiveMax(t *testing.T) {
	buckets := weeklyBuckets(4)
	for _, max := range []int{0, -1} {
		if got := SelectRepresentatives(buckets, max); len(got) != 0 {
			t.Errorf("expected empty output for max %d, got %d records", max, len(got))
		}
	}
}

func TestSelectRepresentatives_OnePerBucketWhenUnderBudget(t *testing.T) {
	buckets := weeklyBuckets(4)

	got := SelectRepresentatives(buckets, 10)

	if len(got) != 4 {
		t.Fatalf("expected 4 representatives, got %d", len(got))
	}
	for i, rep := range got {
		want := buckets[i].Records[0]
		if rep.ID != want.ID {
			t.Errorf("bucket %d: expected record %s, got %s", i, want.ID, rep.ID)
		}
	}
}

func TestSelectRepresentatives_SkipsEmptyBuckets(t *testing.T) {
	buckets := weeklyBuckets(3)
	withGaps := []Bucket{
		{Start: buckets[0].Start.AddDate(0, 0, -7)},
		buckets[0],
		{Start: buckets[0].Start.AddDate(0, 0, 3)},
		buckets[1],
		buckets[2],
	}

	got := SelectRepresentatives(withGaps, 10)

	if len(got) != 3 {
		t.Fatalf("expected 3 representatives, got %d", len(got))
	}
}

func TestSelectRepresentatives_SingleCandidatePassThrough(t *testing.T) {
	// a single empty-ish candidate wins its bucket even though a
	// multi-candidate bucket would never score it highest
	empty := record(baseTime, nil, nil, "")
	buckets := []Bucket{{Start: WindowWeek.Truncate(baseTime), Records: []MetricRecord{empty}}}

	got := SelectRepresentatives(buckets, 5)

	if len(got) != 1 {
		t.Fatalf("expected 1 representative, got %d", len(got))
	}
	if got[0].ID != empty.ID {
		t.Errorf("expected pass-through of the only candidate")
	}
}

func TestSelectRepresentatives_MilestoneWins(t *testing.T) {
	// previous selected weight 200; 210 is a 5% change (milestone),
	// 201 is 0.5% (no milestone)
	week1 := record(baseTime, ptr(200), nil, "")
	small := record(baseTime.AddDate(0, 0, 7), ptr(201), nil, "")
	jump := record(baseTime.AddDate(0, 0, 8), ptr(210), nil, "")

	buckets := []Bucket{
		{Start: WindowWeek.Truncate(week1.Timestamp), Records: []MetricRecord{week1}},
		{Start: WindowWeek.Truncate(small.Timestamp), Records: []MetricRecord{small, jump}},
	}

	got := SelectRepresentatives(buckets, 10)

	if len(got) != 2 {
		t.Fatalf("expected 2 representatives, got %d", len(got))
	}
	if got[1].ID != jump.ID {
		t.Errorf("expected milestone candidate (weight 210) to win, got weight %v", *got[1].Weight)
	}
}

func TestSelectRepresentatives_TieKeepsFirstEncountered(t *testing.T) {
	first := record(baseTime, ptr(180), ptr(20), "photos/a.jpg")
	second := record(baseTime.Add(2*time.Hour), ptr(180), ptr(20), "photos/b.jpg")

	buckets := []Bucket{{
		Start:   WindowWeek.Truncate(baseTime),
		Records: []MetricRecord{first, second},
	}}

	got := SelectRepresentatives(buckets, 1)

	if len(got) != 1 {
		t.Fatalf("expected 1 representative, got %d", len(got))
	}
	if got[0].ID != first.ID {
		t.Error("expected tie to keep the first-encountered candidate")
	}
}

func TestSelectRepresentatives_ChainsPreviousSelected(t *testing.T) {
	// the second bucket's milestone is judged against the selected
	// representative of the first bucket, not the first raw record
	loser := record(baseTime, ptr(150), nil, "")
	winner := record(baseTime.Add(time.Hour), ptr(200), ptr(22), "photos/w.jpg")

	// 210 is a milestone against the selected 200, not against 150
	next := record(baseTime.AddDate(0, 0, 7), ptr(210), nil, "")
	noise := record(baseTime.AddDate(0, 0, 7).Add(time.Hour), ptr(202), nil, "")

	buckets := []Bucket{
		{Start: WindowWeek.Truncate(baseTime), Records: []MetricRecord{loser, winner}},
		{Start: WindowWeek.Truncate(next.Timestamp), Records: []MetricRecord{noise, next}},
	}

	got := SelectRepresentatives(buckets, 10)

	if len(got) != 2 {
		t.Fatalf("expected 2 representatives, got %d", len(got))
	}
	if got[0].ID != winner.ID {
		t.Fatalf("expected the complete record to win the first bucket")
	}
	if got[1].ID != next.ID {
		t.Errorf("expected 210 to be selected as a milestone against the selected 200")
	}
}

func TestSelectRepresentatives_ThinningIndices(t *testing.T) {
	buckets := weeklyBuckets(10)

	got := SelectRepresentatives(buckets, 5)

	if len(got) != 5 {
		t.Fatalf("expected 5 representatives, got %d", len(got))
	}
	// stride 10/5 = 2 selects source buckets 0, 2, 4, 6, 8
	wantIdx := []int{0, 2, 4, 6, 8}
	for i, idx := range wantIdx {
		want := buckets[idx].Records[0]
		if got[i].ID != want.ID {
			t.Errorf("output %d: expected bucket %d record, got timestamp %v", i, idx, got[i].Timestamp)
		}
	}
}

func TestSelectRepresentatives_FractionalStride(t *testing.T) {
	buckets := weeklyBuckets(7)

	got := SelectRepresentatives(buckets, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 representatives, got %d", len(got))
	}
	// stride 7/3 selects floor(0), floor(2.33), floor(4.66) = 0, 2, 4
	wantIdx := []int{0, 2, 4}
	for i, idx := range wantIdx {
		if got[i].ID != buckets[idx].Records[0].ID {
			t.Errorf("output %d: expected bucket %d record", i, idx)
		}
	}
}

func TestSelectRepresentatives_SizeBound(t *testing.T) {
	for _, tc := range []struct{ buckets, max, want int }{
		{1, 1, 1},
		{3, 5, 3},
		{5, 5, 5},
		{20, 5, 5},
		{100, 12, 12},
	} {
		got := SelectRepresentatives(weeklyBuckets(tc.buckets), tc.max)
		if len(got) != tc.want {
			t.Errorf("%d buckets, max %d: expected %d representatives, got %d",
				tc.buckets, tc.max, tc.want, len(got))
		}
	}
}

func TestSelectRepresentatives_Deterministic(t *testing.T) {
	buckets := weeklyBuckets(12)
	// give a few buckets competing candidates
	for i := 0; i < len(buckets); i += 3 {
		extra := record(buckets[i].Start.Add(6*time.Hour), ptr(190), ptr(21), "photos/x.jpg")
		buckets[i].Records = append(buckets[i].Records, extra)
	}

	first := SelectRepresentatives(buckets, 5)
	second := SelectRepresentatives(buckets, 5)

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("output %d differs between runs", i)
		}
	}
}

func TestSelectRepresentatives_ChronologicalOutput(t *testing.T) {
	got := SelectRepresentatives(weeklyBuckets(9), 4)

	for i := 1; i < len(got); i++ {
		if !got[i-1].Timestamp.Before(got[i].Timestamp) {
			t.Errorf("output not chronological at index %d", i)
		}
	}
}
