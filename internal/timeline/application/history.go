package application

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"shapelog-v0/internal/shared/validation"
	"shapelog-v0/internal/timeline/domain"
)

// ParseHistory decodes an already-exported metric history from raw
// JSON, validates it, and returns it in chronological order. Records
// without an ID get one assigned; explicit duplicate IDs are rejected.
func ParseHistory(raw []byte) ([]domain.MetricRecord, error) {
	var records []domain.MetricRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(records))
	for i := range records {
		if records[i].Timestamp.IsZero() {
			return nil, validation.NewValidationError(map[string]string{
				"timestamp": "timestamp is required",
			}, "history", strconv.Itoa(i))
		}

		if records[i].ID == uuid.Nil {
			records[i].ID = uuid.New()
			continue
		}
		if _, dup := seen[records[i].ID]; dup {
			return nil, validation.NewDuplicateFoundError("history", strconv.Itoa(i))
		}
		seen[records[i].ID] = struct{}{}
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Timestamp.Before(records[b].Timestamp)
	})

	return records, nil
}
