package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/metrics"
)

// MemoryStore implements Store with an in-process slice guarded by a
// mutex. It backs tests and single-node deployments without a database;
// data volumes are a few hundred rows per event, so linear scans are fine.
type MemoryStore struct {
	mu      sync.RWMutex
	records []model.Result
	now     func() time.Time
}

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Replace deletes every record under key, then inserts batch. The whole
// operation holds the write lock, so concurrent uploads to the same key
// cannot interleave between the delete and the insert.
func (s *MemoryStore) Replace(ctx context.Context, key model.ReplaceKey, batch []model.Result) (int, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency("replace", float64(time.Since(start).Milliseconds()))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, r := range s.records {
		if r.Key() != key {
			kept = append(kept, r)
		}
	}
	s.records = kept

	ts := s.now()
	for _, r := range batch {
		r.UpdatedAt = ts
		s.records = append(s.records, r)
	}

	metrics.RecordReplace(len(batch))
	return len(batch), nil
}

// SchoolStandings sums points per school and ranks descending. The stable
// sort keeps first-seen order among tied schools.
func (s *MemoryStore) SchoolStandings(ctx context.Context) ([]model.SchoolStanding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)
	var order []string
	for _, r := range s.records {
		if _, seen := totals[r.School]; !seen {
			order = append(order, r.School)
		}
		totals[r.School] += r.Points
	}

	standings := make([]model.SchoolStanding, 0, len(order))
	for _, school := range order {
		standings = append(standings, model.SchoolStanding{School: school, Points: totals[school]})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}

// Search matches q case-insensitively against student name, chest number,
// school and event name, newest update first.
func (s *MemoryStore) Search(ctx context.Context, q string, limit int) ([]model.Result, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(q))
	var matched []model.Result
	for _, r := range s.records {
		if needle == "" || matches(r, needle) {
			matched = append(matched, r)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func matches(r model.Result, needle string) bool {
	for _, field := range []string{r.StudentName, r.ChestNo, r.School, r.EventName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
