package verification

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/pkg/pagination"
)

type store struct {
	mu         sync.RWMutex
	records    []Record
	rules      []departments.Rule
	clock      Clock
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an empty in-memory verification log. Rules drive the
// department rollup. A nil clock defaults to time.Now.
func New(
	rules []departments.Rule,
	clock Clock,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	if clock == nil {
		clock = time.Now
	}
	return &store{
		records:    []Record{},
		rules:      rules,
		clock:      clock,
		logger:     logger.With("system", "verification"),
		pagination: pagination,
	}
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination)
}

// Log assigns Order as max existing Order + 1 and ID as log length + 1.
// Both are computed under the write lock so concurrent callers never share
// an ordinal.
func (s *store) Log(entry Entry) Record {
	now := s.clock()

	s.mu.Lock()
	order := 1
	for _, r := range s.records {
		if r.Order >= order {
			order = r.Order + 1
		}
	}

	rec := Record{
		ID:          len(s.records) + 1,
		Snippet:     entry.Snippet,
		Sentiment:   entry.Sentiment,
		Polarity:    entry.Polarity,
		Departments: entry.Departments,
		Timestamp:   now,
		Source:      entry.Source,
		Language:    entry.Language,
		Order:       order,
		HourOfDay:   now.Hour(),
	}
	s.records = append(s.records, rec)
	s.mu.Unlock()

	s.logger.Info("verification logged",
		"id", rec.ID,
		"order", rec.Order,
		"sentiment", rec.Sentiment,
		"departments", rec.Departments,
		"source", rec.Source,
	)
	return rec
}

func (s *store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *store) Find(id int) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *store) List(page pagination.PageRequest) *pagination.PageResult[Record] {
	page.Normalize(s.pagination)

	records := s.Records()
	slices.Reverse(records)

	if page.Search != nil {
		term := strings.ToLower(*page.Search)
		records = slices.DeleteFunc(records, func(r Record) bool {
			return !strings.Contains(strings.ToLower(r.Snippet), term)
		})
	}

	result := pagination.Paginate(records, page)
	return &result
}

func (s *store) Departments() []DepartmentSummary {
	return Rollup(s.Records(), s.rules)
}

func (s *store) Statistics() Statistics {
	return Summarize(s.Records())
}
