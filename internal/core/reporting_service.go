package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// KPI is one headline metric on the Analytics page.
type KPI struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SalesPoint is one point of a sales time series.
type SalesPoint struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// StockPoint is one point of the inventory trend chart.
type StockPoint struct {
	Label string `json:"label"`
	Stock int    `json:"stock"`
}

// EngagementPoint is one row of the user-engagement breakdown.
type EngagementPoint struct {
	Location string `json:"location"`
	Users    int    `json:"users"`
}

// ReportStore holds the generated-report collection and the analytics
// series the dashboard charts consume as data contracts (rendering is the
// client's concern).
type ReportStore struct {
	mu      sync.Mutex
	reports []Report
	nextID  int

	sales      []SalesPoint
	stockTrend []StockPoint
	engagement []EngagementPoint
	kpis       []KPI
}

// NewReportStore seeds the report collection and analytics series.
func NewReportStore(seed []Report, sales []SalesPoint, stockTrend []StockPoint, engagement []EngagementPoint, kpis []KPI) *ReportStore {
	s := &ReportStore{
		reports:    make([]Report, len(seed)),
		nextID:     1,
		sales:      sales,
		stockTrend: stockTrend,
		engagement: engagement,
		kpis:       kpis,
	}
	copy(s.reports, seed)
	for _, r := range seed {
		var n int
		if _, err := fmt.Sscanf(r.ID, "r%d", &n); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// List returns a copy of all reports in insertion order.
func (s *ReportStore) List() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Create builds a report synchronously: the record enters the collection
// already Ready. (Processing/Failed states come from upstream seeds; local
// generation has nothing async to wait on.)
func (s *ReportStore) Create(name, reportType string, at time.Time) Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := Report{
		ID:     fmt.Sprintf("r%03d", s.nextID),
		Name:   name,
		Type:   reportType,
		Date:   at,
		Status: ReportReady,
	}
	s.nextID++
	s.reports = append(s.reports, r)
	return r
}

// Delete removes the report with the given id; unknown ids are a no-op.
func (s *ReportStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return
		}
	}
}

// Sales returns the sales series, optionally truncated to the trailing
// window of days (0 means the full series).
func (s *ReportStore) Sales(windowDays int) []SalesPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	series := s.sales
	if windowDays > 0 && len(series) > windowDays {
		series = series[len(series)-windowDays:]
	}
	out := make([]SalesPoint, len(series))
	copy(out, series)
	return out
}

// StockTrend returns the inventory trend series.
func (s *ReportStore) StockTrend() []StockPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StockPoint, len(s.stockTrend))
	copy(out, s.stockTrend)
	return out
}

// Engagement returns the user-engagement breakdown.
func (s *ReportStore) Engagement() []EngagementPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EngagementPoint, len(s.engagement))
	copy(out, s.engagement)
	return out
}

// KPIs returns the headline metrics.
func (s *ReportStore) KPIs() []KPI {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]KPI, len(s.kpis))
	copy(out, s.kpis)
	return out
}

// ActivityLog is the bounded dashboard activity feed.
type ActivityLog struct {
	mu      sync.Mutex
	entries []ActivityEntry
	limit   int
}

// NewActivityLog seeds the feed. limit bounds retained entries; zero means
// a default of 50.
func NewActivityLog(seed []ActivityEntry, limit int) *ActivityLog {
	if limit <= 0 {
		limit = 50
	}
	l := &ActivityLog{entries: make([]ActivityEntry, len(seed)), limit: limit}
	copy(l.entries, seed)
	l.trim()
	return l
}

// Append records an activity entry, evicting the oldest past the limit.
func (l *ActivityLog) Append(e ActivityEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	l.entries = append(l.entries, e)
	l.trim()
}

// Recent returns up to n entries, newest first.
func (l *ActivityLog) Recent(n int) []ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]ActivityEntry, 0, n)
	for i := len(l.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

func (l *ActivityLog) trim() {
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}
