package core

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Page size bounds applied by ListParams normalization.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortDirection is the order applied by a sort key.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the active sort column and direction of a table.
type SortState struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Toggle returns the sort state after a click on key: clicking the active
// column flips the direction, clicking a new column resets to ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == SortAsc {
		return SortState{Key: key, Direction: SortDesc}
	}
	return SortState{Key: key, Direction: SortAsc}
}

// ListParams selects the visible subset of a collection: free-text query,
// category filter, sort, and pagination.
type ListParams struct {
	Query    string
	Category string // empty or "all" disables category filtering
	Sort     SortState
	Page     int
	PageSize int
}

// Normalize clamps the page size into [1, MaxPageSize] (zero means
// DefaultPageSize) and floors the page at 1.
func (p ListParams) Normalize() ListParams {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Sort.Direction != SortDesc {
		p.Sort.Direction = SortAsc
	}
	return p
}

// FilterKey identifies the result-shaping part of the params. Two requests
// with the same filter key see the same filtered set; when the key changes
// the caller must reset to page 1.
func (p ListParams) FilterKey() string {
	return strings.ToLower(strings.TrimSpace(p.Query)) + "\x00" +
		strings.ToLower(p.Category) + "\x00" +
		p.Sort.Key + "\x00" + string(p.Sort.Direction)
}

// Page is one page of a filtered, sorted collection together with the
// derived pagination state. Invariant: TotalPages == ceil(TotalItems /
// PageSize), and Page is clamped into [1, TotalPages] when TotalItems > 0.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// ListView describes how records of one entity are searched, filtered, and
// ordered. Compare maps sort keys to three-way comparators; keys absent from
// the map are ignored rather than rejected.
type ListView[T any] struct {
	SearchFields func(T) []string
	Category     func(T) string
	Compare      map[string]func(a, b T) int
}

// Apply filters, sorts, and paginates items. It is pure: the input slice is
// never reordered or mutated, and calling it twice with the same params
// yields the same page.
func (v ListView[T]) Apply(items []T, p ListParams) Page[T] {
	p = p.Normalize()
	filtered := v.Filter(items, p.Query, p.Category)
	v.Sort(filtered, p.Sort)
	return Paginate(filtered, p.Page, p.PageSize)
}

// Filter returns the items passing both the category filter and the
// case-insensitive substring query over the entity's searchable fields.
func (v ListView[T]) Filter(items []T, query, category string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	all := category == "" || strings.EqualFold(category, "all")
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !all && v.Category != nil && !strings.EqualFold(v.Category(it), category) {
			continue
		}
		if query != "" && !v.matches(it, query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (v ListView[T]) matches(it T, loweredQuery string) bool {
	if v.SearchFields == nil {
		return true
	}
	for _, f := range v.SearchFields(it) {
		if strings.Contains(strings.ToLower(f), loweredQuery) {
			return true
		}
	}
	return false
}

// Sort orders items in place by the comparator registered for the sort key.
// The sort is stable: records with equal keys keep their relative order, so
// toggling a column back and forth cannot shuffle ties. Unknown or empty
// keys leave the slice untouched.
func (v ListView[T]) Sort(items []T, s SortState) {
	if s.Key == "" {
		return
	}
	cmp, ok := v.Compare[s.Key]
	if !ok {
		return
	}
	stableSort(items, func(a, b T) bool {
		c := cmp(a, b)
		if s.Direction == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// Paginate slices items into the requested page. An empty collection yields
// zero pages and no items; otherwise the page number is clamped into
// [1, totalPages] so the union of all pages is exactly the input.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total == 0 {
		return Page[T]{Items: []T{}, Page: 1, PageSize: pageSize}
	}
	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{
		Items:      out,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func stableSort[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// The collator orders strings case-insensitively using locale collation
// rather than byte order. Collators are not safe for concurrent use, hence
// the mutex.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.IgnoreCase)
)

// CompareStrings is the string comparator used by non-numeric sort keys.
func CompareStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
