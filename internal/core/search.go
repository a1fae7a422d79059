package core

import (
	"context"
	"strings"
	"sync"
)

// SearchScope selects which categories a query is evaluated against.
type SearchScope string

const (
	ScopeAll       SearchScope = "all"
	ScopeOrders    SearchScope = "orders"
	ScopeProducts  SearchScope = "products"
	ScopeCustomers SearchScope = "customers"
)

// ParseSearchScope maps a request parameter to a scope; anything
// unrecognized (including empty) widens to ScopeAll.
func ParseSearchScope(s string) SearchScope {
	switch SearchScope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeOrders:
		return ScopeOrders
	case ScopeProducts:
		return ScopeProducts
	case ScopeCustomers:
		return ScopeCustomers
	}
	return ScopeAll
}

// SearchHit is one global-search result row.
type SearchHit struct {
	Type   string `json:"type"` // "order", "product", "customer"
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
	Email  string `json:"email,omitempty"`
}

// SearchResults groups hits by category plus the combined view the navbar
// dropdown renders.
type SearchResults struct {
	Orders    []SearchHit `json:"orders"`
	Products  []SearchHit `json:"products"`
	Customers []SearchHit `json:"customers"`
	All       []SearchHit `json:"all"`
}

// SearchSources supply the candidate hit lists per category. Each source is
// called on every search so results always reflect current collections.
type SearchSources struct {
	Orders    func(ctx context.Context) []SearchHit
	Products  func(ctx context.Context) []SearchHit
	Customers func(ctx context.Context) []SearchHit
}

// SearchAggregator fans a free-text query out across the entity categories
// and keeps the latest merged result set. Every search is stamped with a
// generation token; a search that finishes after a newer one started is
// discarded, so rapid re-querying can never publish stale results.
//
// A scoped search recomputes only its category but clears the others and
// rebuilds the combined list from the fresh category alone, keeping the
// result set internally consistent.
type SearchAggregator struct {
	sources SearchSources

	mu       sync.Mutex
	gen      uint64
	inFlight int
	results  SearchResults
	query    string
}

// NewSearchAggregator constructs an aggregator over the given sources.
func NewSearchAggregator(sources SearchSources) *SearchAggregator {
	return &SearchAggregator{sources: sources}
}

// IsSearching reports whether any search is currently in flight.
func (a *SearchAggregator) IsSearching() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inFlight > 0
}

// Results returns the latest published result set.
func (a *SearchAggregator) Results() SearchResults {
	a.mu.Lock()
	defer a.mu.Unlock()
	return copyResults(a.results)
}

// Query returns the query the published results answer.
func (a *SearchAggregator) Query() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.query
}

// Clear empties every category and invalidates in-flight searches.
func (a *SearchAggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.query = ""
	a.results = SearchResults{}
}

// Search evaluates query against the scoped categories and returns the
// published result set. A blank query clears all categories. When a newer
// search supersedes this one mid-flight, the stale computation is dropped
// and the newest published results are returned instead.
func (a *SearchAggregator) Search(ctx context.Context, query string, scope SearchScope) SearchResults {
	query = strings.TrimSpace(query)
	if query == "" {
		a.Clear()
		return SearchResults{}
	}

	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.inFlight++
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.inFlight--
		a.mu.Unlock()
	}()

	var (
		wg                          sync.WaitGroup
		orders, products, customers []SearchHit
	)
	scan := func(dst *[]SearchHit, source func(context.Context) []SearchHit, match func(SearchHit, string) bool) {
		if source == nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dst = filterHits(source(ctx), query, match)
		}()
	}
	if scope == ScopeAll || scope == ScopeOrders {
		scan(&orders, a.sources.Orders, matchOrderHit)
	}
	if scope == ScopeAll || scope == ScopeProducts {
		scan(&products, a.sources.Products, matchProductHit)
	}
	if scope == ScopeAll || scope == ScopeCustomers {
		scan(&customers, a.sources.Customers, matchCustomerHit)
	}
	wg.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		// A newer search started while this one ran; its results win.
		return copyResults(a.results)
	}
	results := SearchResults{Orders: orders, Products: products, Customers: customers}
	results.All = make([]SearchHit, 0, len(orders)+len(products)+len(customers))
	results.All = append(results.All, orders...)
	results.All = append(results.All, products...)
	results.All = append(results.All, customers...)
	a.results = results
	a.query = query
	return copyResults(results)
}

func filterHits(hits []SearchHit, query string, match func(SearchHit, string) bool) []SearchHit {
	q := strings.ToLower(query)
	out := make([]SearchHit, 0, len(hits))
	for _, h := range hits {
		if match(h, q) {
			out = append(out, h)
		}
	}
	return out
}

func matchOrderHit(h SearchHit, q string) bool {
	return containsFold(h.Title, q) || containsFold(h.Status, q)
}

func matchProductHit(h SearchHit, q string) bool {
	return containsFold(h.Title, q)
}

func matchCustomerHit(h SearchHit, q string) bool {
	return containsFold(h.Title, q) || containsFold(h.Email, q)
}

// containsFold expects q already lowercased.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

func copyResults(r SearchResults) SearchResults {
	cp := func(in []SearchHit) []SearchHit {
		if in == nil {
			return nil
		}
		out := make([]SearchHit, len(in))
		copy(out, in)
		return out
	}
	return SearchResults{
		Orders:    cp(r.Orders),
		Products:  cp(r.Products),
		Customers: cp(r.Customers),
		All:       cp(r.All),
	}
}
