package core_test

import (
	"testing"

	"inventory-dashboard/internal/core"
)

// testProducts builds a small catalog with deliberate duplicates on the
// stock column so sort stability is observable.
func testProducts() []core.Product {
	return []core.Product{
		{ID: "p1", Name: "Banana Stand", SKU: "B-01", Category: "Books", Stock: 5},
		{ID: "p2", Name: "apple Press", SKU: "A-01", Category: "Electronics", Stock: 5},
		{ID: "p3", Name: "Camera", SKU: "C-01", Category: "Electronics", Stock: 2},
		{ID: "p4", Name: "Almanac", SKU: "A-02", Category: "Books", Stock: 9},
	}
}

func ids(items []core.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListView_SortIsCaseInsensitive(t *testing.T) {
	// "apple Press" must sort before "Banana Stand" despite its lowercase
	// first letter; byte order would put it last.
	page := core.ProductView.Apply(testProducts(), core.ListParams{
		Sort: core.SortState{Key: "name", Direction: core.SortAsc},
	})
	if got := ids(page.Items); !equalIDs(got, "p4", "p2", "p1", "p3") {
		t.Fatalf("name asc order = %v, want [p4 p2 p1 p3]", got)
	}
}

func TestListView_SortDirectionsMirror(t *testing.T) {
	items := testProducts()
	asc := core.ProductView.Apply(items, core.ListParams{Sort: core.SortState{Key: "sku", Direction: core.SortAsc}})
	desc := core.ProductView.Apply(items, core.ListParams{Sort: core.SortState{Key: "sku", Direction: core.SortDesc}})
	for i := range asc.Items {
		if asc.Items[i].ID != desc.Items[len(desc.Items)-1-i].ID {
			t.Fatalf("desc is not the reverse of asc: asc=%v desc=%v", ids(asc.Items), ids(desc.Items))
		}
	}
}

func TestListView_SortStabilityOnTies(t *testing.T) {
	// p1 and p2 tie on stock. Their input order (p1 before p2) must survive
	// the sort, and toggling the direction twice must not shuffle them.
	items := testProducts()
	first := core.ProductView.Apply(items, core.ListParams{Sort: core.SortState{Key: "stock", Direction: core.SortAsc}})
	if got := ids(first.Items); !equalIDs(got, "p3", "p1", "p2", "p4") {
		t.Fatalf("stock asc order = %v, want [p3 p1 p2 p4]", got)
	}
	_ = core.ProductView.Apply(items, core.ListParams{Sort: core.SortState{Key: "stock", Direction: core.SortDesc}})
	again := core.ProductView.Apply(items, core.ListParams{Sort: core.SortState{Key: "stock", Direction: core.SortAsc}})
	if got := ids(again.Items); !equalIDs(got, "p3", "p1", "p2", "p4") {
		t.Fatalf("stock asc after toggle = %v, want [p3 p1 p2 p4]", got)
	}
}

func TestListView_ApplyDoesNotMutateInput(t *testing.T) {
	items := testProducts()
	core.ProductView.Apply(items, core.ListParams{Sort: core.SortState{Key: "name", Direction: core.SortDesc}})
	if got := ids(items); !equalIDs(got, "p1", "p2", "p3", "p4") {
		t.Fatalf("input slice was reordered: %v", got)
	}
}

func TestListView_Filter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"no filters", "", "", []string{"p1", "p2", "p3", "p4"}},
		{"category all passes everything", "", "all", []string{"p1", "p2", "p3", "p4"}},
		{"category filter", "", "Electronics", []string{"p2", "p3"}},
		{"category is case-insensitive", "", "electronics", []string{"p2", "p3"}},
		{"query matches name", "press", "", []string{"p2"}},
		{"query matches sku", "a-0", "", []string{"p2", "p4"}},
		{"query and category combine", "a", "Books", []string{"p1", "p4"}},
		{"no match", "zebra", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.ProductView.Filter(testProducts(), tt.query, tt.category)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items %v, want %v", len(got), ids(got), tt.want)
			}
			for i, p := range got {
				if p.ID != tt.want[i] {
					t.Fatalf("got %v, want %v", ids(got), tt.want)
				}
			}
		})
	}
}

func TestListView_UnknownSortKeyIsIgnored(t *testing.T) {
	page := core.ProductView.Apply(testProducts(), core.ListParams{
		Sort: core.SortState{Key: "nonsense", Direction: core.SortAsc},
	})
	if got := ids(page.Items); !equalIDs(got, "p1", "p2", "p3", "p4") {
		t.Fatalf("unknown sort key reordered items: %v", got)
	}
}

func TestSortState_Toggle(t *testing.T) {
	s := core.SortState{}
	s = s.Toggle("name")
	if s.Key != "name" || s.Direction != core.SortAsc {
		t.Fatalf("first click = %+v, want name asc", s)
	}
	s = s.Toggle("name")
	if s.Direction != core.SortDesc {
		t.Fatalf("second click = %+v, want name desc", s)
	}
	s = s.Toggle("name")
	if s.Direction != core.SortAsc {
		t.Fatalf("third click = %+v, want name asc", s)
	}
	s = s.Toggle("price")
	if s.Key != "price" || s.Direction != core.SortAsc {
		t.Fatalf("new column = %+v, want price asc", s)
	}
}

func TestListParams_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           core.ListParams
		wantPage     int
		wantPageSize int
	}{
		{"zero values", core.ListParams{}, 1, core.DefaultPageSize},
		{"negative page", core.ListParams{Page: -3, PageSize: 20}, 1, 20},
		{"oversized page size", core.ListParams{Page: 2, PageSize: 500}, 2, core.MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.PageSize != tt.wantPageSize {
				t.Fatalf("Normalize() = page %d size %d, want page %d size %d",
					got.Page, got.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestListParams_FilterKeyChangesWithFilters(t *testing.T) {
	base := core.ListParams{Query: "mouse", Category: "Electronics", Page: 3}
	same := core.ListParams{Query: "  Mouse ", Category: "electronics", Page: 7}
	if base.FilterKey() != same.FilterKey() {
		t.Errorf("filter key should ignore paging and query case")
	}
	changed := base
	changed.Query = "keyboard"
	if base.FilterKey() == changed.FilterKey() {
		t.Errorf("filter key should change when the query changes")
	}
}

func TestPaginate_CoversWholeCollection(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}
	for pageSize := 1; pageSize <= len(items)+1; pageSize++ {
		var seen []int
		page := 1
		for {
			p := core.Paginate(items, page, pageSize)
			seen = append(seen, p.Items...)
			if page >= p.TotalPages {
				wantPages := (len(items) + pageSize - 1) / pageSize
				if p.TotalPages != wantPages {
					t.Fatalf("pageSize %d: TotalPages = %d, want %d", pageSize, p.TotalPages, wantPages)
				}
				break
			}
			page++
		}
		if len(seen) != len(items) {
			t.Fatalf("pageSize %d: pages cover %d items, want %d", pageSize, len(seen), len(items))
		}
		for i, v := range seen {
			if v != i {
				t.Fatalf("pageSize %d: item %d out of place", pageSize, i)
			}
		}
	}
}

func TestPaginate_ClampsOutOfRangePage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	p := core.Paginate(items, 99, 2)
	if p.Page != 3 || len(p.Items) != 1 || p.Items[0] != 5 {
		t.Fatalf("page 99 of 3 = page %d items %v, want page 3 items [5]", p.Page, p.Items)
	}
	p = core.Paginate(items, 0, 2)
	if p.Page != 1 || p.Items[0] != 1 {
		t.Fatalf("page 0 = page %d first %d, want page 1 first 1", p.Page, p.Items[0])
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	p := core.Paginate([]int{}, 4, 10)
	if p.Page != 1 || p.TotalPages != 0 || p.TotalItems != 0 || len(p.Items) != 0 {
		t.Fatalf("empty collection = %+v, want page 1, zero pages, no items", p)
	}
}
