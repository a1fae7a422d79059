package core_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"inventory-dashboard/internal/core"
)

func TestOrderStore_CreateRecomputesTotals(t *testing.T) {
	s := core.NewOrderStore(nil)
	now := time.Date(2024, time.November, 8, 10, 0, 0, 0, time.UTC)

	o := s.Create(core.Order{
		Customer: core.Customer{Name: "Alice Okello", Email: "alice@example.com"},
		Items: []core.OrderItem{
			{Name: "Wireless Mouse", Quantity: 2, Price: decimal.NewFromInt(500000)},
			{Name: "Paperback Novel", Quantity: 1, Price: decimal.NewFromInt(150000)},
		},
		Shipping: decimal.NewFromInt(20000),
		// The caller cannot smuggle in its own totals.
		Total: decimal.NewFromInt(1),
	}, now)

	if o.ID != "001" || o.OrderNumber != "ORD-0001" {
		t.Fatalf("assigned id %q number %q, want 001 / ORD-0001", o.ID, o.OrderNumber)
	}
	if o.Status != core.OrderPending {
		t.Fatalf("status = %s, want Pending", o.Status)
	}
	if want := decimal.NewFromInt(1150000); !o.Subtotal.Equal(want) {
		t.Fatalf("subtotal = %s, want %s", o.Subtotal, want)
	}
	if want := decimal.NewFromInt(1170000); !o.Total.Equal(want) {
		t.Fatalf("total = %s, want %s", o.Total, want)
	}
	if len(o.Timeline) != 1 || o.Timeline[0].Status != core.OrderPending || !o.Timeline[0].Completed {
		t.Fatalf("timeline = %+v, want a single completed Pending step", o.Timeline)
	}

	second := s.Create(core.Order{Items: []core.OrderItem{{Name: "x", Quantity: 1, Price: decimal.NewFromInt(10)}}}, now)
	if second.OrderNumber != "ORD-0002" {
		t.Fatalf("second order number = %q, want ORD-0002", second.OrderNumber)
	}
}

func TestOrderStore_UpdateStatusAppendsTimeline(t *testing.T) {
	s := core.NewOrderStore(nil)
	now := time.Date(2024, time.November, 8, 10, 0, 0, 0, time.UTC)
	o := s.Create(core.Order{Items: []core.OrderItem{{Name: "x", Quantity: 1, Price: decimal.NewFromInt(10)}}}, now)

	updated, ok := s.UpdateStatus(o.ID, core.OrderShipped, now.Add(time.Hour))
	if !ok {
		t.Fatalf("UpdateStatus reported missing order")
	}
	if updated.Status != core.OrderShipped || len(updated.Timeline) != 2 {
		t.Fatalf("after update: status %s timeline %d steps, want Shipped with 2 steps", updated.Status, len(updated.Timeline))
	}

	// Repeating the current status must not grow the timeline.
	repeat, ok := s.UpdateStatus(o.ID, core.OrderShipped, now.Add(2*time.Hour))
	if !ok || len(repeat.Timeline) != 2 {
		t.Fatalf("repeat update: ok=%v timeline %d steps, want unchanged 2", ok, len(repeat.Timeline))
	}

	if _, ok := s.UpdateStatus("nope", core.OrderShipped, now); ok {
		t.Fatalf("UpdateStatus on unknown id reported success")
	}
}

func TestOrderStore_SeedDerivesNextID(t *testing.T) {
	s := core.NewOrderStore(core.SeedOrders())
	now := time.Now()
	o := s.Create(core.Order{Items: []core.OrderItem{{Name: "x", Quantity: 1, Price: decimal.NewFromInt(10)}}}, now)
	for _, seeded := range core.SeedOrders() {
		if o.ID == seeded.ID {
			t.Fatalf("new order reused seeded id %q", o.ID)
		}
	}
}

func TestOrderStore_CustomerHitsAreDistinct(t *testing.T) {
	s := core.NewOrderStore(nil)
	now := time.Now()
	for i := 0; i < 3; i++ {
		s.Create(core.Order{
			Customer: core.Customer{Name: "Alice Okello", Email: "alice@example.com"},
			Items:    []core.OrderItem{{Name: "x", Quantity: 1, Price: decimal.NewFromInt(10)}},
		}, now)
	}
	s.Create(core.Order{
		Customer: core.Customer{Name: "Bob Ssentongo", Email: "bob@example.com"},
		Items:    []core.OrderItem{{Name: "x", Quantity: 1, Price: decimal.NewFromInt(10)}},
	}, now)

	hits := s.CustomerHits()
	if len(hits) != 2 {
		t.Fatalf("CustomerHits returned %d entries, want 2 distinct customers", len(hits))
	}
}
