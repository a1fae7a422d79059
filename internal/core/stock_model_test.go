package core_test

import (
	"testing"
	"time"

	"inventory-dashboard/internal/core"
)

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		reorder  int
		want     core.StockStatus
	}{
		{"zero on hand", 0, 10, core.StockCritical},
		{"well below half", 3, 10, core.StockCritical},
		{"exactly half", 5, 10, core.StockCritical},
		{"exact half of odd reorder point", 5, 11, core.StockCritical},
		{"just above half", 6, 10, core.StockLow},
		{"above half of odd reorder point", 6, 11, core.StockLow},
		{"at reorder point", 10, 10, core.StockLow},
		{"above reorder point", 11, 10, core.StockOptimal},
		{"plentiful", 50, 10, core.StockOptimal},
		{"zero reorder point", 1, 0, core.StockOptimal},
		{"zero quantity and zero reorder point", 0, 0, core.StockCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.DeriveStockStatus(tt.quantity, tt.reorder); got != tt.want {
				t.Errorf("DeriveStockStatus(%d, %d) = %s, want %s", tt.quantity, tt.reorder, got, tt.want)
			}
		})
	}
}

func TestStockItem_RestockAndDeduct(t *testing.T) {
	now := time.Date(2024, time.November, 8, 9, 0, 0, 0, time.UTC)
	item := core.StockItem{ID: "p001", Name: "Wireless Mouse", Quantity: 5, ReorderPoint: 10}
	item.Status = core.DeriveStockStatus(item.Quantity, item.ReorderPoint)
	if item.Status != core.StockCritical {
		t.Fatalf("initial status = %s, want Critical", item.Status)
	}

	item.Restock(20, now)
	if item.Quantity != 25 || item.Status != core.StockOptimal {
		t.Fatalf("after restock: qty %d status %s, want 25 Optimal", item.Quantity, item.Status)
	}
	if len(item.Movements) != 1 || item.Movements[0].Type != core.MovementIncrease {
		t.Fatalf("restock movement not recorded: %+v", item.Movements)
	}
	if !item.LastUpdated.Equal(now) {
		t.Fatalf("LastUpdated = %s, want %s", item.LastUpdated, now)
	}

	later := now.Add(2 * time.Hour)
	item.Deduct(18, later)
	if item.Quantity != 7 || item.Status != core.StockLow {
		t.Fatalf("after deduct: qty %d status %s, want 7 Low", item.Quantity, item.Status)
	}

	// Deducting more than on hand floors at zero.
	item.Deduct(100, later)
	if item.Quantity != 0 || item.Status != core.StockCritical {
		t.Fatalf("over-deduct: qty %d status %s, want 0 Critical", item.Quantity, item.Status)
	}

	// Non-positive quantities are ignored and leave no movement.
	movements := len(item.Movements)
	item.Restock(0, later)
	item.Deduct(-5, later)
	if len(item.Movements) != movements {
		t.Fatalf("no-op mutations appended movements: %d -> %d", movements, len(item.Movements))
	}
}
