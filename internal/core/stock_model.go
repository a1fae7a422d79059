package core

import "time"

// MovementType records the direction of a stock movement.
type MovementType string

const (
	MovementIncrease MovementType = "increase"
	MovementDecrease MovementType = "decrease"
)

// StockMovement is one historical quantity change on a stock item.
type StockMovement struct {
	Type     MovementType `json:"type"`
	Quantity int          `json:"quantity"`
	Date     time.Time    `json:"date"`
}

// StockItem is a warehouse stock record. Status is always the function of
// Quantity vs ReorderPoint and is recomputed by every mutation; callers must
// never assign it directly.
type StockItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Quantity     int             `json:"quantity"`
	ReorderPoint int             `json:"reorder_point"`
	OptimalStock int             `json:"optimal_stock,omitempty"`
	Status       StockStatus     `json:"status"`
	LastUpdated  time.Time       `json:"last_updated"`
	Movements    []StockMovement `json:"movements,omitempty"`
}

// SearchFields returns the fields free-text stock search matches against.
func (s StockItem) SearchFields() []string {
	return []string{s.Name, s.SKU}
}

// DeriveStockStatus maps quantity vs reorder point to a status:
// Critical when quantity <= reorderPoint/2, Low when quantity <= reorderPoint,
// Optimal otherwise. The half threshold is exact (no integer truncation).
func DeriveStockStatus(quantity, reorderPoint int) StockStatus {
	switch {
	case 2*quantity <= reorderPoint:
		return StockCritical
	case quantity <= reorderPoint:
		return StockLow
	default:
		return StockOptimal
	}
}

// Restock increases quantity by qty, appends an increase movement, and
// recomputes the derived status. Non-positive qty is ignored.
func (s *StockItem) Restock(qty int, at time.Time) {
	if qty <= 0 {
		return
	}
	s.Quantity += qty
	s.Movements = append(s.Movements, StockMovement{Type: MovementIncrease, Quantity: qty, Date: at})
	s.touch(at)
}

// Deduct decreases quantity by qty (floored at zero), appends a decrease
// movement, and recomputes the derived status. Non-positive qty is ignored.
func (s *StockItem) Deduct(qty int, at time.Time) {
	if qty <= 0 {
		return
	}
	if qty > s.Quantity {
		qty = s.Quantity
	}
	if qty == 0 {
		return
	}
	s.Quantity -= qty
	s.Movements = append(s.Movements, StockMovement{Type: MovementDecrease, Quantity: qty, Date: at})
	s.touch(at)
}

func (s *StockItem) touch(at time.Time) {
	s.Status = DeriveStockStatus(s.Quantity, s.ReorderPoint)
	s.LastUpdated = at
}
