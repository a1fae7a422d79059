package core

// Per-entity ListView definitions. Sort keys mirror the table column ids the
// dashboard sends: numeric columns compare numerically, date columns
// chronologically, everything else through locale collation.

// OrderView drives the Orders table.
var OrderView = ListView[Order]{
	SearchFields: Order.SearchFields,
	Category:     func(o Order) string { return string(o.Status) },
	Compare: map[string]func(a, b Order) int{
		"id":       func(a, b Order) int { return CompareStrings(a.ID, b.ID) },
		"order":    func(a, b Order) int { return CompareStrings(a.OrderNumber, b.OrderNumber) },
		"customer": func(a, b Order) int { return CompareStrings(a.Customer.Name, b.Customer.Name) },
		"status":   func(a, b Order) int { return CompareStrings(string(a.Status), string(b.Status)) },
		"date":     func(a, b Order) int { return a.OrderDate.Compare(b.OrderDate) },
		"amount":   func(a, b Order) int { return a.Total.Cmp(b.Total) },
	},
}

// ProductView drives the Products grid and list.
var ProductView = ListView[Product]{
	SearchFields: Product.SearchFields,
	Category:     func(p Product) string { return p.Category },
	Compare: map[string]func(a, b Product) int{
		"name":     func(a, b Product) int { return CompareStrings(a.Name, b.Name) },
		"sku":      func(a, b Product) int { return CompareStrings(a.SKU, b.SKU) },
		"category": func(a, b Product) int { return CompareStrings(a.Category, b.Category) },
		"price":    func(a, b Product) int { return a.Price.Cmp(b.Price) },
		"stock":    func(a, b Product) int { return compareInt(a.Stock, b.Stock) },
	},
}

// StockView drives the Stock table. Category filtering selects the derived
// status bucket (Critical/Low/Optimal).
var StockView = ListView[StockItem]{
	SearchFields: StockItem.SearchFields,
	Category:     func(s StockItem) string { return string(s.Status) },
	Compare: map[string]func(a, b StockItem) int{
		"name":     func(a, b StockItem) int { return CompareStrings(a.Name, b.Name) },
		"sku":      func(a, b StockItem) int { return CompareStrings(a.SKU, b.SKU) },
		"quantity": func(a, b StockItem) int { return compareInt(a.Quantity, b.Quantity) },
		"reorder":  func(a, b StockItem) int { return compareInt(a.ReorderPoint, b.ReorderPoint) },
		"status":   func(a, b StockItem) int { return CompareStrings(string(a.Status), string(b.Status)) },
		"updated":  func(a, b StockItem) int { return a.LastUpdated.Compare(b.LastUpdated) },
	},
}

// ReportView drives the Reports table.
var ReportView = ListView[Report]{
	SearchFields: func(r Report) []string { return []string{r.Name, r.Type} },
	Category:     func(r Report) string { return r.Type },
	Compare: map[string]func(a, b Report) int{
		"name":   func(a, b Report) int { return CompareStrings(a.Name, b.Name) },
		"type":   func(a, b Report) int { return CompareStrings(a.Type, b.Type) },
		"status": func(a, b Report) int { return CompareStrings(string(a.Status), string(b.Status)) },
		"date":   func(a, b Report) int { return a.Date.Compare(b.Date) },
	},
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
