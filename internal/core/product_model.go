package core

import "github.com/shopspring/decimal"

// ProductCategories is the fixed category set offered by the catalog filter.
var ProductCategories = []string{"Electronics", "Books", "Apparel"}

// Product is a sellable catalog item.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
}

// SearchFields returns the fields free-text product search matches against.
func (p Product) SearchFields() []string {
	return []string{p.Name, p.SKU}
}

// InStock reports whether the product has any sellable stock.
func (p Product) InStock() bool { return p.Stock > 0 }

// ValidCategory reports whether c is one of the fixed catalog categories.
func ValidCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}
