// Package catalog holds the fixed product range of the shop. Products
// are defined at build time and never change at runtime; there is no
// backing store to query.
package catalog

import "strings"

type Category string

const (
	CategoryRice         Category = "rice"
	CategoryGrocery      Category = "grocery"
	CategoryPremiumBrand Category = "premium-brand"

	// CategoryAll is the filter wildcard, not a real category.
	CategoryAll Category = "all"
)

type Product struct {
	ID          string
	Name        string
	TamilName   string // optional
	Description string
	PackSizes   []string
	Category    Category
	Image       string // asset key, resolved by internal/storage
}

type Benefit struct {
	Title       string
	Description string
	Icon        string
}

// All returns every product across categories, rice first, in display
// order. The order feeds the order-form dropdown and the products page.
func All() []Product {
	out := make([]Product, 0, len(Rice)+len(PremiumBrands)+len(Grocery))
	out = append(out, Rice...)
	out = append(out, PremiumBrands...)
	out = append(out, Grocery...)
	return out
}

// FindByID looks a product up by its id.
func FindByID(id string) (Product, bool) {
	for _, p := range All() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindByName matches the exact display name. Used to enrich the order
// message; callers fall back to the raw name when the product is gone
// from the range.
func FindByName(name string) (Product, bool) {
	for _, p := range All() {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// Filter returns the products matching a free-text query and a
// category. The query matches name, tamil name and description,
// case-insensitive. CategoryAll matches everything.
func Filter(query string, category Category) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Product
	for _, p := range All() {
		if category != CategoryAll && category != "" && p.Category != category {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if p.TamilName != "" && strings.Contains(strings.ToLower(p.TamilName), q) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Description), q)
}

// ParseCategory maps a query-string value to a category, defaulting to
// the wildcard for anything unknown.
func ParseCategory(v string) Category {
	switch Category(v) {
	case CategoryRice, CategoryGrocery, CategoryPremiumBrand:
		return Category(v)
	default:
		return CategoryAll
	}
}
