// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Category classifies a jersey within the catalog.
type Category string

const (
	CategoryRetro         Category = "retro"
	CategoryClub          Category = "club"
	CategoryInternational Category = "international"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryRetro, CategoryClub, CategoryInternational:
		return true
	}

	return false
}

// Product is a single jersey in the catalog. Products are seed data and
// immutable at runtime; nothing in the system mutates them, including
// order placement (stock is informational only).
type Product struct {
	ID          string   // Unique catalog identifier.
	Name        string   // Display name, e.g. "Barcelona Home 2025-26".
	Price       float64  // Unit price in INR.
	Category    Category // retro, club or international.
	Team        string   // The club or national team.
	Year        string   // Optional season or year label.
	Image       string   // Front image reference.
	BackImage   string   // Optional back image reference.
	Description string
	Sizes       []string // Non-empty ordered set of size labels.
	Stock       int      // Non-negative; never decremented in this scope.
	Limited     bool     // Limited-edition flag.
}

// HasSize reports whether the given size label is offered for this product.
func (p *Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}
