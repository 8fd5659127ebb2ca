package models

import "time"

// Product is a catalog entry. Prices are stored in the minor currency unit
// (kobo), so they stay integers end to end.
type Product struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Price       int64     `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Catalog is the set of purchasable products as currently known to the
// client, keyed by product id.
type Catalog map[string]Product

// BuildCatalog indexes a product list by id. Later duplicates win, matching
// the "last fetch is authoritative" view of the catalog.
func BuildCatalog(products []Product) Catalog {
	catalog := make(Catalog, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	return catalog
}
