package models

// Product represents a product entity in the catalog.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
	Code        string  `json:"code"`
	Stock       int     `json:"stock"`
}

// ProductPatch holds the fields to overwrite on an existing product.
// Nil fields are left untouched. There is no ID field: the identifier never changes.
type ProductPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// Apply returns a copy of p with the patch fields written over it.
func (pp ProductPatch) Apply(p Product) Product {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Thumbnail != nil {
		p.Thumbnail = *pp.Thumbnail
	}
	if pp.Code != nil {
		p.Code = *pp.Code
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	return p
}

// IsEmpty reports whether the patch carries no fields.
func (pp ProductPatch) IsEmpty() bool {
	return pp.Title == nil && pp.Description == nil && pp.Price == nil &&
		pp.Thumbnail == nil && pp.Code == nil && pp.Stock == nil
}
