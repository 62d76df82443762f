// Package domain defines core catalog types and interfaces.
package domain

import "context"

// CatalogProduct is one product of the shared catalog, grouped by handle
type CatalogProduct struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"productType"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	Variants    []Variant `json:"variants"`
	Images      []string  `json:"images"`
	BasePrice   float64   `json:"basePrice"`
}

// Variant is a purchasable option combination of a CatalogProduct
type Variant struct {
	ID                string  `json:"id"`
	SKU               string  `json:"sku"`
	Option1Name       string  `json:"option1Name"`
	Option1Value      string  `json:"option1Value"`
	Option2Name       string  `json:"option2Name"`
	Option2Value      string  `json:"option2Value"`
	Option3Name       *string `json:"option3Name"`
	Option3Value      *string `json:"option3Value"`
	Price             float64 `json:"price"`
	InventoryQuantity int     `json:"inventoryQuantity"`
	ImageSrc          *string `json:"imageSrc"`
	Size              *string `json:"size"`
	Color             *string `json:"color"`
}

// ImportSummary reports what a successful import wrote
type ImportSummary struct {
	ProductCount int `json:"productCount"`
	VariantCount int `json:"variantCount"`
}

// CatalogStore defines the storage interface for the catalog document.
// ReplaceCatalog must be atomic to readers: they see either the old or the new catalog.
type CatalogStore interface {
	ReplaceCatalog(ctx context.Context, products []CatalogProduct) error
	ReadCatalog(ctx context.Context) ([]CatalogProduct, error)
	DeleteCatalog(ctx context.Context) error
}

// Clone returns a deep copy of p so stores never share slices with callers
func (p CatalogProduct) Clone() CatalogProduct {
	out := p
	out.Tags = cloneSlice(p.Tags)
	out.Images = cloneSlice(p.Images)
	out.Variants = cloneSlice(p.Variants)
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// CloneCatalog deep-copies a whole catalog
func CloneCatalog(products []CatalogProduct) []CatalogProduct {
	out := make([]CatalogProduct, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
